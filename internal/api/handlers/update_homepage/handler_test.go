package update_homepage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/homepage"
	"github.com/m04kA/SMC-StudioBooking/internal/service/homepage/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, req *models.UpdateContentRequest) (*models.ContentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ContentResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func serve(svc *mockService, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/homepage-content", strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Patch(t *testing.T) {
	svc := new(mockService)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(req *models.UpdateContentRequest) bool {
		return req.Actor.IsAdmin() &&
			req.Title == nil &&
			req.ContactEmails != nil && len(*req.ContactEmails) == 1
	})).Return(&models.ContentResponse{Title: "Студія", ContactEmails: []string{"hello@svitlo.ua"}}, nil)

	rec := serve(svc, http.MethodPatch, `{"contact_emails":["hello@svitlo.ua"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"contact_emails":["hello@svitlo.ua"]`)
	svc.AssertExpectations(t)
}

func TestHandle_PutNeedsTitleAndDescription(t *testing.T) {
	svc := new(mockService)

	rec := serve(svc, http.MethodPut, `{"title":"Студія"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
	}{
		{name: "bad email", body: `{"contact_emails":["not-an-email"]}`, code: http.StatusBadRequest},
		{name: "unknown field", body: `{"is_active":false}`, code: http.StatusBadRequest},
		{name: "not admin", body: `{"title":"Нова"}`, err: homepage.ErrAccessDenied, code: http.StatusForbidden},
		{name: "empty title", body: `{"title":" "}`, err: homepage.ErrInvalidContent, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("Update", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(svc, http.MethodPatch, tt.body)

			assert.Equal(t, tt.code, rec.Code)
			if tt.err == nil {
				svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}
