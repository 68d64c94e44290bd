package update_my_photographer

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
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateMe(ctx context.Context, req *models.UpdateProfileRequest) (*models.PhotographerResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.PhotographerResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var photographer = domain.Actor{UserID: 12, Role: domain.RolePhotographer, PhotographerID: ptr.Ptr(int64(4))}

func serve(svc *mockService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/photographers/me", strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), photographer))
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := new(mockService)
	svc.On("UpdateMe", mock.Anything, mock.MatchedBy(func(req *models.UpdateProfileRequest) bool {
		return req.Actor.UserID == 12 &&
			req.Bio != nil && *req.Bio == "Весілля" &&
			req.Phone == nil &&
			req.ServiceIDs != nil && len(*req.ServiceIDs) == 2
	})).Return(&models.PhotographerResponse{ID: 4, Bio: "Весілля", ServiceIDs: []int64{1, 3}}, nil)

	rec := serve(svc, `{"bio":"Весілля","service_ids":[1,3]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bio":"Весілля"`)
	svc.AssertExpectations(t)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
	}{
		{name: "broken json", body: `{"bio":`, code: http.StatusBadRequest},
		{name: "negative service id", body: `{"service_ids":[-1]}`, code: http.StatusBadRequest},
		{name: "phone too long", body: `{"phone":"+38044123456789012345"}`, code: http.StatusBadRequest},
		{name: "unknown service", body: `{"service_ids":[99]}`, err: photographers.ErrUnknownService, code: http.StatusBadRequest},
		{name: "not a photographer", body: `{"bio":"x"}`, err: photographers.ErrAccessDenied, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("UpdateMe", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(svc, tt.body)

			assert.Equal(t, tt.code, rec.Code)
			if tt.err == nil {
				svc.AssertNotCalled(t, "UpdateMe", mock.Anything, mock.Anything)
			}
		})
	}
}
