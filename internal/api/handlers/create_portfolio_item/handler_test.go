package create_portfolio_item

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ItemResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var photographer = domain.Actor{UserID: 12, Role: domain.RolePhotographer, PhotographerID: ptr.Ptr(int64(4))}

func form(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if imageName != "" {
		part, err := mw.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("\xff\xd8\xff\xe0image"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func serve(t *testing.T, svc *mockService, fields map[string]string, imageName string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := form(t, fields, imageName)
	req := httptest.NewRequest(http.MethodPost, "/portfolio/my", body)
	req.Header.Set("Content-Type", contentType)
	req = req.WithContext(middleware.WithActor(req.Context(), photographer))

	rec := httptest.NewRecorder()
	NewHandler(svc, 10<<20, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.CreateItemRequest) bool {
		return req.Actor.UserID == 12 &&
			req.ServiceID == 2 &&
			req.Description == "Карпати" &&
			req.Image != nil && req.Image.Filename == "wedding.jpg"
	})).Return(&models.ItemResponse{ID: 20, PhotographerID: 4, ServiceID: 2, Image: "/media/portfolio/a.jpg"}, nil)

	rec := serve(t, svc, map[string]string{"service_id": "2", "description": "Карпати"}, "wedding.jpg")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":20`)
	svc.AssertExpectations(t)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		image  string
		err    error
		code   int
	}{
		{name: "no service id", fields: map[string]string{}, image: "a.jpg", code: http.StatusBadRequest},
		{name: "bad service id", fields: map[string]string{"service_id": "x"}, image: "a.jpg", code: http.StatusBadRequest},
		{name: "no image", fields: map[string]string{"service_id": "2"}, err: portfolio.ErrImageRequired, code: http.StatusBadRequest},
		{name: "not an image", fields: map[string]string{"service_id": "2"}, image: "evil.html", err: portfolio.ErrInvalidImage, code: http.StatusBadRequest},
		{name: "unknown service", fields: map[string]string{"service_id": "99"}, image: "a.jpg", err: portfolio.ErrUnknownService, code: http.StatusBadRequest},
		{name: "customer", fields: map[string]string{"service_id": "2"}, image: "a.jpg", err: portfolio.ErrAccessDenied, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(t, svc, tt.fields, tt.image)

			assert.Equal(t, tt.code, rec.Code)
			if tt.err == nil {
				svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}
