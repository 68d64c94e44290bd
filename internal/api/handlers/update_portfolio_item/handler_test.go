package update_portfolio_item

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
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

func (m *mockService) Update(ctx context.Context, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ItemResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var photographer = domain.Actor{UserID: 12, Role: domain.RolePhotographer, PhotographerID: ptr.Ptr(int64(4))}

func serve(svc *mockService, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	h := NewHandler(svc, 10<<20, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/portfolio/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.Handle(w, r.WithContext(middleware.WithActor(r.Context(), photographer)))
	}).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_JSON(t *testing.T) {
	svc := new(mockService)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(req *models.UpdateItemRequest) bool {
		return req.ID == 11 &&
			req.Description != nil && *req.Description == "Хрестини" &&
			req.ServiceID == nil &&
			req.Image == nil
	})).Return(&models.ItemResponse{ID: 11, Description: "Хрестини"}, nil)

	rec := serve(svc, "/portfolio/11", "application/json", strings.NewReader(`{"description":"Хрестини"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_MultipartImage(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("service_id", "3"))
	part, err := mw.CreateFormFile("image", "new.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nbytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	svc := new(mockService)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(req *models.UpdateItemRequest) bool {
		return req.ID == 11 &&
			req.ServiceID != nil && *req.ServiceID == 3 &&
			req.Image != nil && req.Image.Filename == "new.png"
	})).Return(&models.ItemResponse{ID: 11, ServiceID: 3, Image: "/media/portfolio/new.png"}, nil)

	rec := serve(svc, "/portfolio/11", mw.FormDataContentType(), &buf)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		err  error
		code int
	}{
		{name: "bad id", path: "/portfolio/x", body: `{}`, code: http.StatusBadRequest},
		{name: "unknown field", path: "/portfolio/11", body: `{"image":"/etc/passwd"}`, code: http.StatusBadRequest},
		{name: "zero service", path: "/portfolio/11", body: `{"service_id":0}`, code: http.StatusBadRequest},
		{name: "foreign item", path: "/portfolio/11", body: `{"description":"x"}`, err: portfolio.ErrPermissionDenied, code: http.StatusForbidden},
		{name: "missing item", path: "/portfolio/11", body: `{"description":"x"}`, err: portfolio.ErrItemNotFound, code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("Update", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(svc, tt.path, "application/json", strings.NewReader(tt.body))

			assert.Equal(t, tt.code, rec.Code)
			if tt.err == nil {
				svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}
