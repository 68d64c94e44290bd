package list_portfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ListResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Filters(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListRequest) bool {
		return req.PhotographerID != nil && *req.PhotographerID == 4 && req.ServiceID == nil
	})).Return(&models.ListResponse{Items: []models.ItemResponse{{ID: 11, PhotographerID: 4, Image: "/media/portfolio/a.jpg"}}}, nil)

	rec := serve(svc, "/portfolio?photographer=4")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"image":"/media/portfolio/a.jpg"`)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidFilter(t *testing.T) {
	svc := new(mockService)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/portfolio?photographer=abc").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/portfolio?service=-2").Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
