package send_results_email

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	sendResultsEmail "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_results_email"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *sendResultsEmail.Request) error {
	return m.Called(ctx, req).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/bookings/{id}/send-results-email", func(w http.ResponseWriter, r *http.Request) {
		h.Handle(w, r.WithContext(middleware.WithActor(r.Context(), admin)))
	}).Methods(http.MethodPost)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/bookings/21/send-results-email", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/bookings/21/send-results-email", strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &sendResultsEmail.Request{Actor: admin, BookingID: 21, Email: "client@example.com"}).Return(nil)

	rec := serve(uc, `{"email":"client@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"detail":"Результати успішно відправлено на email"}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_EmptyBodyUsesGuestEmail(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &sendResultsEmail.Request{Actor: admin, BookingID: 21}).Return(nil)

	rec := serve(uc, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_InvalidEmail(t *testing.T) {
	uc := new(mockUseCase)

	rec := serve(uc, `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "not found", err: sendResultsEmail.ErrBookingNotFound, code: http.StatusNotFound, msg: msgBookingNotFound},
		{name: "permission", err: sendResultsEmail.ErrPermissionDenied, code: http.StatusForbidden, msg: msgPermissionDenied},
		{name: "no results", err: sendResultsEmail.ErrNoResults, code: http.StatusBadRequest, msg: "Немає результатів для відправки"},
		{name: "no recipient", err: sendResultsEmail.ErrNoRecipient, code: http.StatusBadRequest, msg: "Email не вказано"},
		{name: "smtp failure", err: sendResultsEmail.ErrSendFailed, code: http.StatusBadGateway, msg: msgSendFailed},
		{name: "internal", err: sendResultsEmail.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(tt.err)

			rec := serve(uc, `{}`)

			assert.Equal(t, tt.code, rec.Code)
			if tt.msg != "" {
				assert.Contains(t, rec.Body.String(), tt.msg)
			}
		})
	}
}
