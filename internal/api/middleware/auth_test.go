package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
)

const testSecret = "test-secret-123"

type mockPhotographerLookup struct {
	mock.Mock
}

func (m *mockPhotographerLookup) GetByUserID(ctx context.Context, userID int64) (*domain.Photographer, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*domain.Photographer)
	return p, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func signToken(t *testing.T, secret string, userID int64, role string, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

// newRouter отдаёт актора из контекста как "user_id:role:photographer_id"
func newRouter(mw mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	router.Use(mw)
	router.HandleFunc("/protected", func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok {
			_, _ = w.Write([]byte("anonymous"))
			return
		}
		pid := int64(0)
		if actor.PhotographerID != nil {
			pid = *actor.PhotographerID
		}
		_, _ = fmt.Fprintf(w, "%d:%s:%d", actor.UserID, actor.Role, pid)
	})
	return router
}

func serve(router http.Handler, token string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidCustomerToken(t *testing.T) {
	lookup := new(mockPhotographerLookup)
	a := NewAuthenticator(testSecret, lookup, nopLogger{})

	rec := serve(newRouter(a.Auth), signToken(t, testSecret, 42, "customer", time.Hour))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42:customer:0", rec.Body.String())
	lookup.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestAuth_PhotographerProfileResolved(t *testing.T) {
	lookup := new(mockPhotographerLookup)
	lookup.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.Photographer{ID: 3, UserID: 7}, nil)
	a := NewAuthenticator(testSecret, lookup, nopLogger{})

	rec := serve(newRouter(a.Auth), signToken(t, testSecret, 7, "Photographer", time.Hour))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7:photographer:3", rec.Body.String())
	lookup.AssertExpectations(t)
}

func TestAuth_PhotographerWithoutProfile(t *testing.T) {
	lookup := new(mockPhotographerLookup)
	lookup.On("GetByUserID", mock.Anything, int64(7)).Return(nil, photographerRepo.ErrPhotographerNotFound)
	a := NewAuthenticator(testSecret, lookup, nopLogger{})

	rec := serve(newRouter(a.Auth), signToken(t, testSecret, 7, "photographer", time.Hour))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7:photographer:0", rec.Body.String())
}

func TestAuth_LookupFailure(t *testing.T) {
	lookup := new(mockPhotographerLookup)
	lookup.On("GetByUserID", mock.Anything, int64(7)).Return(nil, errors.New("db down"))
	a := NewAuthenticator(testSecret, lookup, nopLogger{})

	rec := serve(newRouter(a.Auth), signToken(t, testSecret, 7, "photographer", time.Hour))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuth_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "missing", token: func(*testing.T) string { return "" }},
		{name: "garbage", token: func(*testing.T) string { return "invalid-jwt-here" }},
		{name: "wrong secret", token: func(t *testing.T) string { return signToken(t, "other", 1, "customer", time.Hour) }},
		{name: "expired", token: func(t *testing.T) string { return signToken(t, testSecret, 1, "customer", -time.Minute) }},
		{name: "unknown role", token: func(t *testing.T) string { return signToken(t, testSecret, 1, "root", time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuthenticator(testSecret, new(mockPhotographerLookup), nopLogger{})
			rec := serve(newRouter(a.Auth), tt.token(t))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	a := NewAuthenticator(testSecret, new(mockPhotographerLookup), nopLogger{})
	router := newRouter(a.OptionalAuth)

	t.Run("anonymous passes", func(t *testing.T) {
		rec := serve(router, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token sets actor", func(t *testing.T) {
		rec := serve(router, signToken(t, testSecret, 5, "admin", time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5:admin:0", rec.Body.String())
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		rec := serve(router, "invalid-jwt-here")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
