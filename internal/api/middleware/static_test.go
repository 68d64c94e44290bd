package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoSniff(t *testing.T) {
	handler := NoSniff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/results/photos/a.jpg", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
