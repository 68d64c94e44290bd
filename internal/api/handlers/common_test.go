package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "Цей час вже зайнятий")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusBadRequest, Message: "Цей час вже зайнятий"}, body)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("ok", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "Anna", p.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna","age":3}`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestValidate(t *testing.T) {
	type dto struct {
		Email string  `validate:"required,email"`
		IDs   []int64 `validate:"max=2,dive,gt=0"`
	}

	assert.NoError(t, Validate(dto{Email: "a@b.ua", IDs: []int64{1}}))

	err := Validate(dto{Email: "nope", IDs: []int64{1, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email:email")
}

func TestPathID(t *testing.T) {
	var got int64
	var gotErr error

	router := mux.NewRouter()
	router.HandleFunc("/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathID(r, "id")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/42", nil))
	require.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/-1", nil))
	assert.Error(t, gotErr)
}

func TestQueryID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?service=7&bad=x", nil)

	id, ok, err := QueryID(r, "service")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	_, ok, err = QueryID(r, "photographer")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = QueryID(r, "bad")
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("14.03.2025")
	assert.Error(t, err)

	empty, err := ParseOptionalDate("")
	assert.NoError(t, err)
	assert.Nil(t, empty)
}
