package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging_AssignsRequestID(t *testing.T) {
	s := newTestServer(t)

	var seen string
	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestWithLogging_PropagatesCallerRequestID(t *testing.T) {
	s := newTestServer(t)

	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caller-id-123", RequestID(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "caller-id-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "caller-id-123", rr.Header().Get(RequestIDHeader))
}

func TestRequestID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestID(req.Context()))
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	s := newTestServer(t)

	called := false
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/check", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "Text", Message: "failed required validation"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(io.ErrUnexpectedEOF))
}

func TestClientAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:4100"
	assert.Equal(t, "192.0.2.7", clientAddr(req))

	req.RemoteAddr = "weird-no-port"
	assert.Equal(t, "weird-no-port", clientAddr(req))
}
