package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestIDKey is the context key under which the request ID is stored.
type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

// withLogging assigns every request a UUID, stores it on the context, and
// logs method, path, status, and duration when the handler returns.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(recorder, r.WithContext(ctx))

		s.logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// RequestID extracts the request ID from a context, or "" if absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
