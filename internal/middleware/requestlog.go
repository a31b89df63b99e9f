package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/coding-gurus/forum/internal/apperr"
	"github.com/coding-gurus/forum/internal/logger"
)

type contextKey string

const RequestIdKey contextKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestId tags each request with a uuid, exposed in the context and
// the X-Request-Id response header.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), RequestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestId(r *http.Request) string {
	if id, ok := r.Context().Value(RequestIdKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger logs one line per request with method, path, status
// and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{w, http.StatusOK}

		next.ServeHTTP(wrapped, r)

		logger.Log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
			"request_id", GetRequestId(r),
		)
	})
}

// Recoverer keeps a panicking handler inside the uniform error flow
// instead of killing the process.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Error("panic in handler",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", GetRequestId(r),
				)
				http.Error(w, apperr.DefaultMessage, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
