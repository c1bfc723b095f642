package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDKey contextKey = "request_id"

const RequestIDHeader = "X-Request-ID"

// statusRecorder captures the status written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type RequestLogger struct {
	log *logrus.Logger
}

func NewRequestLogger(log *logrus.Logger) *RequestLogger {
	return &RequestLogger{log: log}
}

// Handle tags each request with an ID (reusing the client's when present) and logs its outcome
func (m *RequestLogger) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), RequestIDKey, requestID)))

		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
		}).Info("HTTP request")
	})
}

// GetRequestIDFromContext extracts the request ID set by RequestLogger
func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDKey).(string)
	return requestID
}
