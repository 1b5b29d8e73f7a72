package middleware

import (
	"net/http"
	"time"

	"clinic-registry/pkg/response"

	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AccessLog logs one line per request after it has been served.
func (m *LoggingMiddleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestID, _ := GetRequestIDFromContext(r.Context())
		callerID, _ := GetCallerIDFromContext(r.Context())
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"caller_id":  callerID,
			"method":     r.Method,
			"endpoint":   r.URL.Query().Get("endpoint"),
			"status":     rec.status,
			"duration":   time.Since(start).String(),
		}).Info("request served")
	})
}

// Recover turns a panic in a handler into a 500 response.
func (m *LoggingMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID, _ := GetRequestIDFromContext(r.Context())
				m.log.WithField("request_id", requestID).Errorf("Recovered from panic: %v", rec)
				response.InternalServerError(w, "")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
