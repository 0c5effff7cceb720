package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/labelreport/pkg/logger"
	"github.com/okian/labelreport/pkg/metrics"
)

// MetricsMiddleware records request count, latency and error metrics for an
// endpoint and writes one access log line per request.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		durationMs := float64(time.Since(start).Milliseconds())
		status := strconv.Itoa(wrapped.statusCode)

		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, durationMs)

		if wrapped.statusCode >= http.StatusBadRequest {
			errorType := errorTypeFor(wrapped.statusCode)
			metrics.RecordErrorByEndpoint(endpoint, r.Method, errorType)
			metrics.RecordErrorLatency("http", errorType, durationMs)
		}

		logger.FromContext(r.Context()).Debug(r.Context(), "http request",
			logger.String("endpoint", endpoint),
			logger.String("method", r.Method),
			logger.Int("status_code", wrapped.statusCode),
			logger.Int("bytes", wrapped.written),
			logger.Float64("duration_ms", durationMs),
		)
	}
}

// errorTypeFor buckets an error status. The analyze route only ever fails
// with 500 (pipeline) or 404 (method).
func errorTypeFor(statusCode int) string {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return "server_error"
	case statusCode == http.StatusNotFound:
		return "not_found"
	default:
		return "client_error"
	}
}

// responseWriter captures the status code and body size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	if err != nil {
		return n, fmt.Errorf("failed to write response: %w", err)
	}
	return n, nil
}
