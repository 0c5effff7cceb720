package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	service "github.com/okian/labelreport/internal/app"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// AnalyzeHandler handles report requests.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// HandleAnalyze handles GET /analyze?imageUrl=... requests. The status and
// body are the ones the service produced.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	resp := h.deps.Invoke(r.Context(), service.Event{
		QueryParameters: queryParameters(r),
		RequestID:       requestID,
	})

	w.Header().Set(RequestIDHeader, requestID)
	writeText(w, resp.StatusCode, resp.Body)
}

// queryParameters keeps the first value of each key.
func queryParameters(r *http.Request) map[string]string {
	values := r.URL.Query()
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}
