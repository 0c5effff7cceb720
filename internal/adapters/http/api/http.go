// Package api serves the report over plain HTTP for local and container runs.
package api

import (
	"context"
	"net/http"

	service "github.com/okian/labelreport/internal/app"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	Invoke(ctx context.Context, ev service.Event) service.Response
}

// Server wires HTTP routes for the report API.
type Server struct {
	healthHandler  *HealthHandler
	analyzeHandler *AnalyzeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		analyzeHandler: NewAnalyzeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/analyze", MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze"))
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
