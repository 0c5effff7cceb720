// Package service provides the request handler shared by the Lambda and HTTP
// entry points. It turns an invocation event into an HTTP-shaped response.
package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/labelreport/internal/domain/analysis"
	"github.com/okian/labelreport/pkg/logger"
	"github.com/okian/labelreport/pkg/metrics"
)

// Response bodies and the query parameter carrying the image URL.
const (
	ReportPrefix       = "A imagem tem\n "
	InternalErrorBody  = "Internal server error!"
	ImageURLQueryParam = "imageUrl"
)

const (
	componentName       = "service"
	errorSeverityHigh   = "high"
	errorSeverityMedium = "medium"
)

// Event is one invocation of the handler.
type Event struct {
	QueryParameters map[string]string
	// RequestID is supplied by the platform when available.
	RequestID string
}

// Response is the HTTP-shaped result of an invocation.
type Response struct {
	StatusCode int
	Body       string
}

// Runner produces the report for an image URL.
type Runner interface {
	Run(ctx context.Context, imageURL string) (string, error)
}

// Service handles invocations. It holds no per-request state.
type Service struct {
	runner Runner
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service around the report runner.
func New(runner Runner, opts ...Option) *Service {
	s := &Service{runner: runner}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invoke runs the pipeline for the imageUrl query parameter. Every failure is
// logged and collapsed into a 500 with a generic body.
func (s *Service) Invoke(ctx context.Context, ev Event) Response {
	start := time.Now()

	requestID := ev.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	base := s.logger
	if base == nil {
		base = logger.FromContext(ctx)
	}
	log := base.With(logger.String("request_id", requestID))
	ctx = logger.WithContext(ctx, log)

	resp := s.invoke(ctx, log, ev)

	duration := float64(time.Since(start).Milliseconds())
	metrics.RecordInvocation(strconv.Itoa(resp.StatusCode), duration)
	log.Info(ctx, "invocation finished",
		logger.Int("status_code", resp.StatusCode),
		logger.Float64("duration_ms", duration),
	)
	return resp
}

func (s *Service) invoke(ctx context.Context, log logger.Logger, ev Event) Response {
	imageURL := strings.TrimSpace(ev.QueryParameters[ImageURLQueryParam])
	if imageURL == "" {
		return s.fail(ctx, log, ErrMissingImageURL)
	}

	report, err := s.runner.Run(ctx, imageURL)
	if err != nil {
		return s.fail(ctx, log, err)
	}

	return Response{StatusCode: http.StatusOK, Body: ReportPrefix + report}
}

func (s *Service) fail(ctx context.Context, log logger.Logger, err error) Response {
	step, severity := classify(err)
	metrics.RecordErrorByComponent(componentName, step)
	metrics.RecordErrorByType(step, severity)
	log.Error(ctx, "invocation failed", logger.String("step", step), logger.Error(err))
	return Response{StatusCode: http.StatusInternalServerError, Body: InternalErrorBody}
}

// classify maps an error to the step that produced it.
func classify(err error) (step, severity string) {
	switch {
	case errors.Is(err, ErrMissingImageURL):
		return "request", errorSeverityMedium
	case errors.Is(err, analysis.ErrFetchImage):
		return metrics.StepFetch, errorSeverityMedium
	case errors.Is(err, analysis.ErrDetectLabels):
		return metrics.StepDetect, errorSeverityHigh
	case errors.Is(err, analysis.ErrTranslate):
		return metrics.StepTranslate, errorSeverityHigh
	case errors.Is(err, analysis.ErrMisaligned):
		return metrics.StepFormat, errorSeverityMedium
	default:
		return "unknown", errorSeverityHigh
	}
}
