// Package lambda adapts API Gateway proxy events to the service.
package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	service "github.com/okian/labelreport/internal/app"
)

const contentTypeText = "text/plain; charset=utf-8"

// Invoker handles one invocation.
type Invoker interface {
	Invoke(ctx context.Context, ev service.Event) service.Response
}

// Handler serves API Gateway proxy requests.
type Handler struct {
	svc Invoker
}

// NewHandler creates a Handler around svc.
func NewHandler(svc Invoker) *Handler {
	return &Handler{svc: svc}
}

// Handle never returns an error; failures are already mapped to a 500 response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := h.svc.Invoke(ctx, service.Event{
		QueryParameters: req.QueryStringParameters,
		RequestID:       requestID(ctx, req),
	})

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": contentTypeText},
		Body:       resp.Body,
	}, nil
}

// requestID prefers the API Gateway request id, then the Lambda one.
func requestID(ctx context.Context, req events.APIGatewayProxyRequest) string {
	if req.RequestContext.RequestID != "" {
		return req.RequestContext.RequestID
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}
