// Package labeling provides label detection collaborators: an HTTP JSON client
// and an Amazon Rekognition adapter.
package labeling

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/okian/labelreport/internal/domain/model"
)

const defaultTimeout = 10 * time.Second

// DetectRequest is the body sent to the labeling service.
type DetectRequest struct {
	Image string `json:"image"`
}

// DetectedLabel is a single label returned by the labeling service.
type DetectedLabel struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// DetectResponse is the labeling service response.
type DetectResponse struct {
	Labels []DetectedLabel `json:"labels"`
}

// HTTPClient detects labels through a JSON HTTP service.
type HTTPClient struct {
	baseURL string
	client  *resty.Client
}

// HTTPOption applies a configuration option to the HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPTimeout sets the request timeout.
func WithHTTPTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) {
		if d > 0 {
			c.client.SetTimeout(d)
		}
	}
}

// NewHTTPClient creates a labeling client for the service at baseURL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  resty.New().SetTimeout(defaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DetectLabels posts the image and returns the labels in service order.
func (c *HTTPClient) DetectLabels(ctx context.Context, image []byte) ([]model.Label, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(DetectRequest{Image: base64.StdEncoding.EncodeToString(image)}).
		Post(c.baseURL + "/detect-labels")
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode(), resp.String())
	}

	var out DetectResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	labels := make([]model.Label, len(out.Labels))
	for i, l := range out.Labels {
		labels[i] = model.Label{Name: l.Name, Confidence: l.Confidence}
	}
	return labels, nil
}
