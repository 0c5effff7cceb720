// Package translation provides translation collaborators: an HTTP JSON client
// and an Amazon Translate adapter.
package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/okian/labelreport/internal/domain/model"
)

const defaultTimeout = 10 * time.Second

// TranslateRequest is the body sent to the translation service.
type TranslateRequest struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Text       string `json:"text"`
}

// TranslateResponse is the translation service response. A missing
// translated_text is an error; an empty one is not.
type TranslateResponse struct {
	TranslatedText *string `json:"translated_text"`
}

// HTTPClient translates text through a JSON HTTP service.
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

// NewHTTPClient creates a translation client for the service at baseURL.
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

// Translate sends in to the service and returns the translated text.
func (c *HTTPClient) Translate(ctx context.Context, in model.TranslateInput) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(TranslateRequest{SourceLang: in.SourceLang, TargetLang: in.TargetLang, Text: in.Text}).
		Post(c.baseURL + "/translate")
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode(), resp.String())
	}

	var out TranslateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.TranslatedText == nil {
		return "", ErrEmptyResponse
	}
	return *out.TranslatedText, nil
}
