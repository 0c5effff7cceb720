// Package fetch downloads images over HTTP.
package fetch

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Body encodings understood by the Fetcher.
const (
	EncodingBase64 = "base64"
	EncodingRaw    = "raw"
)

const defaultTimeout = 10 * time.Second

// Fetcher performs a single GET per image and decodes the body.
type Fetcher struct {
	client   *resty.Client
	timeout  time.Duration
	encoding string
}

// Option applies a configuration option to the Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithEncoding selects how the response body is turned into image bytes.
func WithEncoding(encoding string) Option {
	return func(f *Fetcher) {
		switch encoding {
		case EncodingBase64, EncodingRaw:
			f.encoding = encoding
		}
	}
}

// WithClient replaces the underlying resty client.
func WithClient(c *resty.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// New constructs a Fetcher. The body is base64 decoded unless
// WithEncoding(EncodingRaw) is given.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  defaultTimeout,
		encoding: EncodingBase64,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = resty.New()
	}
	f.client.SetTimeout(f.timeout).SetRetryCount(0)
	return f
}

// Fetch downloads url and returns the decoded image bytes.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	if f.encoding == EncodingRaw {
		return resp.Body(), nil
	}
	return decodeBase64(resp.Body())
}

// decodeBase64 accepts padded or unpadded standard base64 with arbitrary
// whitespace.
func decodeBase64(body []byte) ([]byte, error) {
	text := strings.Join(strings.Fields(string(body)), "")
	text = strings.TrimRight(text, "=")
	out, err := base64.RawStdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}
