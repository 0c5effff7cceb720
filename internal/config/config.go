// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file, a .env file and environment variables on top.
// - External errors must be wrapped via this package's sentinel errors.
package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Collaborator providers.
const (
	ProviderAWS  = "aws"
	ProviderHTTP = "http"
)

// Image body encodings.
const (
	EncodingBase64 = "base64"
	EncodingRaw    = "raw"
)

const maxConfidence = 100

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the logger backend: text (slog) or json (zap).
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Provider selects the labeling and translation collaborators: aws or http.
	Provider string `koanf:"provider"`

	// AWSRegion overrides the region picked by the SDK default chain.
	AWSRegion string `koanf:"aws_region"`

	// LabelerURL and TranslatorURL are the base URLs used by the http provider.
	LabelerURL    string `koanf:"labeler_url"`
	TranslatorURL string `koanf:"translator_url"`

	// HTTPTimeoutMS bounds every outbound HTTP call.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// ImageEncoding tells the fetcher how to read the image body: base64 or raw.
	ImageEncoding string `koanf:"image_encoding"`

	// ConfidenceThreshold is the exclusive lower bound for retained labels.
	ConfidenceThreshold float64 `koanf:"confidence_threshold"`

	SourceLang string `koanf:"source_lang"`
	TargetLang string `koanf:"target_lang"`

	// JoinSeparator glues label names before translation; SplitSeparator
	// recovers them from the translated text.
	JoinSeparator  string `koanf:"join_separator"`
	SplitSeparator string `koanf:"split_separator"`

	// StrictAlignment fails the invocation when the translated segment count
	// differs from the retained label count instead of truncating.
	StrictAlignment bool `koanf:"strict_alignment"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		Provider:            ProviderAWS,
		LabelerURL:          "http://localhost:8081",
		TranslatorURL:       "http://localhost:8082",
		HTTPTimeoutMS:       10_000,
		ImageEncoding:       EncodingBase64,
		ConfidenceThreshold: 80,
		SourceLang:          "en",
		TargetLang:          "pt",
		JoinSeparator:       " and ",
		SplitSeparator:      " e ",
	}
}

// Validate reports the first invalid setting wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.Provider != ProviderAWS && c.Provider != ProviderHTTP:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, c.Provider)
	case c.ImageEncoding != EncodingBase64 && c.ImageEncoding != EncodingRaw:
		return fmt.Errorf("%w: unknown image_encoding %q", ErrInvalidConfig, c.ImageEncoding)
	case c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > maxConfidence:
		return fmt.Errorf("%w: confidence_threshold must be within [0,100]", ErrInvalidConfig)
	case c.JoinSeparator == "" || c.SplitSeparator == "":
		return fmt.Errorf("%w: separators must not be empty", ErrInvalidConfig)
	case c.HTTPTimeoutMS <= 0:
		return fmt.Errorf("%w: http_timeout_ms must be positive", ErrInvalidConfig)
	}
	if _, err := language.Parse(c.SourceLang); err != nil {
		return fmt.Errorf("%w: %w: source_lang %q: %v", ErrInvalidConfig, ErrInvalidLanguage, c.SourceLang, err)
	}
	if _, err := language.Parse(c.TargetLang); err != nil {
		return fmt.Errorf("%w: %w: target_lang %q: %v", ErrInvalidConfig, ErrInvalidLanguage, c.TargetLang, err)
	}
	if c.Provider == ProviderHTTP && (c.LabelerURL == "" || c.TranslatorURL == "") {
		return fmt.Errorf("%w: http provider requires labeler_url and translator_url", ErrInvalidConfig)
	}
	return nil
}
