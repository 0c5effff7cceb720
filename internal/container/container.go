// Package container builds the service graph from configuration.
package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/okian/labelreport/internal/adapters/fetch"
	"github.com/okian/labelreport/internal/adapters/labeling"
	"github.com/okian/labelreport/internal/adapters/translation"
	service "github.com/okian/labelreport/internal/app"
	"github.com/okian/labelreport/internal/config"
	"github.com/okian/labelreport/internal/domain/analysis"
	"github.com/okian/labelreport/pkg/logger"
)

// ErrUnknownProvider is returned for a provider other than aws or http.
var ErrUnknownProvider = errors.New("unknown collaborator provider")

// Container holds the long-lived components shared by every invocation.
type Container struct {
	Pipeline *analysis.Pipeline
	Service  *service.Service
}

// New builds the fetcher, the collaborators selected by cfg.Provider, the
// pipeline and the service.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	timeout := time.Duration(cfg.HTTPTimeoutMS) * time.Millisecond

	var (
		labels     analysis.LabelSource
		translator analysis.Translator
	)
	switch cfg.Provider {
	case config.ProviderAWS:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.AWSRegion != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		labels = labeling.NewRekognition(rekognition.NewFromConfig(awsCfg))
		translator = translation.NewAWS(translate.NewFromConfig(awsCfg))
	case config.ProviderHTTP:
		labels = labeling.NewHTTPClient(cfg.LabelerURL, labeling.WithHTTPTimeout(timeout))
		translator = translation.NewHTTPClient(cfg.TranslatorURL, translation.WithHTTPTimeout(timeout))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	fetcher := fetch.New(
		fetch.WithTimeout(timeout),
		fetch.WithEncoding(cfg.ImageEncoding),
	)

	pipeline := analysis.New(fetcher, labels, translator,
		analysis.WithThreshold(cfg.ConfidenceThreshold),
		analysis.WithLanguages(cfg.SourceLang, cfg.TargetLang),
		analysis.WithSeparators(cfg.JoinSeparator, cfg.SplitSeparator),
		analysis.WithStrictAlignment(cfg.StrictAlignment),
	)

	logger.FromContext(ctx).Info(ctx, "service graph built",
		logger.String("provider", cfg.Provider),
		logger.String("image_encoding", cfg.ImageEncoding),
		logger.Float64("confidence_threshold", cfg.ConfidenceThreshold),
	)

	return &Container{
		Pipeline: pipeline,
		Service:  service.New(pipeline, service.WithLogger(logger.FromContext(ctx).Named("service"))),
	}, nil
}
