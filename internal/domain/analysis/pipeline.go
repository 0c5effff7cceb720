// Package analysis turns an image URL into a translated label report.
//
// The pipeline is a fixed, sequential chain: fetch the image, detect labels,
// keep the confident ones, translate their joined names, split the
// translation back into one segment per label and format a report.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/labelreport/internal/domain/model"
	"github.com/okian/labelreport/pkg/logger"
	"github.com/okian/labelreport/pkg/metrics"
)

// Default pipeline configuration constants.
const (
	DefaultThreshold      = 80.0
	DefaultSourceLang     = "en"
	DefaultTargetLang     = "pt"
	DefaultJoinSeparator  = " and "
	DefaultSplitSeparator = " e "
)

// ImageFetcher downloads the image behind a URL.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Pipeline holds the collaborators shared by every invocation. It keeps no
// per-request state and is safe for concurrent use.
type Pipeline struct {
	fetcher    ImageFetcher
	labels     LabelSource
	translator Translator

	threshold  float64
	sourceLang string
	targetLang string
	joinSep    string
	splitSep   string
	strict     bool
}

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithThreshold sets the exclusive confidence threshold.
func WithThreshold(threshold float64) Option {
	return func(p *Pipeline) {
		if threshold >= 0 {
			p.threshold = threshold
		}
	}
}

// WithLanguages sets the translation source and target languages.
func WithLanguages(source, target string) Option {
	return func(p *Pipeline) {
		if source != "" && target != "" {
			p.sourceLang = source
			p.targetLang = target
		}
	}
}

// WithSeparators sets the separator used to join names before translation
// and the one used to split the translated text.
func WithSeparators(join, split string) Option {
	return func(p *Pipeline) {
		if join != "" && split != "" {
			p.joinSep = join
			p.splitSep = split
		}
	}
}

// WithStrictAlignment makes a segment/label count mismatch fail with
// ErrMisaligned instead of truncating to the shorter side.
func WithStrictAlignment(strict bool) Option {
	return func(p *Pipeline) {
		p.strict = strict
	}
}

// New constructs a Pipeline around its three collaborators.
func New(fetcher ImageFetcher, labels LabelSource, translator Translator, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:    fetcher,
		labels:     labels,
		translator: translator,
		threshold:  DefaultThreshold,
		sourceLang: DefaultSourceLang,
		targetLang: DefaultTargetLang,
		joinSep:    DefaultJoinSeparator,
		splitSep:   DefaultSplitSeparator,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run produces the report for the image behind imageURL.
func (p *Pipeline) Run(ctx context.Context, imageURL string) (string, error) {
	log := logger.FromContext(ctx)

	log.Info(ctx, "downloading image", logger.String("image_url", imageURL))
	var image []byte
	err := p.step(ctx, metrics.StepFetch, func() error {
		var err error
		image, err = p.fetcher.Fetch(ctx, imageURL)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchImage, err)
	}
	metrics.RecordImageBytes(len(image))

	log.Info(ctx, "detecting labels", logger.Int("image_bytes", len(image)))
	joined, labels, err := p.DetectLabels(ctx, image)
	if err != nil {
		return "", err
	}

	log.Info(ctx, "translating labels", logger.Int("labels", len(labels)))
	names, err := p.Translate(ctx, joined)
	if err != nil {
		return "", err
	}
	log.Debug(ctx, "translated labels", logger.Any("segments", names))

	log.Info(ctx, "formatting report")
	var report string
	err = p.step(ctx, metrics.StepFormat, func() error {
		var err error
		report, err = p.Format(ctx, names, labels)
		return err
	})
	return report, err
}

// DetectLabels asks the labeling service for labels, keeps those above the
// threshold and joins their names for translation.
func (p *Pipeline) DetectLabels(ctx context.Context, image []byte) (string, []model.Label, error) {
	var all []model.Label
	err := p.step(ctx, metrics.StepDetect, func() error {
		var err error
		all, err = p.labels.DetectLabels(ctx, image)
		return err
	})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrDetectLabels, err)
	}

	kept := FilterLabels(all, p.threshold)
	metrics.RecordLabels(len(all), len(kept))
	logger.FromContext(ctx).Debug(ctx, "labels filtered",
		logger.Int("detected", len(all)),
		logger.Int("retained", len(kept)),
		logger.Float64("threshold", p.threshold),
	)
	return JoinNames(kept, p.joinSep), kept, nil
}

// Translate translates text and splits it back into one segment per name.
// Empty text is sent as is.
func (p *Pipeline) Translate(ctx context.Context, text string) ([]string, error) {
	var translated string
	err := p.step(ctx, metrics.StepTranslate, func() error {
		var err error
		translated, err = p.translator.Translate(ctx, model.TranslateInput{
			SourceLang: p.sourceLang,
			TargetLang: p.targetLang,
			Text:       text,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranslate, err)
	}
	return SplitTranslation(translated, p.splitSep), nil
}

// Format renders the report, reporting any count mismatch between names and
// labels. In strict mode a mismatch is an error.
func (p *Pipeline) Format(ctx context.Context, names []string, labels []model.Label) (string, error) {
	if len(names) != len(labels) {
		metrics.RecordAlignmentMismatch()
		logger.FromContext(ctx).Warn(ctx, "translated segments do not match retained labels",
			logger.Int("segments", len(names)),
			logger.Int("labels", len(labels)),
			logger.Any("strict", p.strict),
		)
		if p.strict {
			return "", fmt.Errorf("%w: %d segments for %d labels", ErrMisaligned, len(names), len(labels))
		}
	}
	return FormatReport(names, labels), nil
}

// step times fn and records its outcome under the given step name.
func (p *Pipeline) step(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	latency := float64(time.Since(start).Milliseconds())
	metrics.RecordStepLatency(name, latency)
	if err != nil {
		metrics.RecordStepError(name)
		metrics.RecordErrorLatency(name, "step_failed", latency)
		logger.FromContext(ctx).Debug(ctx, "step failed", logger.String("step", name), logger.Error(err))
	}
	return err
}
