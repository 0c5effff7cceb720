package analysis

import (
	"context"
	"strings"

	"github.com/okian/labelreport/internal/domain/model"
)

// LabelSource returns the labels detected in an image, in the order the
// labeling service ranked them.
type LabelSource interface {
	DetectLabels(ctx context.Context, image []byte) ([]model.Label, error)
}

// FilterLabels keeps labels whose confidence is strictly greater than
// threshold, preserving order. A label exactly at the threshold is dropped.
func FilterLabels(labels []model.Label, threshold float64) []model.Label {
	kept := make([]model.Label, 0, len(labels))
	for _, l := range labels {
		if l.Confidence > threshold {
			kept = append(kept, l)
		}
	}
	return kept
}

// JoinNames concatenates label names with sep. No labels yields "".
func JoinNames(labels []model.Label, sep string) string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return strings.Join(names, sep)
}
