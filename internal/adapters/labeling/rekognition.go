package labeling

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/okian/labelreport/internal/domain/model"
)

// DetectLabelsAPI is the part of the Rekognition client used here.
type DetectLabelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// Rekognition detects labels with Amazon Rekognition.
type Rekognition struct {
	api DetectLabelsAPI
}

// NewRekognition wraps a Rekognition client.
func NewRekognition(api DetectLabelsAPI) *Rekognition {
	return &Rekognition{api: api}
}

// DetectLabels sends the raw image bytes and returns the labels in service order.
func (r *Rekognition) DetectLabels(ctx context.Context, image []byte) ([]model.Label, error) {
	out, err := r.api.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image: &types.Image{Bytes: image},
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition detect labels: %w", err)
	}

	labels := make([]model.Label, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, model.Label{
			Name:       aws.ToString(l.Name),
			Confidence: widenConfidence(aws.ToFloat32(l.Confidence)),
		})
	}
	return labels, nil
}

// widenConfidence converts a float32 confidence to the float64 nearest its
// shortest decimal form, so 92.345 stays 92.345 instead of 92.34500122070312.
func widenConfidence(c float32) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(c), 'g', -1, 32), 64)
	if err != nil {
		return float64(c)
	}
	return f
}
