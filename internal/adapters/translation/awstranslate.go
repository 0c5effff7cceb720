package translation

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/okian/labelreport/internal/domain/model"
)

// TranslateTextAPI is the part of the Amazon Translate client used here.
type TranslateTextAPI interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// AWS translates text with Amazon Translate.
type AWS struct {
	api TranslateTextAPI
}

// NewAWS wraps an Amazon Translate client.
func NewAWS(api TranslateTextAPI) *AWS {
	return &AWS{api: api}
}

// Translate calls TranslateText with the given languages.
func (t *AWS) Translate(ctx context.Context, in model.TranslateInput) (string, error) {
	out, err := t.api.TranslateText(ctx, &translate.TranslateTextInput{
		SourceLanguageCode: aws.String(in.SourceLang),
		TargetLanguageCode: aws.String(in.TargetLang),
		Text:               aws.String(in.Text),
	})
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}
	if out.TranslatedText == nil {
		return "", ErrEmptyResponse
	}
	return *out.TranslatedText, nil
}
