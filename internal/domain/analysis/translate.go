package analysis

import (
	"context"
	"strings"

	"github.com/okian/labelreport/internal/domain/model"
)

// Translator turns a text into the target language.
type Translator interface {
	Translate(ctx context.Context, in model.TranslateInput) (string, error)
}

// SplitTranslation recovers one segment per joined label name.
//
// The split is purely textual: a translated name that itself contains sep
// produces extra segments and shifts every later pairing.
func SplitTranslation(text, sep string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, sep)
}
