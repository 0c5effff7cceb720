// Package model contains domain models passed between layers.
package model

// Label is a detected object or category as returned by the labeling service.
type Label struct {
	Name       string  // English category name, e.g. "Dog"
	Confidence float64 // detection certainty as a percentage, 0-100
}

// TranslateInput is the request sent to the translation service.
type TranslateInput struct {
	SourceLang string // BCP 47 tag, e.g. "en"
	TargetLang string // BCP 47 tag, e.g. "pt"
	Text       string
}
