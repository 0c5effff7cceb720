package translation

import "errors"

// Sentinel errors for translation.
var (
	ErrUnexpectedStatus = errors.New("unexpected translation service status")
	ErrEmptyResponse    = errors.New("translation response has no text")
)
