package labeling

import "errors"

// Sentinel errors for label detection.
var (
	ErrUnexpectedStatus = errors.New("unexpected labeling service status")
	ErrDecodeResponse   = errors.New("decode labeling response")
)
