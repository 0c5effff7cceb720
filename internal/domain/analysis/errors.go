package analysis

import "errors"

// Sentinel kinds for pipeline failures, one per step.
var (
	ErrFetchImage   = errors.New("fetch image failed")
	ErrDetectLabels = errors.New("detect labels failed")
	ErrTranslate    = errors.New("translate labels failed")
	ErrMisaligned   = errors.New("translated segments do not match labels")
)
