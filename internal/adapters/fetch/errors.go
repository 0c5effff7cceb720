package fetch

import "errors"

// Sentinel errors for image fetching.
var (
	ErrEmptyURL         = errors.New("image url is empty")
	ErrUnexpectedStatus = errors.New("unexpected image response status")
	ErrDecode           = errors.New("decode image body")
)
