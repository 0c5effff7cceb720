package service

import "errors"

// ErrMissingImageURL is returned when the invocation has no imageUrl parameter.
var ErrMissingImageURL = errors.New("missing imageUrl query parameter")
