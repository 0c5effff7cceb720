package config

import "errors"

// Sentinel error kinds for this package. Language failures wrap both
// ErrInvalidConfig and ErrInvalidLanguage.
var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidLanguage = errors.New("invalid language tag")
	ErrLoadConfig      = errors.New("load config failed")
)
