// Package errz provides shared error definitions for the config package.
package errz

import "errors"

// Top-level error categories
var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedConfigVer   = errors.New("unsupported config version")
)

// Validation specific errors
var (
	ErrInvalidPort      = errors.New("invalid port")
	ErrInvalidHost      = errors.New("invalid host")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrUnknownFixture   = errors.New("unknown fixture")
)
