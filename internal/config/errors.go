package config

import "errors"

var (
	ErrNoDSNProvided      = errors.New("no database DSN provided")
	ErrNoTokenSignKey     = errors.New("no token sign key provided")
	ErrUnknownDriver      = errors.New("unknown storage driver")
	ErrNonPositiveTimeout = errors.New("timeout must be positive")
)
