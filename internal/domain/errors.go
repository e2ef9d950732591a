package domain

import "errors"

var (
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidSpin       = errors.New("invalid spin")
	ErrInvalidConfig     = errors.New("invalid sampler config")
	ErrRandomUnavailable = errors.New("random source unavailable")
)
