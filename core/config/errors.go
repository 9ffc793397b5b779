package config

import "errors"

var (
	// ErrInvalidTarget indicates the value passed to Load is not a pointer to struct.
	ErrInvalidTarget = errors.New("config target must be a pointer to struct")

	// ErrParseFailed indicates environment variable parsing failed,
	// typically a missing required variable or a malformed value.
	ErrParseFailed = errors.New("failed to parse environment variables")
)
