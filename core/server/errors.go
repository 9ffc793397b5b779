package server

import "errors"

var (
	// ErrServerAlreadyRunning indicates Start was called on a running server.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrMissingAddress is returned when server address is not provided.
	ErrMissingAddress = errors.New("server address is required")
)
