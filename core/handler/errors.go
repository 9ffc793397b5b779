package handler

import "errors"

// ErrNilResponse indicates a handler returned a nil Response.
// The error handler turns it into a 500 so the client never hangs.
var ErrNilResponse = errors.New("handler returned nil response")
