package engine

import "errors"

var (
	// ErrInvalidRequest indicates a nil or malformed request.
	ErrInvalidRequest = errors.New("invalid request")
)
