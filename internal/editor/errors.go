package editor

import "errors"

// Errors returned by editor operations.
var (
	// ErrInvalidArgument indicates a setter received an out-of-domain value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownOperation indicates an operation name that does not map to a Kind.
	ErrUnknownOperation = errors.New("unknown operation")
)
