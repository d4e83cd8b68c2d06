package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrUnknownCommand indicates a command name the engine does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArgument indicates a missing or malformed command argument.
	ErrInvalidArgument = errors.New("invalid argument")
)
