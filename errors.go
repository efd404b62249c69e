package scrub

import "errors"

var (
	// ErrUnknownOperation is returned when the requested operation name is
	// not in the catalogue.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingParameter is returned when a required parameter is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidParameter is returned when a parameter has the wrong type
	// or an unusable value.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrContentTooLarge is returned when content exceeds the engine's
	// configured size ceiling.
	ErrContentTooLarge = errors.New("content too large")

	// ErrNotBatchable is returned when a batch names an operation that
	// cannot run as a batch item.
	ErrNotBatchable = errors.New("operation cannot run inside a batch")

	// ErrOperationPanic wraps a panic recovered at the dispatch boundary.
	ErrOperationPanic = errors.New("operation panicked")
)
