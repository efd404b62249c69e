package policy

import "errors"

var (
	// ErrInvalidPolicy marks policies that cannot be compiled: unknown
	// fields, wrong value types, negative lengths or non-compiling
	// patterns.
	ErrInvalidPolicy = errors.New("invalid policy")
)
