package config

import "errors"

var (
	// ErrParsingConfig is returned when an environment variable cannot be
	// parsed into its Config field.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
