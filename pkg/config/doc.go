// Package config loads engine and CLI settings from environment variables,
// with optional .env file support for local development.
//
// Settings are declared as struct tags and parsed once per call:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // a variable failed to parse
//	}
//
// Every variable has a default, so a bare environment yields a working
// configuration. The .env file, when present in the working directory, is
// read once per process and never overrides variables already set.
package config
