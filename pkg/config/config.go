package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the engine and CLI expose through the
// environment.
type Config struct {
	// MaxContentLength caps the content accepted by a single operation,
	// in bytes. Zero disables the ceiling.
	MaxContentLength int `env:"SCRUB_MAX_CONTENT_LENGTH" envDefault:"1048576"`

	// BatchWorkers sets the batch runner's concurrency. Values below two
	// keep batches sequential.
	BatchWorkers int `env:"SCRUB_BATCH_WORKERS" envDefault:"1"`

	// ProfanityWords overrides the built-in profanity list.
	ProfanityWords []string `env:"SCRUB_PROFANITY_WORDS" envSeparator:","`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"SCRUB_LOG_LEVEL" envDefault:"info"`

	// LogFormat is json or text.
	LogFormat string `env:"SCRUB_LOG_FORMAT" envDefault:"text"`
}

var dotenvOnce sync.Once

// Load reads the .env file once per process, then parses the environment
// into a fresh Config.
func Load() (Config, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional; a missing one is not an error.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Meant for program start,
// where running with a broken configuration is worse than not running.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
