package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/scrub"
	"github.com/dmitrymomot/scrub/pkg/config"
	"github.com/dmitrymomot/scrub/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Sanitize, validate and mask untrusted strings",
	Long: `Scrub runs sanitization and validation operations over untrusted
strings: format validators, HTML/XML cleanup, XSS/SQL-injection/path-
traversal filters, sensitive-data maskers, encoders, policy enforcement
and batch runs.

Content is read from an argument or stdin; every result is printed as a
JSON envelope on stdout. Configuration comes from SCRUB_* environment
variables (a .env file is honored).

Examples:
  # Validate an email address
  scrub run validate_email john@example.com

  # Neutralize XSS vectors in piped content
  cat comment.html | scrub run prevent_xss

  # Mask card numbers from a file, one per line
  scrub batch mask_credit_card --file cards.txt

  # Enforce a declarative policy
  scrub policy --policy limits.yaml "user bio text"`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildEngine assembles the engine from environment configuration. The
// logger writes to stderr so stdout stays machine-readable.
func buildEngine() (*scrub.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithOutput(os.Stderr),
	)

	opts := []scrub.Option{
		scrub.WithMaxContentLength(cfg.MaxContentLength),
		scrub.WithBatchWorkers(cfg.BatchWorkers),
		scrub.WithLogger(log),
	}
	if len(cfg.ProfanityWords) > 0 {
		opts = append(opts, scrub.WithProfanityWords(cfg.ProfanityWords...))
	}

	return scrub.New(opts...), nil
}

// printEnvelope writes the envelope as indented JSON. An error envelope
// also fails the command so scripts get a non-zero exit code.
func printEnvelope(cmd *cobra.Command, env scrub.Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if !env.OK() {
		return fmt.Errorf("operation failed: %s", env.Error)
	}
	return nil
}

// contentFromArgsOrStdin returns args[idx] when present, otherwise reads
// stdin. One trailing newline is trimmed so shell pipelines behave.
func contentFromArgsOrStdin(cmd *cobra.Command, args []string, idx int) (string, error) {
	if len(args) > idx {
		return args[idx], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// parseParams merges repeated key=value flags with an optional JSON
// object. JSON values win on key collisions.
func parseParams(pairs []string, rawJSON string) (map[string]any, error) {
	params := make(map[string]any)

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --param %q, expected key=value", pair)
		}
		params[key] = value
	}

	if rawJSON != "" {
		var extra map[string]any
		if err := json.Unmarshal([]byte(rawJSON), &extra); err != nil {
			return nil, fmt.Errorf("invalid --params JSON: %w", err)
		}
		for k, v := range extra {
			params[k] = v
		}
	}

	return params, nil
}
