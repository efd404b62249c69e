// Package logger provides a configurable slog factory with consistent defaults.
//
// The package wraps log/slog configuration behind functional options so every
// component builds loggers the same way. Defaults favor production use: JSON
// output to stdout at info level.
//
// # Usage
//
//	log := logger.New(
//		logger.WithTextFormatter(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("component", "batch")),
//	)
//	log.Info("worker started", "workers", 4)
//
// Use SetAsDefault to install the configured logger process-wide:
//
//	logger.SetAsDefault(log)
//
// # Configuration mapping
//
// ParseLevel and ParseFormat translate environment-sourced strings into typed
// values, falling back to info and text respectively so a misconfigured
// variable never prevents startup:
//
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
//	)
package logger
