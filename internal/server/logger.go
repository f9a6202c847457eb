// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"codeberg.org/oliverandrich/resonance-shop/internal/config"
)

// setupLogger configures the global slog logger from the log section of
// the server config. Text output goes through tint for local runs, JSON
// is for log shippers.
func setupLogger(cfg config.LogConfig) {
	level := parseLogLevel(cfg.Level)

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	}

	slog.SetDefault(slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("service", "resonance-shop"),
	})))
}

// parseLogLevel maps the configured level name to a slog level,
// defaulting to info for unknown values.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
