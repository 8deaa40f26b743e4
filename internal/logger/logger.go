// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logger builds the *slog.Logger used across the craft CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a logger from the given options. The default is an Info-level
// text logger on stderr.
func New(opts ...Option) *slog.Logger {
	c := &config{level: slog.LevelInfo, style: StyleText}
	for _, opt := range opts {
		opt(c)
	}

	var w io.Writer = os.Stderr
	switch len(c.console) {
	case 0:
	case 1:
		w = c.console[0]
	default:
		w = io.MultiWriter(c.console...)
	}

	console := slog.New(consoleHandler(w, c))
	if c.file == "" {
		return console
	}

	file := slog.New(slog.NewJSONHandler(rotatingFile(c.file), &slog.HandlerOptions{
		Level:     c.level,
		AddSource: c.source,
	}))
	return Multi(console, file)
}

func consoleHandler(w io.Writer, c *config) slog.Handler {
	switch c.style {
	case StylePretty:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(c.level),
			ReportTimestamp: true,
			ReportCaller:    c.source,
		})
	case StyleJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.level, AddSource: c.source})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.level, AddSource: c.source})
	}
}

func rotatingFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a slog level.
// An empty string is Info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", level)
	}
}
