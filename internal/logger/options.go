// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Style is the console rendering selected by --log-format.
type Style string

const (
	StyleText   Style = "text"
	StyleJSON   Style = "json"
	StylePretty Style = "pretty"
)

// ParseStyle maps a --log-format value onto a Style.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case StyleText, StyleJSON, StylePretty:
		return st, nil
	case "":
		return StyleText, nil
	}
	return "", fmt.Errorf("invalid log format %q (want text, json or pretty)", s)
}

// Option adjusts the console and file sinks built by New.
type Option func(*config)

// config is what New needs to assemble the handler chain: one console
// handler plus an optional rotating JSON file.
type config struct {
	level   slog.Level
	style   Style
	source  bool
	console []io.Writer // empty means os.Stderr
	file    string      // empty disables the file sink
}

// WithLevel sets the minimum level for every sink.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithDebug is WithLevel(slog.LevelDebug) when on; -v maps here.
func WithDebug(on bool) Option {
	return func(c *config) {
		if on {
			c.level = slog.LevelDebug
		}
	}
}

// WithStyle picks the console handler.
func WithStyle(s Style) Option {
	return func(c *config) { c.style = s }
}

// WithWriter sends console records to w instead of stderr. Several writers
// receive the same bytes.
func WithWriter(w ...io.Writer) Option {
	return func(c *config) { c.console = w }
}

// WithSource adds file:line to records.
func WithSource(on bool) Option {
	return func(c *config) { c.source = on }
}

// WithFile mirrors records as JSON into a size-rotated file at path.
func WithFile(path string) Option {
	return func(c *config) { c.file = path }
}
