// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app carries the per-invocation state shared by craft commands:
// resolved settings, the logger, and the directory the command runs in.
package app

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/internal/clierr"
	"github.com/bartekus/craft/internal/logger"
	"github.com/bartekus/craft/internal/reportcache"
	"github.com/bartekus/craft/internal/settings"
	"github.com/bartekus/craft/internal/teachconfig"
)

// App is filled in by Configure before any subcommand runs.
type App struct {
	Settings settings.Settings
	Logger   *slog.Logger

	// WorkDir anchors relative paths and the upward config search.
	// Empty means the process working directory.
	WorkDir string

	// Now is the clock used for timestamps.
	Now func() time.Time
}

// New returns an App with default settings and a discarding logger.
func New() *App {
	return &App{
		Settings: settings.Defaults(),
		Logger:   logger.Nop(),
		Now:      time.Now,
	}
}

// RegisterGlobalFlags adds the flags every craft command accepts.
func RegisterGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "enable verbose output")
	settings.AddStringFlag(pf, settings.FlagLogLevel)
	settings.AddStringFlag(pf, settings.FlagLogFormat)
	settings.AddStringFlag(pf, settings.FlagLogFile)
	settings.AddBoolFlag(pf, settings.FlagNoColor)
}

// Configure resolves settings for the command about to run and builds the
// logger. It is meant to be the root command's PersistentPreRunE.
func (a *App) Configure(cmd *cobra.Command, _ []string) error {
	if a.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return clierr.Wrap(clierr.ExitIO, "resolving working directory", err)
		}
		a.WorkDir = wd
	}
	if a.Now == nil {
		a.Now = time.Now
	}

	v, err := settings.Init(a.WorkDir)
	if err != nil {
		return clierr.Usage(err)
	}
	settings.BindFlags(v, cmd.Flags(),
		settings.FlagConfig,
		settings.FlagFormat,
		settings.FlagNoColor,
		settings.FlagCacheDir,
		settings.FlagLogLevel,
		settings.FlagLogFormat,
		settings.FlagLogFile,
	)
	s, err := settings.Load(v)
	if err != nil {
		return clierr.Usage(err)
	}

	level, err := logger.ParseLevel(s.Log.Level)
	if err != nil {
		return clierr.Usage(err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	style, err := logger.ParseStyle(s.Log.Format)
	if err != nil {
		return clierr.Usage(err)
	}

	a.Settings = s
	a.Logger = logger.New(
		logger.WithLevel(level),
		logger.WithStyle(style),
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithFile(a.Resolve(s.Log.File)),
	)
	a.Logger.Debug("settings resolved",
		"workdir", a.WorkDir,
		"settings_file", v.ConfigFileUsed(),
		"format", s.Format,
		"cache_dir", s.CacheDir)
	return nil
}

// Resolve anchors a relative path at WorkDir. Empty stays empty.
func (a *App) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.WorkDir, path)
}

// ConfigPath returns the configured teaching config path, or searches upward
// from WorkDir for the default location.
func (a *App) ConfigPath() (string, error) {
	if a.Settings.TeachConfig != "" {
		return a.Resolve(a.Settings.TeachConfig), nil
	}
	path, err := teachconfig.Locate(a.WorkDir)
	if err != nil {
		return "", clierr.Wrap(clierr.ExitIO, "cannot load teaching config", err)
	}
	return path, nil
}

// LoadConfig locates, reads, and validates the teaching config. Errors carry
// exit codes: unreadable files are I/O failures, malformed YAML is a usage
// error, and failed validation is a plain failure.
func (a *App) LoadConfig() (*teachconfig.TeachConfig, string, error) {
	path, err := a.ConfigPath()
	if err != nil {
		return nil, "", err
	}

	cfg, err := teachconfig.Load(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, path, clierr.Wrap(clierr.ExitIO, "cannot load teaching config", err)
		}
		return nil, path, clierr.Usage(err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, path, clierr.Wrap(clierr.ExitFailure, path, err)
	}

	a.Logger.Debug("loaded teaching config",
		"path", path,
		"start", cfg.Dates.Start.String(),
		"end", cfg.Dates.End.String(),
		"breaks", len(cfg.Dates.Breaks),
		"current_week", cfg.Progress.CurrentWeek.String())
	return cfg, path, nil
}

// Store returns the report cache under the configured cache directory.
func (a *App) Store() *reportcache.Store {
	dir := a.Settings.CacheDir
	if dir == "" {
		dir = reportcache.DefaultDir
	}
	return reportcache.NewStore(a.Resolve(dir))
}

