// SPDX-License-Identifier: AGPL-3.0-or-later

// Package settings resolves CLI settings from flags, CRAFT_* environment
// variables, an optional .craft/settings.yaml, and built-in defaults.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bartekus/craft/internal/reportcache"
)

// EnvPrefix prefixes every environment override, e.g. CRAFT_LOG_LEVEL.
const EnvPrefix = "CRAFT"

// Settings is the resolved CLI configuration.
type Settings struct {
	// TeachConfig is the teaching config path. Empty means search upward
	// from the working directory.
	TeachConfig string `mapstructure:"teach_config"`
	Format      string `mapstructure:"format"`
	NoColor     bool   `mapstructure:"no_color"`
	CacheDir    string `mapstructure:"cache_dir"`
	Log         Log    `mapstructure:"log"`
}

// Log holds logging settings.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text, json or pretty
	File   string `mapstructure:"file"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Format:   "terminal",
		CacheDir: reportcache.DefaultDir,
		Log: Log{
			Level:  "info",
			Format: "pretty",
		},
	}
}

// Init creates a viper instance for the repository rooted at dir.
//
// Precedence (highest to lowest):
//  1. CLI flags (once bound via BindFlags)
//  2. Environment variables (CRAFT_FORMAT, CRAFT_LOG_LEVEL, NO_COLOR, ...)
//  3. <dir>/.craft/settings.yaml
//  4. Defaults()
func Init(dir string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("settings")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(dir, ".craft"))

	if err := v.ReadInConfig(); err != nil {
		// A missing settings file is fine; defaults apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Honour the NO_COLOR convention alongside CRAFT_NO_COLOR.
	if err := v.BindEnv("no_color", EnvPrefix+"_NO_COLOR", "NO_COLOR"); err != nil {
		return nil, fmt.Errorf("binding NO_COLOR: %w", err)
	}

	return v, nil
}

// Load decodes the resolved settings from v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

// setDefaults registers Defaults() under dotted keys so that Defaults stays
// the single source of truth.
func setDefaults(v *viper.Viper) {
	d := Defaults()

	v.SetDefault("teach_config", d.TeachConfig)
	v.SetDefault("format", d.Format)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("cache_dir", d.CacheDir)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
}
