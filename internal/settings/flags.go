// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag describes a CLI flag once so that every command registering it gets
// the same name, shorthand, default, and help text.
type Flag struct {
	Name        string
	Shorthand   string
	Key         string // dotted settings key
	Description string
}

// Flag registry keys.
const (
	FlagConfig    = "config"
	FlagFormat    = "format"
	FlagNoColor   = "no-color"
	FlagCacheDir  = "cache-dir"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagLogFile   = "log-file"
)

// Flags is the flag registry.
var Flags = map[string]Flag{
	FlagConfig: {
		Name:        "config",
		Shorthand:   "c",
		Key:         "teach_config",
		Description: "path to teach-config.yml (default: search upward for .flow/teach-config.yml)",
	},
	FlagFormat: {
		Name:        "format",
		Shorthand:   "f",
		Key:         "format",
		Description: "output format: terminal, json or markdown",
	},
	FlagNoColor: {
		Name:        "no-color",
		Key:         "no_color",
		Description: "disable colored terminal output",
	},
	FlagCacheDir: {
		Name:        "cache-dir",
		Key:         "cache_dir",
		Description: "directory for the cached report, relative to the course root",
	},
	FlagLogLevel: {
		Name:        "log-level",
		Key:         "log.level",
		Description: "log level: debug, info, warn or error",
	},
	FlagLogFormat: {
		Name:        "log-format",
		Key:         "log.format",
		Description: "log format: text, json or pretty",
	},
	FlagLogFile: {
		Name:        "log-file",
		Key:         "log.file",
		Description: "also write JSON logs to this rotating file",
	},
}

// AddStringFlag registers the string flag key on fs with its default taken
// from Defaults().
func AddStringFlag(fs *pflag.FlagSet, key string) {
	def, ok := Flags[key]
	if !ok {
		return
	}
	fs.StringP(def.Name, def.Shorthand, defaults().GetString(def.Key), def.Description)
}

// AddBoolFlag registers the bool flag key on fs.
func AddBoolFlag(fs *pflag.FlagSet, key string) {
	def, ok := Flags[key]
	if !ok {
		return
	}
	fs.BoolP(def.Name, def.Shorthand, defaults().GetBool(def.Key), def.Description)
}

// BindFlags connects already-registered flags to v so that explicitly set
// flags win over environment, file, and defaults.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		def, ok := Flags[key]
		if !ok {
			continue
		}
		f := fs.Lookup(def.Name)
		if f == nil {
			continue
		}
		_ = v.BindPFlag(def.Key, f)
	}
}

func defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}
