// SPDX-License-Identifier: MIT

// Package config loads minecount settings from defaults, an optional config
// file, MINECOUNT_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/render"
)

// EnvPrefix prefixes every environment variable, e.g. MINECOUNT_LOG_LEVEL.
const EnvPrefix = "MINECOUNT"

// Keys shared by defaults, flags and environment variables.
const (
	KeyOutput         = "output"
	KeyStyle          = "style"
	KeyHideOriginal   = "hide_original"
	KeyDryRun         = "dry_run"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyLogMaxSize     = "log.max_size"
	KeyLogMaxBackups  = "log.max_backups"
	KeyLogMaxAge      = "log.max_age"
	KeyLogCompress    = "log.compress"
	KeyLogDevelopment = "log.dev"
)

// Defaults.
const (
	DefaultOutput   = "boards/exported.txt"
	DefaultStyle    = "plain"
	DefaultLogLevel = "error"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Log configures the diagnostic logger.
type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // rotated JSON log; empty disables it
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
}

// Config is the full set of runtime settings.
type Config struct {
	Output       string `mapstructure:"output"`
	Style        string `mapstructure:"style"`
	HideOriginal bool   `mapstructure:"hide_original"`
	DryRun       bool   `mapstructure:"dry_run"`
	Log          Log    `mapstructure:"log"`
}

// SetDefaults registers every key with its default on v.
// Keys must be known to v for AutomaticEnv to reach them through Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyStyle, DefaultStyle)
	v.SetDefault(KeyHideOriginal, false)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogMaxSize, 10)
	v.SetDefault(KeyLogMaxBackups, 3)
	v.SetDefault(KeyLogMaxAge, 28)
	v.SetDefault(KeyLogCompress, false)
	v.SetDefault(KeyLogDevelopment, false)
}

// Load resolves the configuration held by v. When file is non-empty it is read
// first; its format follows the extension (yaml, json, toml, ...).
// Precedence, highest first: flags bound to v, environment, file, defaults.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" && !c.DryRun {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if _, err := render.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// RenderStyle returns the parsed console style. Call after Validate.
func (c Config) RenderStyle() render.Style {
	s, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.Plain
	}
	return s
}
