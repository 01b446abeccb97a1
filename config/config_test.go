// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/config"
	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/render"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, config.DefaultOutput, cfg.Output)
	require.Equal(t, config.DefaultStyle, cfg.Style)
	require.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	require.False(t, cfg.HideOriginal)
	require.False(t, cfg.DryRun)
	require.Equal(t, render.Plain, cfg.RenderStyle())
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "minecount.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
output: out/solved.txt
style: spaced
log:
  level: debug
  file: logs/minecount.log
  max_size: 5
`), 0o644))

	cfg, err := config.Load(viper.New(), file)
	require.NoError(t, err)
	require.Equal(t, "out/solved.txt", cfg.Output)
	require.Equal(t, render.Spaced, cfg.RenderStyle())
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "logs/minecount.log", cfg.Log.File)
	require.Equal(t, 5, cfg.Log.MaxSize)
	require.Equal(t, 3, cfg.Log.MaxBackups)

	// Environment beats the file.
	t.Setenv("MINECOUNT_LOG_LEVEL", "error")
	t.Setenv("MINECOUNT_STYLE", "coordinates")
	cfg, err = config.Load(viper.New(), file)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, render.Coordinates, cfg.RenderStyle())

	// A changed flag beats the environment.
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("style", config.DefaultStyle, "")
	require.NoError(t, fs.Parse([]string{"--style", "plain"}))
	require.NoError(t, v.BindPFlag(config.KeyStyle, fs.Lookup("style")))
	cfg, err = config.Load(v, file)
	require.NoError(t, err)
	require.Equal(t, render.Plain, cfg.RenderStyle())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	cases := []struct {
		name string
		env  map[string]string
	}{
		{"BadStyle", map[string]string{"MINECOUNT_STYLE": "fancy"}},
		{"BadLevel", map[string]string{"MINECOUNT_LOG_LEVEL": "loud"}},
		{"EmptyOutput", map[string]string{"MINECOUNT_OUTPUT": " "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(viper.New(), "")
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_LevelCaseInsensitive(t *testing.T) {
	for _, level := range []string{"Info", "WARN", "dEbUg"} {
		t.Run(level, func(t *testing.T) {
			t.Setenv("MINECOUNT_LOG_LEVEL", level)
			cfg, err := config.Load(viper.New(), "")
			require.NoError(t, err)
			require.Equal(t, level, cfg.Log.Level)
		})
	}
}

func TestValidate_DryRunAllowsEmptyOutput(t *testing.T) {
	cfg := config.Config{Style: "plain", DryRun: true, Log: config.Log{Level: "info"}}
	require.NoError(t, cfg.Validate())

	cfg.DryRun = false
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
