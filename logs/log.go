// SPDX-License-Identifier: MIT

// Package logs builds the zap logger used for diagnostics. Console output is
// human-readable; an optional file output is JSON and rotated by lumberjack.
package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/config"
)

// Name is the logger name attached to every entry.
const Name = "minecount"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger writing to console (os.Stderr when nil) and, if
// cfg.File is set, to a rotated JSON file. The returned Closer releases the
// file; callers should Sync the logger before closing it.
// An unparsable level falls back to info.
func New(cfg config.Log, console io.Writer) (*zap.Logger, io.Closer) {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	level := zap.NewAtomicLevelAt(lvl)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var consoleSyncer zapcore.WriteSyncer
	if console == nil {
		consoleSyncer = zapcore.Lock(os.Stderr)
	} else {
		consoleSyncer = zapcore.AddSync(console)
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), consoleSyncer, level)

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
		closer = file
		// JSON only in the file so no console formatting leaks into it.
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), level))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	return zap.New(core, opts...).Named(Name), closer
}
