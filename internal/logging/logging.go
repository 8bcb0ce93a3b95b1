// Package logging configures the application's zap logger. Console
// output goes to stderr; file output, when enabled, rotates via
// lumberjack so a long-lived watch process cannot fill the disk.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level   string // debug|info|warn|error, default info
	Format  string // console|json, default console
	File    string // optional path; enables rotating file output
	Quiet   bool   // drop console output (used under the TUI alt-screen)
	MaxSize int    // rotation threshold in MB, default 10
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	var cores []zapcore.Core
	if !opts.Quiet {
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level))
	}
	if opts.File != "" {
		maxSize := opts.MaxSize
		if maxSize <= 0 {
			maxSize = 10
		}
		w := zapcore.AddSync(&lj.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: 3,
		})
		cores = append(cores, zapcore.NewCore(enc, w, level))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
