// Package logging builds the zap logger used by the CLI and MCP server.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/messages"
)

// Options controls logger construction.
type Options struct {
	Level  string
	Format string
	// Verbose forces debug level regardless of Level.
	Verbose bool
	// OutputPaths defaults to stderr. Stdout is reserved for command output and MCP stdio.
	OutputPaths []string
}

// FromConfig derives Options from the tool config.
func FromConfig(cfg config.LoggingConfig, verbose bool) Options {
	return Options{Level: cfg.Level, Format: cfg.Format, Verbose: verbose}
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var zcfg zap.Config
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Development = false
		zcfg.DisableStacktrace = true
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		zcfg = zap.NewProductionConfig()
		zcfg.Sampling = nil
	default:
		return nil, fmt.Errorf(messages.LoggingFormatInvalidFmt, opts.Format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		zcfg.OutputPaths = opts.OutputPaths
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf(messages.LoggingBuildFailedFmt, err)
	}
	return logger, nil
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(n)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf(messages.LoggingLevelInvalidFmt, name)
	}
	return level, nil
}
