// Package logging builds the zap loggers used by both binaries.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to logFile. With verbose set the level drops
// to debug. Console output additionally goes to stderr unless fileOnly is
// set (the viewer owns the terminal, so its logs must stay out of it).
func New(logFile string, verbose, fileOnly bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{logFile}
	if !fileOnly {
		cfg.OutputPaths = append(cfg.OutputPaths, "stderr")
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Nop returns a no-op logger for tests and early startup.
func Nop() *zap.Logger {
	return zap.NewNop()
}
