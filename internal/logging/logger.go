package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kingrea/seawolf/internal/config"
)

// FileName is the diagnostic log inside the project's logs directory.
const FileName = "seawolf.log"

// Path returns the diagnostic log location for cfg.
func Path(cfg *config.Config) string {
	return filepath.Join(cfg.LogsDir(), FileName)
}

// New builds a JSON-lines zap logger appending to .seawolf/logs/seawolf.log so
// players can inspect a run after the terminal UI has closed. Verbose lowers
// the level to debug.
func New(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("logging: config is required")
	}
	if err := os.MkdirAll(cfg.LogsDir(), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := Path(cfg)
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
