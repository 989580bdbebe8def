package logger

import (
	"fmt"

	"photopick/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger for cfg. The terminal belongs to the UI, so output goes
// to cfg.LogFile; the test environment gets a no-op logger.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == config.EnvTest {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if cfg.Environment == config.EnvProduction {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	out := cfg.LogFile
	if out == "" {
		out = "stderr"
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	return zc.Build()
}

// MustNew is New that panics on error.
func MustNew(cfg *config.Config) *zap.Logger {
	return zap.Must(New(cfg))
}
