package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BruksfildServices01/optic-manager/internal/config"
)

// New builds the process logger. LOG_FORMAT=json gives the production
// encoder, anything else the human readable console encoder.
func New(cfg *config.Config) (*zap.Logger, error) {
	logger, err := zapConfig(cfg).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("shop", cfg.ShopName)), nil
}

// zapConfig falls back to info when LOG_LEVEL does not parse.
func zapConfig(cfg *config.Config) zap.Config {
	var zc zap.Config
	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.LogLevel))
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc
}
