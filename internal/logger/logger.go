package logger

import (
	"fmt"

	"github.com/wharris/fleetgen/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// provideLogger creates a logger based on configuration. All log output goes
// to stderr: stdout carries the fixture document and must stay clean.
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.DevelopmentLogging {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

var Module = fx.Options(
	fx.Provide(provideLogger),
)
