package logger

import (
	"livpulse/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Development gets the console
// encoder, anything else gets production JSON.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}

	return baseLogger.Named(cfg.AppId), nil
}
