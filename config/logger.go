package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a console logger at debug level when Debug is set and a
// JSON logger at info level otherwise. LogFile, if set, replaces stderr.
func NewLogger(c Config) (*zap.Logger, error) {
	var zc zap.Config
	if c.Debug {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	if c.LogFile != "" {
		zc.OutputPaths = []string{c.LogFile}
		zc.ErrorOutputPaths = []string{c.LogFile}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
