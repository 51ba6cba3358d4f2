// Package logger builds the zap logger shared by every subcommand.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New returns a sugared logger for mode, which is "development" (the
// default: console output, debug level) or "production" (JSON, info level).
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	case "", "dev", "development":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log mode '%s'", mode)
	}
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("error building logger: %w", err)
	}
	return l.Sugar(), nil
}
