// Package logger builds the process-wide sugared logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a named console logger writing to stderr. Diagnostics go
// through it; user-facing report output stays on stdout.
func New(service string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log.Named(service).Sugar()
}
