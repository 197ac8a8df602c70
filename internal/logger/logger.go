package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. Call Init before using it.
var Log *zap.Logger

// Init configures the shared logger. Safe to call more than once; later
// calls replace the logger.
func Init() {
	InitWithLevel("info")
}

// InitWithLevel configures the shared logger at the given level
// ("debug", "info", "warn", "error").
func InitWithLevel(level string) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}
	Log = log
}
