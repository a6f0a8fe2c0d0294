// Package obslog constructs the structured logger shared by the CLI and
// the reload service. The core config package never logs; only the
// ambient layers built on top of it do.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger writing to stderr. debug raises the level to
// Debug so debug-level messages, such as confwatch's fallback reloads,
// are visible.
func New(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}

// Sync flushes buffered log entries, swallowing the error returned for
// unbuffered sinks like stderr that don't support Sync.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}
