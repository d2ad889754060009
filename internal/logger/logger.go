package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op logger until Init is called
// so packages can log from tests without any setup.
var Log = zap.NewNop()

// Init installs a development console logger at debug level.
func Init() {
	if err := InitWithConfig("debug", true); err != nil {
		panic(err)
	}
}

// InitWithConfig installs a logger at the given level. Development mode logs
// to the console with colored levels, otherwise JSON to stderr.
func InitWithConfig(level string, development bool) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.DisableCaller = true
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	Log = built
	return nil
}

// Sync flushes buffered log entries. Errors from syncing stderr on some
// platforms are ignored.
func Sync() {
	_ = Log.Sync()
}
