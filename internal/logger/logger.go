package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op logger until Init runs so
// packages can log from tests without any setup.
var Log = zap.NewNop()

var (
	once  sync.Once
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init builds the console logger. Calling it more than once is harmless.
func Init() {
	once.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = level
		cfg.DisableStacktrace = true
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		l, err := cfg.Build()
		if err != nil {
			// Keep the no-op logger, there is nowhere to report this.
			return
		}
		Log = l.Named("scene3d")
	})
}

// SetDebug toggles debug output at runtime.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}
