package runtime

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the runtime's logger. It is a no-op logger unless
// SetLogger was called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})

	return logger
}

// SetLogger replaces the runtime's logger. Call it before patching.
func SetLogger(l *zap.Logger) {
	logger = l
}

// traceWrite logs a platform write at debug level.
func traceWrite(op, key string, value any) {
	if ce := Logger().Check(zap.DebugLevel, "write"); ce != nil {
		ce.Write(zap.String("op", op), zap.String("key", key), zap.Any("value", value))
	}
}
