package cryptocore

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the process-wide logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("cryptocore"))
}

// Logger returns the process-wide logger.
func Logger() *zap.Logger {
	return logger.Load()
}

func logProviderFailure(kind Kind, scheme string, cause error) {
	Logger().Debug("provider failure",
		zap.String("scheme", scheme),
		zap.Stringer("kind", kind),
		zap.Stringer("category", kind.Category()),
		zap.Error(cause),
	)
}
