package logger

import "sync/atomic"

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(Nop())
}

// Default returns the package-level logger. It discards everything until SetDefault is called.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package-level logger. A nil logger resets it to a no-op.
func SetDefault(l *Logger) {
	if l == nil {
		l = Nop()
	}
	defaultLogger.Store(l)
}

// Log prints through the package-level logger.
func Log(t LogType, message string, err error) {
	Default().Log(t, message, err)
}
