package logger

import (
	"fmt"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-utilskit/pkg/settings"
)

const (
	defaultMaxSize    = 100 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days

	timeLayout = "01-02-2006 15:04:05"
)

// Logger prints prefixed entries through zap.
type Logger struct {
	zl *zap.Logger
}

// New builds a Logger from configuration.
// Entries go to a rotating JSON file when FileLogName is set, to stderr otherwise.
func New(cfg *settings.Logger) (*Logger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)

	var core zapcore.Core
	if cfg.FileLogName != "" {
		setDefaultConfig(cfg)
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), writer, level)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	}

	return FromZap(zap.New(core, zap.AddCaller())), nil
}

// FromZap wraps an existing zap logger.
func FromZap(zl *zap.Logger) *Logger {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &Logger{zl: zl}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return FromZap(zap.NewNop())
}

// Log prints message prefixed by t. A non-nil err is attached to the entry.
func (l *Logger) Log(t LogType, message string, err error, fields ...zap.Field) {
	msg := t.Prefix() + " -"
	if message != "" {
		msg = fmt.Sprintf("%s %s", msg, message)
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if ce := l.zl.WithOptions(zap.AddCallerSkip(1)).Check(t.Level(), msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *Logger) Debug(message string, fields ...zap.Field) {
	l.zl.Debug(TypeDebug.Prefix()+" - "+message, fields...)
}

func (l *Logger) Info(message string, fields ...zap.Field) {
	l.zl.Info(TypeInfo.Prefix()+" - "+message, fields...)
}

func (l *Logger) Warn(message string, fields ...zap.Field) {
	l.zl.Warn(TypeWarning.Prefix()+" - "+message, fields...)
}

func (l *Logger) Error(message string, err error, fields ...zap.Field) {
	l.zl.Error(TypeError.Prefix()+" - "+message, append(fields, zap.Error(err))...)
}

// Named returns a child logger with the given name segment.
func (l *Logger) Named(name string) *Logger {
	return &Logger{zl: l.zl.Named(name)}
}

// With returns a child logger carrying fields on every entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

// Zap returns the underlying zap logger (Escape hatch)
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}

// setDefaultConfig sets default values for file rotation
func setDefaultConfig(cfg *settings.Logger) {
	if cfg.MaxSize == 0 {
		cfg.MaxSize = defaultMaxSize
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = defaultMaxBackups
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = defaultMaxAge
	}
}
