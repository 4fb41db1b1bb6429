package logger

import "go.uber.org/zap/zapcore"

// LogType describes how an entry is prefixed and at which level it is emitted.
// Implement it to add custom prefixes.
type LogType interface {
	Prefix() string
	Level() zapcore.Level
}

// DefaultLogType covers the usual kinds of entries.
type DefaultLogType int

const (
	TypeDebug DefaultLogType = iota
	TypeInfo
	TypeSuccess
	TypeWarning
	TypeError
	TypeNetwork
	TypeFile
)

var _ LogType = TypeDebug

func (t DefaultLogType) Prefix() string {
	switch t {
	case TypeInfo:
		return "ℹ️"
	case TypeSuccess:
		return "✅"
	case TypeWarning:
		return "⚠️"
	case TypeError:
		return "❌"
	case TypeNetwork:
		return "🌍"
	case TypeFile:
		return "💾"
	default:
		return "💬"
	}
}

func (t DefaultLogType) Level() zapcore.Level {
	switch t {
	case TypeInfo, TypeSuccess, TypeNetwork:
		return zapcore.InfoLevel
	case TypeWarning:
		return zapcore.WarnLevel
	case TypeError, TypeFile:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}
