package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-utilskit/pkg/settings"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

type customType struct{}

func (customType) Prefix() string       { return "🚀" }
func (customType) Level() zapcore.Level { return zapcore.WarnLevel }

func TestLog_PrefixAndLevel(t *testing.T) {
	tests := []struct {
		name      string
		logType   LogType
		message   string
		wantMsg   string
		wantLevel zapcore.Level
	}{
		{name: "debug", logType: TypeDebug, message: "hello", wantMsg: "💬 - hello", wantLevel: zapcore.DebugLevel},
		{name: "info", logType: TypeInfo, message: "ready", wantMsg: "ℹ️ - ready", wantLevel: zapcore.InfoLevel},
		{name: "success", logType: TypeSuccess, message: "saved", wantMsg: "✅ - saved", wantLevel: zapcore.InfoLevel},
		{name: "warning", logType: TypeWarning, message: "slow", wantMsg: "⚠️ - slow", wantLevel: zapcore.WarnLevel},
		{name: "file", logType: TypeFile, message: "disk", wantMsg: "💾 - disk", wantLevel: zapcore.ErrorLevel},
		{name: "custom", logType: customType{}, message: "launch", wantMsg: "🚀 - launch", wantLevel: zapcore.WarnLevel},
		{name: "empty_message", logType: TypeError, message: "", wantMsg: "❌ -", wantLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, logs := observed(zapcore.DebugLevel)

			l.Log(tt.logType, tt.message, nil)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantMsg, entries[0].Message)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
		})
	}
}

func TestLog_AttachesError(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)

	l.Log(TypeError, "saving", errors.New("disk full"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
}

func TestLog_FilteredByLevel(t *testing.T) {
	l, logs := observed(zapcore.WarnLevel)

	l.Log(TypeDebug, "hidden", nil)
	l.Log(TypeInfo, "hidden", nil)
	l.Log(TypeWarning, "shown", nil)

	assert.Equal(t, 1, logs.Len())
}

func TestGlobal_DefaultIsNop(t *testing.T) {
	SetDefault(nil)
	assert.NotPanics(t, func() { Log(TypeInfo, "nothing", nil) })

	l, logs := observed(zapcore.DebugLevel)
	SetDefault(l)
	t.Cleanup(func() { SetDefault(nil) })

	Log(TypeNetwork, "request", nil)
	assert.Equal(t, 1, logs.FilterMessage("🌍 - request").Len())
}

func TestNew(t *testing.T) {
	t.Run("nil_config", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrNilConfig)
	})

	t.Run("invalid_level", func(t *testing.T) {
		_, err := New(&settings.Logger{LogLevel: "loud"})
		assert.ErrorIs(t, err, ErrInvalidLevel)
	})

	t.Run("stderr", func(t *testing.T) {
		l, err := New(&settings.Logger{LogLevel: "debug"})
		require.NoError(t, err)
		assert.NotNil(t, l.Zap())
	})

	t.Run("rotating_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		cfg := &settings.Logger{LogLevel: "info", FileLogName: path}

		l, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, defaultMaxSize, cfg.MaxSize)
		assert.Equal(t, defaultMaxBackups, cfg.MaxBackups)

		l.Log(TypeSuccess, "written", nil)
		l.Log(TypeDebug, "dropped", nil)
		_ = l.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), "✅ - written"))
		assert.False(t, strings.Contains(string(data), "dropped"))
	})
}

func TestLevelHelpers(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)

	l.Debug("cache warmed")
	l.Info("started")
	l.Warn("slow disk")
	l.Error("write failed", errors.New("disk full"))

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "💬 - cache warmed", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "ℹ️ - started", entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "⚠️ - slow disk", entries[2].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "❌ - write failed", entries[3].Message)
	assert.Equal(t, "disk full", entries[3].ContextMap()["error"])
}

func TestNamedAndWith(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)

	child := l.Named("document").With(zap.String("backend", "local"))
	child.Log(TypeFile, "saved", nil)
	l.Log(TypeInfo, "parent", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "document", entries[0].LoggerName)
	assert.Equal(t, "local", entries[0].ContextMap()["backend"])
	assert.Empty(t, entries[1].LoggerName)
	assert.NotContains(t, entries[1].ContextMap(), "backend")
}
