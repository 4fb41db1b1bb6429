package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
logger:
  log_level: info
  file_log_name: /tmp/utilskit.log
  max_size: 10
redis:
  host: localhost
  port: 6379
document:
  backend: local
  base_path: ./data
image:
  quality: 0.8
  max_dimension: 1024
async:
  limit: 8
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, "/tmp/utilskit.log", cfg.Logger.FileLogName)
	assert.Equal(t, 10, cfg.Logger.MaxSize)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "local", cfg.Document.Backend)
	assert.Equal(t, "./data", cfg.Document.BasePath)
	assert.InDelta(t, 0.8, cfg.Image.Quality, 1e-9)
	assert.Equal(t, 1024, cfg.Image.MaxDimension)
	assert.Equal(t, 8, cfg.Async.Limit)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("UTILSKIT_LOGGER_LOG_LEVEL", "debug")
	t.Setenv("UTILSKIT_ASYNC_LIMIT", "3")

	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, 3, cfg.Async.Limit)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("UTILSKIT_DOCUMENT_BACKEND", "redis")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Document.Backend)
	assert.Zero(t, cfg.Async.Limit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesEveryKey(t *testing.T) {
	t.Setenv("UTILSKIT_REDIS_POOL_SIZE", "42")
	t.Setenv("UTILSKIT_REDIS_READ_TIMEOUT", "7")
	t.Setenv("UTILSKIT_REDIS_HOST", "cache")
	t.Setenv("UTILSKIT_MONGODB_TIMEOUT", "9")
	t.Setenv("UTILSKIT_MONGODB_MAX_POOL_SIZE", "50")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Redis.PoolSize)
	assert.Equal(t, 7, cfg.Redis.ReadTimeout)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, 9, cfg.MongoDB.Timeout)
	assert.Equal(t, uint64(50), cfg.MongoDB.MaxPoolSize)
}

func TestConfigKeys(t *testing.T) {
	keys := configKeys(reflect.TypeOf(Config{}), "")

	assert.Contains(t, keys, "redis.min_retry_backoff")
	assert.Contains(t, keys, "mongodb.max_conn_idle_time")
	assert.Contains(t, keys, "document.collection")
	assert.NotContains(t, keys, "redis", "nested sections are not leaf keys")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "valid", content: sampleYAML},
		{name: "unknown_backend", content: "document:\n  backend: ftp\n", wantErr: true},
		{name: "quality_above_one", content: "image:\n  quality: 1.5\n", wantErr: true},
		{name: "negative_limit", content: "async:\n  limit: -1\n", wantErr: true},
		{name: "port_out_of_range", content: "redis:\n  port: 70000\n", wantErr: true},
		{name: "bad_log_level", content: "logger:\n  log_level: loud\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.yaml", tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
