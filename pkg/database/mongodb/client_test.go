package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/huynhanx03/go-utilskit/pkg/settings"
)

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(context.Background(), nil); !errors.Is(err, ErrNilConfig) {
		t.Errorf("expected ErrNilConfig, got %v", err)
	}
}

func TestClient_URI(t *testing.T) {
	tests := []struct {
		name string
		cfg  settings.MongoDB
		want string
	}{
		{
			name: "defaults",
			cfg:  settings.MongoDB{},
			want: "mongodb://localhost:27017",
		},
		{
			name: "credentials_escaped",
			cfg:  settings.MongoDB{Host: "db", Port: 27018, Username: "app", Password: "p@ss/word"},
			want: "mongodb://app:p%40ss%2Fword@db:27018",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			c := &Client{config: &cfg}
			c.setDefaultConfig()

			if got := c.uri(); got != tt.want {
				t.Errorf("uri() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_SetDefaultConfig(t *testing.T) {
	cfg := &settings.MongoDB{Timeout: 3}
	c := &Client{config: cfg}
	c.setDefaultConfig()

	if cfg.Timeout != 3 {
		t.Errorf("explicit timeout overwritten: %d", cfg.Timeout)
	}
	if cfg.MaxPoolSize != defaultMaxPoolSize {
		t.Errorf("expected default pool size, got %d", cfg.MaxPoolSize)
	}
}

func TestClient_CloseWithoutConnect(t *testing.T) {
	c := &Client{config: &settings.MongoDB{}}
	if err := c.Close(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
