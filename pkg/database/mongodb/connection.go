package mongodb

import (
	"context"

	"github.com/huynhanx03/go-utilskit/pkg/settings"
)

// New creates a new MongoDB connection
func New(ctx context.Context, config *settings.MongoDB) (*Client, error) {
	if config == nil {
		return nil, ErrNilConfig
	}

	client := &Client{
		config: config,
	}

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	return client, nil
}
