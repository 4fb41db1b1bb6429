package mongodb

import (
	"context"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/huynhanx03/go-utilskit/pkg/settings"
	"github.com/huynhanx03/go-utilskit/pkg/utils"
)

const (
	defaultHost            = "localhost"
	defaultPort            = 27017
	defaultTimeout         = 10
	defaultMaxPoolSize     = 100
	defaultMaxConnIdleTime = 60
)

// Client represents a MongoDB connection bound to one database
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	config *settings.MongoDB
}

// Connect opens the connection and verifies it with a ping
func (c *Client) Connect(ctx context.Context) error {
	c.setDefaultConfig()

	opts := options.Client().
		ApplyURI(c.uri()).
		SetMaxPoolSize(c.config.MaxPoolSize).
		SetMinPoolSize(c.config.MinPoolSize).
		SetMaxConnIdleTime(utils.ToDuration(int(c.config.MaxConnIdleTime))).
		SetTimeout(utils.ToDuration(c.config.Timeout))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, utils.ToDuration(c.config.Timeout))
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("%w: %v", ErrPingFailed, err)
	}

	c.client = client
	c.db = client.Database(c.config.Database)
	return nil
}

func (c *Client) uri() string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%d", c.config.Host, c.config.Port),
	}
	if c.config.Username != "" {
		u.User = url.UserPassword(c.config.Username, c.config.Password)
	}
	return u.String()
}

func (c *Client) setDefaultConfig() {
	if c.config.Host == "" {
		c.config.Host = defaultHost
	}
	if c.config.Port == 0 {
		c.config.Port = defaultPort
	}
	if c.config.Timeout == 0 {
		c.config.Timeout = defaultTimeout
	}
	if c.config.MaxPoolSize == 0 {
		c.config.MaxPoolSize = defaultMaxPoolSize
	}
	if c.config.MaxConnIdleTime == 0 {
		c.config.MaxConnIdleTime = defaultMaxConnIdleTime
	}
}

// Collection returns a handle to the named collection
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Database returns the configured database
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDisconnectFailed, err)
	}
	return nil
}
