// Package redis is the store every repository shares. Repositories take the
// Client interface so tests can point them at miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// Client is what the repositories need: key/value, hashes, sets and
// pipelines.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
var Nil = redis.Nil

const defaultDialTimeout = 5 * time.Second

// Config holds the connection settings loaded from the redis section
type Config struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
	UseTLS      bool
}

// Validate checks the connection settings
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Addr", c.Addr, vb)
	errors.ValidateRange("DB", c.DB, 0, 15, vb)
	if c.PoolSize < 0 {
		vb.InvalidField("PoolSize", "must not be negative")
	}
	return vb.Build()
}

// NewClient builds a client without dialing. Connections are opened lazily
// by the first command; use Ping to fail fast at startup.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis config")
	}

	opts := &redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(opts), nil
}

// Ping reports an unreachable store as Unavailable
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
	}
	return nil
}
