package cache

import (
	"fmt"
	"time"
)

// Options selects and configures a cache backend
type Options struct {
	Backend    string // memory, redis or none
	DefaultTTL time.Duration
	MaxSizeMB  int64
	Prefix     string
	Redis      RedisConfig
}

// New builds the configured cache. A nil Cache with a nil error means caching is off.
func New(opts Options) (Cache, error) {
	switch opts.Backend {
	case "", "memory":
		return NewMemoryCache(opts.MaxSizeMB, opts.DefaultTTL), nil
	case "redis":
		return NewRedisCache(opts.Redis, opts.Prefix, opts.DefaultTTL)
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
