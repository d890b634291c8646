package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

// DefaultBackendTimeout applies when backend.timeout is unset
const DefaultBackendTimeout = 30 * time.Second

// EnvPrefix is prepended to every environment override, e.g. ROFIND_BACKEND_BASE_URL
const EnvPrefix = "ROFIND"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing file means defaults and env vars only
			if !errors.Is(err, fs.ErrNotExist) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// reset clears viper and the init guard. Tests only.
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set overrides a value at runtime, used for CLI flags
func Set(key string, value any) {
	viper.Set(key, value)
}

// validate validates the configuration using Viper values
func validate() error {
	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks a Config struct
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port))
	}

	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return apperrors.ConfigError("backend.base_url", "must not be empty")
	}

	if c.Search.FetchSize <= 0 {
		return apperrors.ConfigError("search.fetch_size", fmt.Sprintf("must be positive, got %d", c.Search.FetchSize))
	}
	if c.Search.PageSize <= 0 {
		return apperrors.ConfigError("search.page_size", fmt.Sprintf("must be positive, got %d", c.Search.PageSize))
	}
	if c.Search.PageSize > c.Search.FetchSize {
		return apperrors.ConfigError("search.page_size",
			fmt.Sprintf("%d must not exceed search.fetch_size (%d)", c.Search.PageSize, c.Search.FetchSize))
	}
	if c.Search.MaxPages <= 0 {
		return apperrors.ConfigError("search.max_pages", fmt.Sprintf("must be positive, got %d", c.Search.MaxPages))
	}
	if c.Search.EnhancementTimeout <= 0 {
		return apperrors.ConfigError("search.enhancement_timeout", "must be positive")
	}

	// The enhanced call and its fallback run back to back inside one request
	backendTimeout := c.Backend.Timeout
	if backendTimeout <= 0 {
		backendTimeout = DefaultBackendTimeout
	}
	if backendTimeout < c.Search.EnhancementTimeout {
		return apperrors.ConfigError("backend.timeout",
			fmt.Sprintf("%s must not be shorter than search.enhancement_timeout (%s)", backendTimeout, c.Search.EnhancementTimeout))
	}
	if budget := c.Search.EnhancementTimeout + backendTimeout; c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= budget {
		return apperrors.ConfigError("server.write_timeout",
			fmt.Sprintf("%s must exceed search.enhancement_timeout + backend.timeout (%s)", c.Server.WriteTimeout, budget))
	}

	switch c.Cache.Backend {
	case "memory", "redis", "none":
	default:
		return apperrors.ConfigError("cache.backend", fmt.Sprintf("unknown backend %q", c.Cache.Backend))
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.idle_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Backend defaults
	viper.SetDefault("backend.base_url", "http://localhost:8000")
	viper.SetDefault("backend.timeout", DefaultBackendTimeout)
	viper.SetDefault("backend.user_agent", "RoFindAPI/1.0")
	viper.SetDefault("backend.rate_limit", 20)
	viper.SetDefault("backend.burst", 10)

	// Search defaults
	viper.SetDefault("search.fetch_size", 110)
	viper.SetDefault("search.page_size", 11)
	viper.SetDefault("search.max_pages", 10)
	viper.SetDefault("search.enhancement_timeout", 15*time.Second)
	viper.SetDefault("search.highlight_open", `<span class="bg-yellow-500/30 text-white font-bold">`)
	viper.SetDefault("search.highlight_close", "</span>")

	// Facet defaults
	viper.SetDefault("facets.top_categories", 8)
	viper.SetDefault("facets.featured_count", 5)
	viper.SetDefault("facets.trending_limit", 10)

	// Cache defaults
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.default_ttl", 5*time.Minute)
	viper.SetDefault("cache.trending_ttl", time.Minute)
	viper.SetDefault("cache.max_size_mb", 50)
	viper.SetDefault("cache.prefix", "rofind:")
	viper.SetDefault("cache.redis.address", "localhost:6379")
	viper.SetDefault("cache.redis.password", "")
	viper.SetDefault("cache.redis.db", 0)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.search_rps", 5)
	viper.SetDefault("rate_limiting.search_burst", 10)
	viper.SetDefault("rate_limiting.default_rps", 10)
	viper.SetDefault("rate_limiting.default_burst", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.pretty", false)
}
