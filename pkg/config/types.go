package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Backend      BackendConfig   `mapstructure:"backend"`
	Search       SearchConfig    `mapstructure:"search"`
	Facets       FacetsConfig    `mapstructure:"facets"`
	Cache        CacheConfig     `mapstructure:"cache"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// BackendConfig points at the remote search service
type BackendConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Burst     int           `mapstructure:"burst"`
}

// SearchConfig contains the search engine tunables
type SearchConfig struct {
	FetchSize          int           `mapstructure:"fetch_size"`
	PageSize           int           `mapstructure:"page_size"`
	MaxPages           int           `mapstructure:"max_pages"`
	EnhancementTimeout time.Duration `mapstructure:"enhancement_timeout"`
	HighlightOpen      string        `mapstructure:"highlight_open"`
	HighlightClose     string        `mapstructure:"highlight_close"`
}

// FacetsConfig contains category and trending settings
type FacetsConfig struct {
	TopCategories int `mapstructure:"top_categories"`
	FeaturedCount int `mapstructure:"featured_count"`
	TrendingLimit int `mapstructure:"trending_limit"`
}

// CacheConfig contains response cache settings
type CacheConfig struct {
	Backend     string        `mapstructure:"backend"`
	DefaultTTL  time.Duration `mapstructure:"default_ttl"`
	TrendingTTL time.Duration `mapstructure:"trending_ttl"`
	MaxSizeMB   int           `mapstructure:"max_size_mb"`
	Prefix      string        `mapstructure:"prefix"`
	Redis       RedisConfig   `mapstructure:"redis"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig contains inbound rate limiting settings
type RateLimitConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	SearchRPS    float64 `mapstructure:"search_rps"`
	SearchBurst  int     `mapstructure:"search_burst"`
	DefaultRPS   float64 `mapstructure:"default_rps"`
	DefaultBurst int     `mapstructure:"default_burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}
