// Package config loads runtime settings from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Environment variable names
const (
	EnvSaveDir   = "QUEST_SAVE_DIR"
	EnvStore     = "QUEST_STORE"
	EnvRedisAddr = "QUEST_REDIS_ADDR"
	EnvDataDir   = "QUEST_DATA_DIR"
	EnvLogLevel  = "QUEST_LOG_LEVEL"
	EnvCacheSize = "QUEST_CACHE_SIZE"
	EnvCacheTTL  = "QUEST_CACHE_TTL"
)

// Character stores
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Defaults
const (
	DefaultSaveDir   = "save_games"
	DefaultRedisAddr = "localhost:6379"
	DefaultLogLevel  = "info"
	DefaultCacheSize = 64
	DefaultCacheTTL  = 5 * time.Minute
)

// Config holds the application configuration
type Config struct {
	SaveDir   string
	Store     string
	RedisAddr string
	// DataDir overrides the embedded item and quest tables when set
	DataDir  string
	LogLevel string
	// CacheSize of zero disables the character cache
	CacheSize int
	CacheTTL  time.Duration
}

// Load reads a .env file if present, then the QUEST_* environment variables
func Load(envFiles ...string) (*Config, error) {
	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		SaveDir:   getEnv(EnvSaveDir, DefaultSaveDir),
		Store:     strings.ToLower(getEnv(EnvStore, StoreFile)),
		RedisAddr: getEnv(EnvRedisAddr, DefaultRedisAddr),
		DataDir:   getEnv(EnvDataDir, ""),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
	}

	size, err := strconv.Atoi(getEnv(EnvCacheSize, strconv.Itoa(DefaultCacheSize)))
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid %s value: %v", EnvCacheSize, err)
	}
	cfg.CacheSize = size

	ttl, err := time.ParseDuration(getEnv(EnvCacheTTL, DefaultCacheTTL.String()))
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid %s value: %v", EnvCacheTTL, err)
	}
	cfg.CacheTTL = ttl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Validate checks that the settings describe a usable setup
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("store", c.Store, []string{StoreFile, StoreRedis}, vb)
	switch c.Store {
	case StoreFile:
		errors.ValidateRequired("save_dir", c.SaveDir, vb)
	case StoreRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	}
	errors.ValidateEnum("log_level", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateMin("cache_size", c.CacheSize, 0, vb)
	if c.CacheTTL < 0 {
		vb.Field("cache_ttl", "cannot be negative")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog level
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
