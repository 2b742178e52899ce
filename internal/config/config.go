// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/furfindr/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig

	// Risk evaluation configuration
	Risk RiskConfig

	// Trigger log configuration
	TriggerLog TriggerLogConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP port to listen on.
	Port string

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration

	// Development selects gin debug mode and the development logger.
	Development bool
}

// RiskConfig contains evaluation settings.
type RiskConfig struct {
	// MaxBodySize is the largest request body, in bytes, the API accepts.
	// Larger bodies are rejected before decoding; accepted text is matched in
	// full.
	MaxBodySize int

	// MaxBatchSize is the most animals accepted by one rank request.
	MaxBatchSize int

	// DisplayScoreCap clamps scores shown to adopters. Stored scores are
	// never clamped.
	DisplayScoreCap int
}

// TriggerLogBackend selects where rule triggers are recorded.
type TriggerLogBackend string

const (
	// TriggerLogMemory keeps the log in process memory.
	TriggerLogMemory TriggerLogBackend = "memory"

	// TriggerLogRedis keeps the log in a Redis list shared by all replicas.
	TriggerLogRedis TriggerLogBackend = "redis"
)

// TriggerLogConfig contains trigger log settings.
type TriggerLogConfig struct {
	// Backend is memory or redis.
	Backend TriggerLogBackend

	// RedisAddr is the host:port of the Redis server.
	RedisAddr string

	// RedisPassword is optional.
	RedisPassword string

	// RedisDB is the database index.
	RedisDB int

	// RedisKey is the list holding trigger entries.
	RedisKey string
}

// ObservabilityConfig contains logging and metrics settings.
type ObservabilityConfig struct {
	// LogLevel overrides the logger's default level when set.
	LogLevel string

	// EnableMetrics exposes /metrics and counts rule triggers.
	EnableMetrics bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			Development:  os.Getenv("GIN_MODE") != "release",
		},
		Risk: RiskConfig{
			MaxBodySize:     getIntOrDefault("MAX_BODY_SIZE", 1<<20),
			MaxBatchSize:    getIntOrDefault("MAX_BATCH_SIZE", 100),
			DisplayScoreCap: getIntOrDefault("DISPLAY_SCORE_CAP", 100),
		},
		TriggerLog: TriggerLogConfig{
			Backend:       TriggerLogBackend(getEnvOrDefault("TRIGGER_LOG_BACKEND", string(TriggerLogMemory))),
			RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getIntOrDefault("REDIS_DB", 0),
			RedisKey:      getEnvOrDefault("TRIGGER_LOG_REDIS_KEY", "furfindr:rule_triggers"),
		},
		Observability: ObservabilityConfig{
			LogLevel:      os.Getenv("LOG_LEVEL"),
			EnableMetrics: getBoolOrDefault("ENABLE_METRICS", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("%w: PORT must not be empty", domain.ErrInvalidConfig)
	}

	if c.Server.ReadTimeout < time.Second || c.Server.WriteTimeout < time.Second {
		return fmt.Errorf("%w: server timeouts must be at least 1 second", domain.ErrInvalidConfig)
	}

	if c.Risk.MaxBodySize < 4096 {
		return fmt.Errorf("%w: MAX_BODY_SIZE must be at least 4096 bytes", domain.ErrInvalidConfig)
	}

	if c.Risk.MaxBatchSize < 1 || c.Risk.MaxBatchSize > 1000 {
		return fmt.Errorf("%w: MAX_BATCH_SIZE must be between 1 and 1000", domain.ErrInvalidConfig)
	}

	if c.Risk.DisplayScoreCap < 50 {
		return fmt.Errorf("%w: DISPLAY_SCORE_CAP must be at least 50", domain.ErrInvalidConfig)
	}

	switch c.TriggerLog.Backend {
	case TriggerLogMemory:
	case TriggerLogRedis:
		if c.TriggerLog.RedisAddr == "" {
			return fmt.Errorf("%w: REDIS_ADDR is required for the redis trigger log", domain.ErrInvalidConfig)
		}
		if c.TriggerLog.RedisDB < 0 {
			return fmt.Errorf("%w: REDIS_DB must not be negative", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: TRIGGER_LOG_BACKEND must be memory or redis, got: %s", domain.ErrInvalidConfig, c.TriggerLog.Backend)
	}

	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		// Plain integers are seconds.
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second
		}
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
