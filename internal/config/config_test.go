package config

import (
	"errors"
	"testing"
	"time"

	"github.com/furfindr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "GIN_MODE",
	"MAX_BODY_SIZE", "MAX_BATCH_SIZE", "DISPLAY_SCORE_CAP",
	"LOG_LEVEL", "ENABLE_METRICS",
	"TRIGGER_LOG_BACKEND", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "TRIGGER_LOG_REDIS_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Server.Development)
	assert.Equal(t, 1<<20, cfg.Risk.MaxBodySize)
	assert.Equal(t, 100, cfg.Risk.MaxBatchSize)
	assert.Equal(t, 100, cfg.Risk.DisplayScoreCap)
	assert.Equal(t, "", cfg.Observability.LogLevel)
	assert.True(t, cfg.Observability.EnableMetrics)
	assert.Equal(t, TriggerLogMemory, cfg.TriggerLog.Backend)
	assert.Equal(t, "localhost:6379", cfg.TriggerLog.RedisAddr)
	assert.Equal(t, "furfindr:rule_triggers", cfg.TriggerLog.RedisKey)
}

func TestLoad_RedisTriggerLog(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIGGER_LOG_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TRIGGER_LOG_REDIS_KEY", "staging:triggers")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TriggerLogRedis, cfg.TriggerLog.Backend)
	assert.Equal(t, "redis:6379", cfg.TriggerLog.RedisAddr)
	assert.Equal(t, 2, cfg.TriggerLog.RedisDB)
	assert.Equal(t, "staging:triggers", cfg.TriggerLog.RedisKey)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "15")
	t.Setenv("SERVER_WRITE_TIMEOUT", "1m")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("MAX_BODY_SIZE", "65536")
	t.Setenv("MAX_BATCH_SIZE", "25")
	t.Setenv("DISPLAY_SCORE_CAP", "150")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Server.Development)
	assert.Equal(t, 65536, cfg.Risk.MaxBodySize)
	assert.Equal(t, 25, cfg.Risk.MaxBatchSize)
	assert.Equal(t, 150, cfg.Risk.DisplayScoreCap)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.False(t, cfg.Observability.EnableMetrics)
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_BATCH_SIZE", "lots")
	t.Setenv("ENABLE_METRICS", "maybe")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Risk.MaxBatchSize)
	assert.True(t, cfg.Observability.EnableMetrics)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"body size too small", "MAX_BODY_SIZE", "1000"},
		{"batch size zero", "MAX_BATCH_SIZE", "0"},
		{"batch size too large", "MAX_BATCH_SIZE", "5000"},
		{"display cap too small", "DISPLAY_SCORE_CAP", "10"},
		{"timeout too short", "SERVER_READ_TIMEOUT", "500ms"},
		{"unknown trigger log backend", "TRIGGER_LOG_BACKEND", "kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		})
	}
}
