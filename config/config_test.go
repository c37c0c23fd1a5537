package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// LoadConfig is a process-wide singleton, so every assertion about env
// parsing runs against the one snapshot taken on first use.
func TestLoadConfigSingleton(t *testing.T) {
	t.Setenv("APPENV", "test")
	t.Setenv("APPNAME", "voicenotes-api")
	t.Setenv("APPPORT", "8080")
	t.Setenv("APIKEY", "test-key")
	t.Setenv("RATELIMIT", "50")
	t.Setenv("RATEWINDOW", "30")
	t.Setenv("REDIS_ADDR", "localhost:6399")
	t.Setenv("REDIS_PASS", "redis-secret")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "test", cfg.AppEnv)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, "localhost:6399", cfg.RedisAddr)
	assert.Equal(t, "redis-secret", cfg.RedisPass)
	assert.Equal(t, 2, cfg.RedisDB)

	again := LoadConfig()
	assert.Same(t, cfg, again)
}

func TestRateWindowConversion(t *testing.T) {
	cfg := &Config{RateWindowSec: 30}
	assert.Equal(t, 30*time.Second, cfg.RateWindow())

	cfg = &Config{}
	assert.Equal(t, time.Duration(0), cfg.RateWindow())
}
