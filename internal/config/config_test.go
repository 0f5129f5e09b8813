package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")
		assert.Equal(t, "custom_value", getEnv("TEST_CONFIG_VAR", "default_value"))
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		assert.Equal(t, "default_value", getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value"))
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")
		assert.Equal(t, "default_value", getEnv("EMPTY_CONFIG_VAR", "default_value"))
	})
}

func TestParsers(t *testing.T) {
	assert.Equal(t, 30*time.Minute, parseDuration("30m"))
	assert.Equal(t, 90*time.Minute, parseDuration("1h30m"))
	assert.True(t, parseBool("true"))
	assert.False(t, parseBool("0"))
	assert.Equal(t, 4, parseInt("4"))
}

func TestLoad(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "testdb")
	t.Setenv("JWT_SECRET", "test-secret-key")

	t.Run("loads config with defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "testdb", cfg.MongoDatabase)
		assert.Equal(t, "test-secret-key", cfg.JWTSecret)
		assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
		assert.Equal(t, 2, cfg.ReportWorkers)
		assert.Equal(t, "waste-reports", cfg.S3Bucket)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("JWT_EXPIRY", "2h")
		t.Setenv("REPORT_WORKERS", "8")

		cfg := Load()

		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
		assert.Equal(t, 8, cfg.ReportWorkers)
	})
}
