package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:            "8173",
		JWTSecret:       "test-secret",
		UploadDir:       "uploads",
		MaxUploadSizeMB: 10,
		Env:             "test",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid non-production config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing upload dir", func(t *testing.T) {
		cfg := validConfig()
		cfg.UploadDir = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive upload size", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaxUploadSizeMB = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestConfigValidate_Production(t *testing.T) {
	t.Run("default jwt secret rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		cfg.DBPassword = "strong-db-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short jwt secret rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "strong-db-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("weak db password rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("s", 32)
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("strong settings accepted", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = strings.Repeat("s", 32)
		cfg.DBPassword = "strong-db-password"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
