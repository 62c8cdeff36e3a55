package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/bosko/internal/nexus"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("BOSKO_API_URL", "https://api.bosko.mx")
		t.Setenv("TOKEN_SYMMETRIC_KEY", "12345678901234567890123456789012")

		cfg, err := LoadConfig(nexus.WithOnlyEnvironment())

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "memory", cfg.Cache.Backend)
		assert.Equal(t, 15*time.Second, cfg.Remote.Timeout)
		assert.Equal(t, time.Duration(0), cfg.EligibilityTTL)
		assert.Equal(t, "MX", cfg.DefaultPhoneRegion)
		assert.Equal(t, 30*time.Minute, cfg.ManagedIdleTTL)
	})

	t.Run("missing backend url", func(t *testing.T) {
		t.Setenv("BOSKO_API_URL", "")
		t.Setenv("TOKEN_SYMMETRIC_KEY", "12345678901234567890123456789012")

		_, err := LoadConfig(nexus.WithOnlyEnvironment())

		var ce *nexus.ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, nexus.ErrCodeValidation, ce.Code)
	})

	t.Run("short token key", func(t *testing.T) {
		t.Setenv("BOSKO_API_URL", "https://api.bosko.mx")
		t.Setenv("TOKEN_SYMMETRIC_KEY", "short")
		t.Setenv("ELIGIBILITY_TTL", "10m")

		_, err := LoadConfig(nexus.WithOnlyEnvironment())

		require.Error(t, err)
	})
}
