package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, 1*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("DATABASE_DSN", "postgres://localhost/app")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, "postgres://localhost/app", cfg.DatabaseDSN)
}

func TestParseEnv_AddressWinsOverPort(t *testing.T) {
	t.Setenv("ADDRESS", "127.0.0.1:9090")
	t.Setenv("PORT", "8081")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "127.0.0.1:9090", cfg.Addr)
}

func TestParseEnv_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 1*time.Hour, cfg.TokenTTL)
}
