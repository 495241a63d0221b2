package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/moneyball/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/moneyball_test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/moneyball_test", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0", cfg.APIHost)
	assert.Equal(t, 3001, cfg.APIPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "super-top-secret-key", cfg.SecretKey)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "https://statsapi.mlb.com/api/v1", cfg.MLBAPIBaseURL)
	assert.Equal(t, 240, cfg.MLBRequestsPerMinute)
	assert.True(t, cfg.CacheEnabled)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONEYBALL_DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadAlternateDatabaseVar(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONEYBALL_DATABASE_URL", "postgres://alt/db")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://alt/db", cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/moneyball_test")
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("BCRYPT_WORK_FACTOR", "4")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestAPIPortPrefersExplicit(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/moneyball_test")
	t.Setenv("PORT", "8080")
	t.Setenv("API_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.APIPort)
}

func TestBadIntFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/moneyball_test")
	t.Setenv("PORT", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.APIPort)
}

func TestLeagueRegistry(t *testing.T) {
	assert.Equal(t, 103, config.LeagueRegistry["AL"].ID)
	assert.Equal(t, 104, config.LeagueRegistry["NL"].ID)
}
