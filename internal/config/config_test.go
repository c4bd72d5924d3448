package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	// t.Setenv не умеет удалять переменную, пустое значение тоже считается заданным
	for _, key := range []string{
		"APP_ENV", "HTTP_PORT", "LOG_LEVEL", "STORAGE_DRIVER", "DATABASE_URL",
		"POSTGRESQL_HOST", "POSTGRESQL_USER", "POSTGRESQL_PASSWORD", "POSTGRESQL_DBNAME",
		"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_LIMIT", "RATE_LIMIT_PERIOD", "CACHE_TTL", "SEED_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Development(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_PORT", "5283")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("RATE_LIMIT_LIMIT", "100")
	t.Setenv("RATE_LIMIT_PERIOD", "1m")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "5283", cfg.HTTPPort)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(100), cfg.RateLimitLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionRequiresOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_ALLOWED_ORIGINS")
}

func TestLoad_ParsesOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com, https://www.example.com,")
	t.Setenv("RATE_LIMIT_LIMIT", "20")
	t.Setenv("RATE_LIMIT_PERIOD", "30s")
	t.Setenv("CACHE_TTL", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_BadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("RATE_LIMIT_LIMIT", "10")
	t.Setenv("RATE_LIMIT_PERIOD", "минута")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDatabaseURL_FromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRESQL_HOST", "db")
	t.Setenv("POSTGRESQL_PORT", "5432")
	t.Setenv("POSTGRESQL_USER", "portfolio")
	t.Setenv("POSTGRESQL_PASSWORD", "p@ss")
	t.Setenv("POSTGRESQL_DBNAME", "portfolio")

	assert.Equal(t, "postgres://portfolio:p%40ss@db:5432/portfolio?sslmode=disable", getDatabaseURL())
}
