package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ACQUIRER_DATABASE__HOST", "localhost")
	t.Setenv("ACQUIRER_DATABASE__PORT", "5432")
	t.Setenv("ACQUIRER_DATABASE__USER", "acquirer")
	t.Setenv("ACQUIRER_DATABASE__PASSWORD", "p@ss word")
	t.Setenv("ACQUIRER_DATABASE__NAME", "acquirer")
	t.Setenv("ACQUIRER_MOLLIE__API_KEY_TEST", "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM")
	t.Setenv("ACQUIRER_SHOP__BASE_URL", "https://shop.example.com")
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads env over defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACQUIRER_SERVER__PORT", "9090")
		t.Setenv("ACQUIRER_WORKER__SYNC_INTERVAL", "30m")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "test", cfg.Mollie.Environment)
		assert.Equal(t, "https://api.mollie.com/v2", cfg.Mollie.BaseURL)
		assert.Equal(t, "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM", cfg.Mollie.APIKey())
		assert.Equal(t, "/payment/mollie/webhook", cfg.Shop.WebhookPath)
		assert.Equal(t, 30*time.Minute, cfg.Worker.SyncInterval)
		assert.Equal(t, 20, cfg.RateLimit.Burst)
		assert.Equal(t, 500*time.Millisecond, cfg.Retry.BaseDelay)
		assert.Equal(t, 3, cfg.Retry.MaxRetries)
	})

	t.Run("rejects unknown mollie environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACQUIRER_MOLLIE__ENVIRONMENT", "staging")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("requires a key for the selected environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACQUIRER_MOLLIE__ENVIRONMENT", "prod")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no api key")
	})

	t.Run("requires shop base url", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACQUIRER_SHOP__BASE_URL", "")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestMollieConfig_APIKey(t *testing.T) {
	c := MollieConfig{Environment: "prod", APIKeyTest: "test_x", APIKeyProd: "live_y"}
	assert.Equal(t, "live_y", c.APIKey())

	c.Environment = "test"
	assert.Equal(t, "test_x", c.APIKey())
}

func TestDatabaseConfig_PgxConfig(t *testing.T) {
	c := &DatabaseConfig{
		Host: "db", Port: 5432, User: "acquirer", Password: "p@ss word", Name: "acquirer",
		SSLMode: "disable", MaxOpenConns: 8, MaxIdleConns: 2,
		ConnMaxLifetime: time.Hour, ConnMaxIdleTime: time.Minute,
	}

	cfg, err := c.PgxConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "p@ss word", cfg.ConnConfig.Password)
	assert.Equal(t, "db", cfg.ConnConfig.Host)
	assert.Equal(t, int32(8), cfg.MaxConns)
	assert.Equal(t, "mollie-acquirer", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestLoggerConfig_Level(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LoggerConfig{Level: "DEBUG"}.level())
	assert.Equal(t, slog.LevelWarn, LoggerConfig{Level: "warning"}.level())
	assert.Equal(t, slog.LevelInfo, LoggerConfig{}.level())
	assert.NotNil(t, LoggerConfig{Format: "text"}.NewLogger())
}
