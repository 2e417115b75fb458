package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "ACQUIRER_"

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Mollie    MollieConfig    `koanf:"mollie"`
	Retry     RetryConfig     `koanf:"retry"`
	Shop      ShopConfig      `koanf:"shop"`
	Worker    WorkerConfig    `koanf:"worker"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logger    LoggerConfig    `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// MollieConfig is handed to mollie.NewClient; nothing keeps it globally.
type MollieConfig struct {
	Environment    string        `koanf:"environment" validate:"required,oneof=test prod"`
	APIKeyTest     string        `koanf:"api_key_test"`
	APIKeyProd     string        `koanf:"api_key_prod"`
	ProfileID      string        `koanf:"profile_id"`
	BaseURL        string        `koanf:"base_url" validate:"required,url"`
	ConnTimeout    time.Duration `koanf:"conn_timeout" validate:"required"`
	PlatformName   string        `koanf:"platform_name"`
	PlatformVer    string        `koanf:"platform_version"`
	IntegrationVer string        `koanf:"integration_version"`
}

// APIKey returns the key for the configured environment.
func (c MollieConfig) APIKey() string {
	if c.Environment == "prod" {
		return c.APIKeyProd
	}
	return c.APIKeyTest
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay" validate:"required"`
	MaxRetries int           `koanf:"max_retries" validate:"gt=0"`
}

type ShopConfig struct {
	BaseURL      string `koanf:"base_url" validate:"required,url"`
	RedirectPath string `koanf:"redirect_path" validate:"required"`
	WebhookPath  string `koanf:"webhook_path" validate:"required"`
}

type WorkerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	SyncInterval time.Duration `koanf:"sync_interval" validate:"required"`
}

type RateLimitConfig struct {
	RPS   float64 `koanf:"rps" validate:"gt=0"`
	Burst int     `koanf:"burst" validate:"gt=0"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 "development",
		"server.port":                 "8080",
		"server.read_timeout":         "15s",
		"server.write_timeout":        "30s",
		"server.idle_timeout":         "60s",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"mollie.environment":          "test",
		"mollie.base_url":             "https://api.mollie.com/v2",
		"mollie.conn_timeout":         "20s",
		"mollie.platform_name":        "Acquirer",
		"mollie.platform_version":     "1.0",
		"mollie.integration_version":  "1.0",
		"retry.base_delay":            "500ms",
		"retry.max_retries":           3,
		"shop.redirect_path":          "/payment/mollie/redirect",
		"shop.webhook_path":           "/payment/mollie/webhook",
		"worker.enabled":              true,
		"worker.sync_interval":        "6h",
		"rate_limit.rps":              10,
		"rate_limit.burst":            20,
		"logger.level":                "info",
		"logger.format":               "json",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if mainConfig.Mollie.APIKey() == "" {
		err = fmt.Errorf("mollie: no api key configured for environment %q", mainConfig.Mollie.Environment)
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
