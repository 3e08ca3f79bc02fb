package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t, "HOTELFORGE_JWT_SECRET")
	os.Setenv("HOTELFORGE_JWT_SECRET", "test-jwt-secret-for-testing")

	cfg, err := Load()

	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "24h", cfg.JWT.Expiration)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 5*time.Second, cfg.RabbitMQ.ReconnectDelay)
	assert.Equal(t, time.Hour, cfg.CityUpdater.UpdateInterval)
	assert.Equal(t, time.Minute, cfg.CityUpdater.HeartbeatInterval)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envVars := map[string]string{
		"HOTELFORGE_DATABASE_HOST":     "testhost",
		"HOTELFORGE_DATABASE_PORT":     "5433",
		"HOTELFORGE_DATABASE_NAME":     "testdb",
		"HOTELFORGE_DATABASE_USER":     "testuser",
		"HOTELFORGE_DATABASE_PASSWORD": "testpass",
		"HOTELFORGE_DATABASE_SSLMODE":  "require",
		"HOTELFORGE_JWT_SECRET":        "test-jwt-secret",
		"HOTELFORGE_SERVER_HOST":       "127.0.0.1",
		"HOTELFORGE_SERVER_PORT":       "9000",
		"HOTELFORGE_REDIS_HOST":        "redishost",
		"HOTELFORGE_REDIS_PORT":        "6380",
		"HOTELFORGE_REDIS_DB":          "1",
		"HOTELFORGE_ENVIRONMENT":       "staging",
	}
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	clearEnv(t, keys...)
	for k, v := range envVars {
		os.Setenv(k, v)
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "testhost", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "testdb", cfg.Database.Name)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "testpass", cfg.Database.Password)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "test-jwt-secret", cfg.JWT.Secret)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "redishost", cfg.Redis.Host)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "staging", cfg.Environment)
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	clearEnv(t, "HOTELFORGE_JWT_SECRET")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestLoadConfigProductionMissingPassword(t *testing.T) {
	envVars := map[string]string{
		"HOTELFORGE_ENVIRONMENT":   "production",
		"HOTELFORGE_JWT_SECRET":    "secure-production-secret",
		"HOTELFORGE_DATABASE_HOST": "localhost",
	}
	keys := []string{"HOTELFORGE_ENVIRONMENT", "HOTELFORGE_JWT_SECRET", "HOTELFORGE_DATABASE_HOST", "HOTELFORGE_DATABASE_PASSWORD"}
	clearEnv(t, keys...)
	for k, v := range envVars {
		os.Setenv(k, v)
	}

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "database password is required in production")
}

func TestLoadConfigProductionInsecureJWTSecret(t *testing.T) {
	envVars := map[string]string{
		"HOTELFORGE_ENVIRONMENT":       "production",
		"HOTELFORGE_JWT_SECRET":        "dev-secret-key-change-in-production",
		"HOTELFORGE_DATABASE_PASSWORD": "prod-password",
	}
	keys := []string{"HOTELFORGE_ENVIRONMENT", "HOTELFORGE_JWT_SECRET", "HOTELFORGE_DATABASE_PASSWORD"}
	clearEnv(t, keys...)
	for k, v := range envVars {
		os.Setenv(k, v)
	}

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT secret must be changed in production")
}

func TestLoadConfigWithRabbitMQ(t *testing.T) {
	envVars := map[string]string{
		"HOTELFORGE_JWT_SECRET":              "test-secret",
		"HOTELFORGE_RABBITMQ_HOST":           "rabbitmq-host",
		"HOTELFORGE_RABBITMQ_PORT":           "5673",
		"HOTELFORGE_RABBITMQ_RECONNECTDELAY": "10s",
	}
	keys := []string{"HOTELFORGE_JWT_SECRET", "HOTELFORGE_RABBITMQ_HOST", "HOTELFORGE_RABBITMQ_PORT", "HOTELFORGE_RABBITMQ_RECONNECTDELAY"}
	clearEnv(t, keys...)
	for k, v := range envVars {
		os.Setenv(k, v)
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "rabbitmq-host", cfg.RabbitMQ.Host)
	assert.Equal(t, "5673", cfg.RabbitMQ.Port)
	assert.Equal(t, 10*time.Second, cfg.RabbitMQ.ReconnectDelay)
}

func TestLoadConfigWithHotelbeds(t *testing.T) {
	envVars := map[string]string{
		"HOTELFORGE_JWT_SECRET":        "test-secret",
		"HOTELFORGE_HOTELBEDS_APIKEY":  "hb-api-key",
		"HOTELFORGE_HOTELBEDS_SECRET":  "hb-secret",
		"HOTELFORGE_HOTELBEDS_BASEURL": "https://test.hotelbeds.com",
	}
	keys := []string{"HOTELFORGE_JWT_SECRET", "HOTELFORGE_HOTELBEDS_APIKEY", "HOTELFORGE_HOTELBEDS_SECRET", "HOTELFORGE_HOTELBEDS_BASEURL"}
	clearEnv(t, keys...)
	for k, v := range envVars {
		os.Setenv(k, v)
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "hb-api-key", cfg.Hotelbeds.APIKey)
	assert.Equal(t, "hb-secret", cfg.Hotelbeds.Secret)
	assert.Equal(t, "https://test.hotelbeds.com", cfg.Hotelbeds.BaseURL)
	assert.Equal(t, 60, cfg.Hotelbeds.RequestsPerMinute)
}

func TestLoadConfigWithPaymentGateway(t *testing.T) {
	envVars := map[string]string{
		"HOTELFORGE_JWT_SECRET":                  "test-secret",
		"HOTELFORGE_PAYMENTGATEWAY_MERCHANTID":   "merchant123",
		"HOTELFORGE_PAYMENTGATEWAY_CLIENTKEY":    "client-key",
		"HOTELFORGE_PAYMENTGATEWAY_SERVERKEY":    "server-key",
		"HOTELFORGE_PAYMENTGATEWAY_ISPRODUCTION": "true",
	}
	keys := []string{
		"HOTELFORGE_JWT_SECRET", "HOTELFORGE_PAYMENTGATEWAY_MERCHANTID", "HOTELFORGE_PAYMENTGATEWAY_CLIENTKEY",
		"HOTELFORGE_PAYMENTGATEWAY_SERVERKEY", "HOTELFORGE_PAYMENTGATEWAY_ISPRODUCTION",
	}
	clearEnv(t, keys...)
	for k, v := range envVars {
		os.Setenv(k, v)
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "merchant123", cfg.PaymentGateway.MerchantID)
	assert.Equal(t, "client-key", cfg.PaymentGateway.ClientKey)
	assert.Equal(t, "server-key", cfg.PaymentGateway.ServerKey)
	assert.True(t, cfg.PaymentGateway.IsProduction)
}
