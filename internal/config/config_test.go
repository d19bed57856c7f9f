package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	v.Set("DB_DSN", "postgres://localhost/leasing")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "EUR", cfg.Billing.Currency)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DSN", "postgres://localhost/leasing")
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", 8080)
	v.Set("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	v.Set("DB_AUTO_MIGRATE", "true")
	v.Set("DB_CONN_MAX_LIFETIME", "5m")
	v.Set("BILLING_CURRENCY", "USD")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "USD", cfg.Billing.Currency)
}

func TestFromViperRequiresDSN(t *testing.T) {
	_, err := fromViper(viper.New())
	require.EqualError(t, err, "DB_DSN is required")
}

func TestFromViperRejectsBadLifetime(t *testing.T) {
	v := viper.New()
	v.Set("DB_DSN", "postgres://localhost/leasing")
	v.Set("DB_CONN_MAX_LIFETIME", "forever")

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_CONN_MAX_LIFETIME")
}
