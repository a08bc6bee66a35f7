package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "INR", cfg.Payment.Currency)
	assert.Equal(t, 72*time.Hour, cfg.Redis.CartTTL)
	assert.Equal(t, 30*time.Minute, cfg.Payment.PendingTTL)
	assert.Equal(t, "*/10 * * * *", cfg.Payment.SweepCron)
	assert.False(t, cfg.Payment.Enabled(), "sin credenciales la pasarela queda deshabilitada")
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CART_TTL_HOURS", "1")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Redis.CartTTL)
	assert.True(t, cfg.Payment.Enabled())
}

func TestLoad_ProduccionSinSecretFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "agri", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/agri?sslmode=disable", c.ConnectionString())
}

func TestStoreConfig_LocationInvalidaUsaUTC(t *testing.T) {
	assert.Equal(t, time.UTC, config.StoreConfig{Timezone: "Marte/Olympus"}.Location())
}
