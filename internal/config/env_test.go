package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllGroups(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_ISSUER", "issuer")
	t.Setenv("APP_ACCESS_TOKEN_DURATION", "15m")
	t.Setenv("APP_REFRESH_TOKEN_DURATION", "48h")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite")
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:habits.db")
	t.Setenv("STORAGE_DB_MIGRATE_ON_START", "true")
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("SERVER_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("ADAPTER_TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("WORKERS_REMINDER_LEAD_TIME", "10m")
	t.Setenv("WORKERS_REMINDER_TIME_ZONE", "Europe/Moscow")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FILE", "/var/log/habits.log")
	t.Setenv("CONFIG", "/etc/habits.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, 48*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:habits.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.MigrateOnStart)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "bot-token", cfg.Adapter.Telegram.BotToken)
	assert.Equal(t, 10*time.Minute, cfg.Workers.Reminder.LeadTime)
	assert.Equal(t, "Europe/Moscow", cfg.Workers.Reminder.TimeZone)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/var/log/habits.log", cfg.Log.File)
	assert.Equal(t, "/etc/habits.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Zero(t, cfg.Workers.Reminder.Interval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_ACCESS_TOKEN_DURATION", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("WORKERS_REMINDER_DISABLED", "maybe")

	assert.Error(t, parseEnv(&StructuredConfig{}))
}
