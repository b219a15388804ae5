package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns the defaults completed with the fields that have no
// default value.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost:5432/habits"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero config does not pass validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of a later
// source override the same fields of an earlier one while zero fields keep
// the earlier value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{
			App:     App{Version: "1.2.3"},
			Workers: Workers{Reminder: Reminder{LeadTime: 5 * time.Minute}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "go-habit-tracker", cfg.App.TokenIssuer)
	assert.Equal(t, 5*time.Minute, cfg.Workers.Reminder.LeadTime)
	assert.Equal(t, time.Minute, cfg.Workers.Reminder.Interval)
}

func TestBuild_DefaultsArePreserved(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "Asia/Almaty", cfg.Workers.Reminder.TimeZone)
	assert.Equal(t, 15*time.Minute, cfg.Workers.Reminder.LeadTime)
	assert.Equal(t, "https://api.telegram.org", cfg.Adapter.Telegram.BaseURL)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, DriverSQLite, b.configs[0].Storage.DB.Driver)
}

func TestWithEnv_SetsError_WhenInvalidValue(t *testing.T) {
	t.Setenv("WORKERS_REMINDER_INTERVAL", "every minute")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple sources carry a
// JSON path the last one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

// ── LoadConfig ────────────────────────────────────────────────────────────────

func TestLoadConfig_JSONOverridesEnvAndDefaults(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("WORKERS_REMINDER_TIME_ZONE", "UTC")

	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"driver": "sqlite", "dsn": "habits.db"}},
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "habits.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "UTC", cfg.Workers.Reminder.TimeZone)
	assert.Equal(t, 30*time.Minute, cfg.App.AccessTokenDuration)
}

func TestLoadConfig_FailsValidation_WithoutSignKey(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")

	cfg, err := LoadConfig("")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero access token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AccessTokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "no transport",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = ""
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown time zone",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.Reminder.TimeZone = "Mars/Olympus" },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.Reminder.Interval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name: "disabled worker skips its checks",
			mutate: func(cfg *StructuredConfig) {
				cfg.Workers.Reminder.Disabled = true
				cfg.Workers.Reminder.Interval = 0
			},
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
