package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name string
		addr NetAddress
		want string
	}{
		{name: "empty", addr: NetAddress{}, want: ""},
		{name: "host and port", addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{name: "port only", addr: NetAddress{Port: 9090}, want: ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ip", input: "127.0.0.1:3000", wantHost: "127.0.0.1", wantPort: 3000},
		{name: "empty host", input: ":5000", wantHost: "", wantPort: 5000},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:65536", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags("server", []string{
		"-a", "127.0.0.1:8081",
		"-grpc-address", ":9091",
		"-d", "postgres://db",
		"-db-driver", "postgres",
		"-migrate",
		"-config", "/tmp/config.json",
		"-token-sign-key", "key",
		"-access-token-duration", "5m",
		"-reminder-lead-time", "20m",
		"-time-zone", "UTC",
		"-log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9091", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.True(t, cfg.Storage.DB.MigrateOnStart)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, 5*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, 20*time.Minute, cfg.Workers.Reminder.LeadTime)
	assert.Equal(t, "UTC", cfg.Workers.Reminder.TimeZone)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags("server", nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.JSONFilePath)
	assert.False(t, cfg.Storage.DB.MigrateOnStart)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags("server", []string{"-a", "localhost"})
	assert.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags("server", []string{"-unknown"})
	assert.Error(t, err)
}
