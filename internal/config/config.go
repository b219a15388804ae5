// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the habit
// tracker. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration of outbound integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the logger level and the optional rotated file sink.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of an access token.
	// Env: APP_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of a refresh token.
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the backend: "postgres" (pgx) or "sqlite" (go-sqlite3).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, a PostgreSQL URL or an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns bounds the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MigrateOnStart applies pending migrations when the server starts.
	// Env: STORAGE_DB_MIGRATE_ON_START
	MigrateOnStart bool `env:"MIGRATE_ON_START"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	Telegram Telegram `envPrefix:"TELEGRAM_"`
}

// Telegram holds the Bot API client settings.
type Telegram struct {
	// BaseURL is the Bot API root.
	// Env: ADAPTER_TELEGRAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// BotToken authenticates the bot.
	// Env: ADAPTER_TELEGRAM_BOT_TOKEN
	BotToken string `env:"BOT_TOKEN"`

	// RequestTimeout bounds a single sendMessage call.
	// Env: ADAPTER_TELEGRAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	Reminder Reminder `envPrefix:"REMINDER_"`
}

// Reminder holds the settings of the reminder scanner.
type Reminder struct {
	// Disabled turns the reminder worker off.
	// Env: WORKERS_REMINDER_DISABLED
	Disabled bool `env:"DISABLED"`

	// Interval is the tick period.
	// Env: WORKERS_REMINDER_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// LeadTime is how long before a habit's time the reminder is sent.
	// Env: WORKERS_REMINDER_LEAD_TIME
	LeadTime time.Duration `env:"LEAD_TIME"`

	// DispatchTimeout bounds a single reminder delivery.
	// Env: WORKERS_REMINDER_DISPATCH_TIMEOUT
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT"`

	// TimeZone is the IANA zone habit times are expressed in.
	// Env: WORKERS_REMINDER_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File enables a rotated file sink next to stdout when non-empty.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`

	// MaxAgeDays is the retention of rotated files.
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// LoadConfig is GetStructuredConfig without command-line flags, for tools
// that parse their own arguments. jsonPath may be empty.
func LoadConfig(jsonPath string) (*StructuredConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}

	return b.withJSON().build()
}
