package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// [Duration] values that accept "30s" style strings.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver         string `json:"driver"`
			DSN            string `json:"dsn"`
			MaxOpenConns   int    `json:"max_open_conns"`
			MigrateOnStart bool   `json:"migrate_on_start"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		GRPCAddress        string   `json:"grpc_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		Telegram struct {
			BaseURL        string   `json:"base_url"`
			BotToken       string   `json:"bot_token"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"telegram,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		Reminder struct {
			Disabled        bool     `json:"disabled"`
			Interval        Duration `json:"interval"`
			LeadTime        Duration `json:"lead_time"`
			DispatchTimeout Duration `json:"dispatch_timeout"`
			TimeZone        string   `json:"time_zone"`
		} `json:"reminder,omitempty"`
	} `json:"workers,omitempty"`

	Log struct {
		Level      string `json:"level"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:         jsonCfg.Storage.DB.Driver,
				DSN:            jsonCfg.Storage.DB.DSN,
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
				MigrateOnStart: jsonCfg.Storage.DB.MigrateOnStart,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			GRPCAddress:        jsonCfg.Server.GRPCAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
		},
		Adapter: Adapter{
			Telegram: Telegram{
				BaseURL:        jsonCfg.Adapter.Telegram.BaseURL,
				BotToken:       jsonCfg.Adapter.Telegram.BotToken,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Telegram.RequestTimeout),
			},
		},
		Workers: Workers{
			Reminder: Reminder{
				Disabled:        jsonCfg.Workers.Reminder.Disabled,
				Interval:        time.Duration(jsonCfg.Workers.Reminder.Interval),
				LeadTime:        time.Duration(jsonCfg.Workers.Reminder.LeadTime),
				DispatchTimeout: time.Duration(jsonCfg.Workers.Reminder.DispatchTimeout),
				TimeZone:        jsonCfg.Workers.Reminder.TimeZone,
			},
		},
		Log: Log{
			Level:      jsonCfg.Log.Level,
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
			MaxAgeDays: jsonCfg.Log.MaxAgeDays,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
