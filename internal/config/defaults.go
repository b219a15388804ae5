package config

import "time"

// defaultConfig returns the lowest priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "go-habit-tracker",
			AccessTokenDuration:  30 * time.Minute,
			RefreshTokenDuration: 24 * time.Hour,
			Version:              "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSAllowedOrigins: []string{
				"http://localhost:8000",
				"http://127.0.0.1:8000",
			},
		},
		Adapter: Adapter{
			Telegram: Telegram{
				BaseURL:        "https://api.telegram.org",
				RequestTimeout: 10 * time.Second,
			},
		},
		Workers: Workers{
			Reminder: Reminder{
				Interval:        time.Minute,
				LeadTime:        15 * time.Minute,
				DispatchTimeout: 10 * time.Second,
				TimeZone:        "Asia/Almaty",
			},
		},
		Log: Log{
			Level:      "debug",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
