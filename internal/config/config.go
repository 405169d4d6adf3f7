package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DatabaseURL    string
	Port           string
	FlightAPIURL   string
	TaxiAPIURL     string
	AdminJWTSecret string
	RemoteTimeout  time.Duration
	LogLevel       string
}

// Load reads the configuration from the environment. DATABASE_URL,
// FLIGHT_API_URL, TAXI_API_URL and ADMIN_JWT_SECRET are required.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           os.Getenv("PORT"),
		FlightAPIURL:   os.Getenv("FLIGHT_API_URL"),
		TaxiAPIURL:     os.Getenv("TAXI_API_URL"),
		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
		RemoteTimeout:  10 * time.Second,
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.FlightAPIURL == "" {
		return nil, fmt.Errorf("FLIGHT_API_URL is empty")
	}
	if cfg.TaxiAPIURL == "" {
		return nil, fmt.Errorf("TAXI_API_URL is empty")
	}
	if cfg.AdminJWTSecret == "" {
		return nil, fmt.Errorf("ADMIN_JWT_SECRET is empty")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("REMOTE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("REMOTE_TIMEOUT: %w", err)
		}
		cfg.RemoteTimeout = d
	}

	return cfg, nil
}
