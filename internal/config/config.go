package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultGatewayBaseURL = "https://pay.nivuspay.com.br/api/v1"

// Gateway holds the NivusPay connection settings. The secret key is a
// required value: there is deliberately no baked-in fallback, so a
// misconfigured deployment fails at startup instead of silently calling
// the gateway with a published credential.
type Gateway struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

type Config struct {
	Addr        string
	Env         string
	DatabaseURL string
	JWTSecret   string
	Gateway     Gateway
}

var (
	ErrMissingDatabaseURL   = errors.New("DATABASE_URL is not set")
	ErrMissingGatewaySecret = errors.New("NIVUS_PAY_SECRET_KEY is not set")
	ErrMissingJWTSecret     = errors.New("JWT_SECRET is not set")
)

// Load reads configuration from the environment, after loading a local
// .env file when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getEnv("APP_ADDR", ":8080"),
		Env:         getEnv("APP_ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Gateway: Gateway{
			BaseURL:   getEnv("NIVUS_PAY_BASE_URL", defaultGatewayBaseURL),
			SecretKey: os.Getenv("NIVUS_PAY_SECRET_KEY"),
			Timeout:   30 * time.Second,
		},
	}

	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	if cfg.Gateway.SecretKey == "" {
		return Config{}, ErrMissingGatewaySecret
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
