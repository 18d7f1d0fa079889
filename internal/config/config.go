package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// JWTSecret signs session tokens. Rotating it invalidates every
	// outstanding token.
	JWTSecret string

	// AppEnv is "development" or "production". Production requires a
	// secure transport for the session cookie.
	AppEnv string
}

func Load() Config {
	// Load .env if present (local dev); deployments inject real env vars.
	_ = godotenv.Load()

	cfg := Config{
		AppPort:   getEnv("APP_PORT", "4000"),
		JWTSecret: getEnv("JWT_SECRET", "dev_secret_change_me"),
		AppEnv:    getEnv("APP_ENV", "development"),
	}

	return cfg
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
