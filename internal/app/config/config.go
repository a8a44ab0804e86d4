// Package config loads the process configuration once at startup.
// The resulting struct is passed by reference into each component that
// needs it; there is no global settings singleton.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev-secret-change-in-production"

// Config holds every setting the service reads from the environment.
type Config struct {
	Port           string
	Env            string
	DatabaseURL    string
	SecretKey      string
	AccessTokenTTL time.Duration
	RunMigrations  bool
}

// Load reads configuration from the environment, with .env support for
// local development. It fails when a production deployment is missing a
// real secret key.
func Load() (*Config, error) {
	// .envが無いのは本番環境では正常系
	_ = godotenv.Load()

	minutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"))
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", "maddr.db"),
		SecretKey:      getEnv("SECRET_KEY", devSecret),
		AccessTokenTTL: time.Duration(minutes) * time.Minute,
		RunMigrations:  getEnv("RUN_MIGRATIONS", "true") == "true",
	}

	if cfg.Env == "production" && cfg.SecretKey == devSecret {
		return nil, fmt.Errorf("SECRET_KEY must be set in production environment")
	}
	if cfg.SecretKey == devSecret {
		slog.Warn("SECRET_KEY is not set. Set a strong secret in production.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
