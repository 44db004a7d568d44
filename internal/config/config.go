package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ServerConfig struct {
	Port string
}

// AuthConfig selects the credential resolver. Mode "static" trusts a fixed
// account (bootstrap/dev), mode "token" verifies Bearer JWTs against the
// accounts table.
type AuthConfig struct {
	Mode            string
	JWTSecret       string
	StaticAccountID int64
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			DSN:             buildDSN(),
			MaxOpenConns:    getEnvInt("DATABASE_MAX_OPEN_CONNS", 100),
			MaxIdleConns:    getEnvInt("DATABASE_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvDuration("DATABASE_CONN_MAX_LIFETIME", time.Hour),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Auth: AuthConfig{
			Mode:            getEnv("AUTH_MODE", "static"),
			JWTSecret:       getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
			StaticAccountID: int64(getEnvInt("STATIC_ACCOUNT_ID", 1)),
		},
	}

	if cfg.Auth.Mode != "static" && cfg.Auth.Mode != "token" {
		return nil, fmt.Errorf("invalid AUTH_MODE %q (want static or token)", cfg.Auth.Mode)
	}

	return cfg, nil
}

func buildDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "purchases"),
		getEnv("DB_PORT", "5432"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
