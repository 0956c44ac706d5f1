package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr       string
	GinMode       string
	StorageDriver string // memory (default) or mysql
	JWTSecret     string
	TokenTTL      time.Duration

	DBUser string
	DBPass string
	DBHost string
	DBName string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	if driver != "mysql" {
		driver = "memory"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	ttl := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS")); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		StorageDriver: driver,
		JWTSecret:     secret,
		TokenTTL:      ttl,
		DBUser:        envOr("DB_USER", "root"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:        envOr("DB_NAME", "opentrip"),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
