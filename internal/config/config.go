package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL  string
	Port         string
	AllowOrigins string
	CacheTTL     time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", "planner.db"),
		Port:         getEnv("PORT", "8080"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
		CacheTTL:     time.Duration(getEnvInt("CACHE_TTL_SECONDS", 5)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
