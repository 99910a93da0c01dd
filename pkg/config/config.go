package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	Env                 string
	StoragePath         string
	JWTSecret           string
	ArticlesPerCategory int
	RefreshInterval     time.Duration
}

func Load() *Config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		StoragePath:         getEnv("STORAGE_PATH", "cambliss.db"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		ArticlesPerCategory: getEnvInt("ARTICLES_PER_CATEGORY", 10),
		RefreshInterval:     time.Duration(getEnvInt("REFRESH_INTERVAL_MINUTES", 20)) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
