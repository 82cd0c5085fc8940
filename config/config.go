package config

import (
	"log"
	"os"
	"strconv"
)

const (
	DefaultAccessTokenSecret  = "secret"
	DefaultRefreshTokenSecret = "refresh-secret"

	DefaultAccessExpiryHours = 24
	DefaultRefreshExpiryDays = 7
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	RedisURL           string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryHours  int
	RefreshExpiryDays  int
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "3000"),
		DBURL:              mustGetEnv("DB_URL"),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		AccessTokenSecret:  getEnv("JWT_SECRET", DefaultAccessTokenSecret),
		RefreshTokenSecret: getEnv("JWT_REFRESH_SECRET", DefaultRefreshTokenSecret),
		AccessExpiryHours:  getEnvAsInt("JWT_EXPIRES_IN_HOURS", DefaultAccessExpiryHours),
		RefreshExpiryDays:  getEnvAsInt("JWT_REFRESH_EXPIRES_IN_DAYS", DefaultRefreshExpiryDays),
	}
}

// UsingDefaultSecrets reports whether either signing secret is still an
// insecure built-in value. Startup warns but does not refuse to run.
func (c *Config) UsingDefaultSecrets() bool {
	return c.AccessTokenSecret == DefaultAccessTokenSecret ||
		c.RefreshTokenSecret == DefaultRefreshTokenSecret
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
