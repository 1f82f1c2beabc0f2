package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every environment-configurable setting for the device
// daemon and its management API.
type Config struct {
	Addr          string
	MountRoot     string
	DatabasePath  string
	FFProbeBinary string
	FFProbeTimeout time.Duration

	AuthUsername       string
	AuthPassword       string
	JWTSecret          string
	TokenTTLHours      int
	MaxLoginAttempts   int
	LoginWindowSeconds int

	LogLevel string
}

func Load() *Config {
	return &Config{
		Addr:           getEnv("ADDR", ":8000"),
		MountRoot:      getEnv("MOUNT_ROOT", "./ipod"),
		DatabasePath:   getEnv("DATABASE_PATH", "./ipod/iPod_Control/iTunes/iTunesDB"),
		FFProbeBinary:  getEnv("FFPROBE_BINARY", "ffprobe"),
		FFProbeTimeout: time.Duration(getEnvAsInt("FFPROBE_TIMEOUT_SECONDS", 10)) * time.Second,

		AuthUsername:       getEnv("AUTH_USERNAME", "admin"),
		AuthPassword:       getEnv("AUTH_PASSWORD", "change-me-in-production"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me-in-production-please"),
		TokenTTLHours:      getEnvAsInt("TOKEN_TTL_HOURS", 24),
		MaxLoginAttempts:   getEnvAsInt("MAX_LOGIN_ATTEMPTS", 5),
		LoginWindowSeconds: getEnvAsInt("LOGIN_WINDOW_SECONDS", 900),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultVal
}
