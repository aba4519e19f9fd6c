package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BackendURL string
	LogLevel   string

	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	PollInterval   time.Duration

	DownloadDir string

	BreakerEnabled bool

	MetricsPort string
}

func Load() Config {
	return Config{
		BackendURL: mustEnv("BACKEND_URL", "http://localhost:8000"),
		LogLevel:   mustEnv("LOG_LEVEL", "info"),

		RequestTimeout: time.Duration(mustEnvInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		UploadTimeout:  time.Duration(mustEnvInt("UPLOAD_TIMEOUT_SECONDS", 300)) * time.Second,
		PollInterval:   time.Duration(mustEnvInt("STATUS_POLL_SECONDS", 5)) * time.Second,

		DownloadDir: mustEnv("DOWNLOAD_DIR", "./downloads"),

		BreakerEnabled: mustEnvBool("BREAKER_ENABLED", true),

		MetricsPort: mustEnv("METRICS_PORT", ""),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
