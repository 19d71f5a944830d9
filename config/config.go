package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Port         int
	MongoURI     string
	MongoDB      string
	JWTKey       string
	ChitBaseURL  string
	GoldBaseURL  string
	UpstreamWait time.Duration
	Debug        bool
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	waitSecs, _ := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECONDS", "30"))
	return &Config{
		Port:         port,
		MongoURI:     getEnv("MONGO_URI", "mongodb://127.0.0.1:27017/agentapp"),
		MongoDB:      getEnv("MONGO_DB", "agentapp"),
		JWTKey:       getEnv("JWT_KEY", "your-secret-key"), // replace in real deployments
		ChitBaseURL:  getEnv("CHIT_BASE_URL", "http://127.0.0.1:9001"),
		GoldBaseURL:  getEnv("GOLD_BASE_URL", "http://127.0.0.1:9002"),
		UpstreamWait: time.Duration(waitSecs) * time.Second,
		Debug:        getEnv("GIN_MODE", "debug") == "debug",
	}
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
