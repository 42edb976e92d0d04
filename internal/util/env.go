package util

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/forensilink/backend/pkg/logger"
)

// LoadEnv reads a local .env file if one exists; otherwise the system
// environment is used as-is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

func GetEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return ""
	}
	return value
}

func GetEnvString(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	return defaultValue
}
