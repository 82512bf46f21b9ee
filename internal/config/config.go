package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	UploadDir      string
	AllowedOrigins []string
	Environment    string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnvOrDefault("DB_NAME", "ic_store"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		UploadDir:      getEnvOrDefault("UPLOAD_DIR", "./public"),
		AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		Environment:    getEnvOrDefault("APP_ENV", "development"),
	}
}

// IsProduction gates how much of an underlying error is echoed to clients.
func IsProduction() bool {
	return strings.EqualFold(AppEnv.Environment, "production")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getListEnv(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
