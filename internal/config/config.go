package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
)

// Config is the process-wide configuration
type Config struct {
	HTTPPort           string
	StoreBackend       string
	MongoURI           string
	MongoDatabase      string
	SQLitePath         string
	StorePageSize      int
	RedisAddr          string
	RateLimitPerMinute int
	APIKey             string
	CORSAllowedOrigins []string
	EndpointsFile      string
	Endpoints          []EndpointProfile
	AI                 *AIConfig
}

// Load reads an optional .env file, the environment and the endpoint profiles
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	cfg := &Config{
		HTTPPort:           getEnvOrDefault("PORT", "8080"),
		StoreBackend:       getEnvOrDefault("STORE_BACKEND", StoreMongo),
		MongoURI:           getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnvOrDefault("MONGO_DATABASE", "quizbank"),
		SQLitePath:         getEnvOrDefault("SQLITE_PATH", ""),
		StorePageSize:      getEnvInt("STORE_PAGE_SIZE", 100),
		RedisAddr:          strings.TrimPrefix(getEnvOrDefault("REDIS_URI", ""), "redis://"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 0),
		APIKey:             getEnvOrDefault("API_GATEWAY_KEY", ""),
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://thecomptiabible.com")),
		EndpointsFile:      getEnvOrDefault("ENDPOINTS_FILE", ""),
		AI:                 DefaultAIConfig(),
	}

	if cfg.StoreBackend != StoreMongo && cfg.StoreBackend != StoreSQLite {
		return nil, errors.New("STORE_BACKEND must be mongo or sqlite")
	}

	cfg.Endpoints = DefaultEndpoints()
	if cfg.EndpointsFile != "" {
		endpoints, err := LoadEndpoints(cfg.EndpointsFile)
		if err != nil {
			return nil, err
		}
		cfg.Endpoints = endpoints
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
