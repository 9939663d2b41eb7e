package config

import (
	"os"
	"strconv"
)

// AIConfig holds the completion API settings used by the tutor chat
type AIConfig struct {
	APIKey      string  `json:"-"` // Never serialize
	BaseURL     string  `json:"baseUrl"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	TimeoutMS   int     `json:"timeoutMs"`
}

// DefaultAIConfig returns the completion configuration from the environment
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     getEnvOrDefault("COMPLETION_BASE_URL", "https://api.openai.com/v1"),
		Model:       getEnvOrDefault("COMPLETION_MODEL", "gpt-3.5-turbo"),
		Temperature: getEnvFloat("COMPLETION_TEMPERATURE", 0.7),
		MaxTokens:   getEnvInt("COMPLETION_MAX_TOKENS", 150),
		TimeoutMS:   getEnvInt("COMPLETION_TIMEOUT_MS", 30000),
	}
}

// IsEnabled returns true if the completion API key is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatCompletionsURL returns the full chat completions endpoint
func (c *AIConfig) ChatCompletionsURL() string {
	return c.BaseURL + "/chat/completions"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
