package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/meetinsight-team/meeting-insight/errors"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Assembly AssemblyAIConfig
	Groq     GroqConfig
	Insight  InsightConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// AssemblyAIConfig holds the speech provider configuration
type AssemblyAIConfig struct {
	APIKey      string
	SpeechModel string
	// LanguageCode is optional; empty lets the provider auto-detect.
	LanguageCode string
	// SubmitRetryMax bounds the exponential backoff around the submit call.
	SubmitRetryMax time.Duration
}

// GroqConfig holds the reasoning provider configuration
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// InsightConfig holds calendar-event disambiguation policy.
// These are deployment configuration, not prompt literals.
type InsightConfig struct {
	// DefaultEventDate is the ISO 8601 date assumed when a transcript
	// mentions a time without a date. Empty means "today at request time".
	DefaultEventDate string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "*")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Assembly: AssemblyAIConfig{
			APIKey:         getEnv("ASSEMBLYAI_API_KEY", ""),
			SpeechModel:    getEnv("ASSEMBLYAI_SPEECH_MODEL", "best"),
			LanguageCode:   getEnv("ASSEMBLYAI_LANGUAGE_CODE", ""),
			SubmitRetryMax: getEnvAsDuration("ASSEMBLYAI_SUBMIT_RETRY_MAX", "30s"),
		},
		Groq: GroqConfig{
			APIKey:      getEnv("GROQ_API_KEY", ""),
			BaseURL:     getEnv("GROQ_API_URL", "https://api.groq.com"),
			Model:       getEnv("GROQ_MODEL", "llama-3.1-70b-versatile"),
			Temperature: getEnvAsFloat("GROQ_TEMPERATURE", 0.3),
			MaxTokens:   getEnvAsInt("GROQ_MAX_TOKENS", 8000),
		},
		Insight: InsightConfig{
			DefaultEventDate: getEnv("INSIGHT_DEFAULT_EVENT_DATE", ""),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. The speech credential is required
// up front: its absence is a startup configuration error, not a per-request one.
func (c *Config) Validate() error {
	if c.Assembly.APIKey == "" {
		return errors.ErrConfiguration("AssemblyAI API Key not configured")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
