package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string  `envconfig:"HOST" default:"0.0.0.0"`
	Port            string  `envconfig:"PORT" default:"8080"`
	Environment     string  `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout int     `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	RateLimit       float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
}

// AIConfig holds the AI gateway configuration. A missing API key is not a
// load-time failure: the extraction service reports it per call so the server
// can still start and serve health checks.
type AIConfig struct {
	APIKey      string        `envconfig:"AI_GATEWAY_API_KEY"`
	BaseURL     string        `envconfig:"AI_GATEWAY_URL" default:"https://ai.gateway.lovable.dev"`
	Model       string        `envconfig:"AI_MODEL" default:"google/gemini-2.5-flash"`
	Timeout     time.Duration `envconfig:"AI_TIMEOUT" default:"30s"`
	MaxTokens   int           `envconfig:"AI_MAX_TOKENS" default:"4096"`
	Temperature float64       `envconfig:"AI_TEMPERATURE" default:"0.2"`
}

// Load loads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
