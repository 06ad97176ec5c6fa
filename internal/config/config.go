package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	DolarAPI DolarAPIConfig
	Cache    CacheConfig
	Gemini   GeminiConfig
	Tools    ToolsConfig
}

type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
}

type DolarAPIConfig struct {
	BaseURL string        `env:"DOLAR_API_BASE_URL" env-default:"https://dolarapi.com/v1"`
	Timeout time.Duration `env:"DOLAR_API_TIMEOUT" env-default:"10s"`
}

type CacheConfig struct {
	TTL           time.Duration `env:"CACHE_TTL" env-default:"300s"`
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" env-default:"10m"`
}

type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`
	BaseURL string        `env:"GEMINI_API_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" env-default:"120s"`
}

type ToolsConfig struct {
	// ServerURL points the tool registry at the quote HTTP facade,
	// normally a loopback address.
	ServerURL string        `env:"TOOL_SERVER_URL" env-default:"http://localhost:8080"`
	Timeout   time.Duration `env:"TOOL_TIMEOUT" env-default:"10s"`
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &cfg, nil
}
