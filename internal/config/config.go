package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	Env          string `env:"APP_ENV" envDefault:"development"`
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"web/templates"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"web/static"`
}

// Load reads environment variables and returns a populated Config.
// A local .env file is loaded best-effort first; production should use
// real env injection, so a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}
	return &cfg, nil
}

// IsDev reports whether the app runs in the development environment.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}
