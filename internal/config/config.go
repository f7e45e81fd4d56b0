package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config stores runtime configuration for the reader.
type Config struct {
	AppHost    string `env:"APP_HOST" envDefault:"127.0.0.1"`
	AppPort    string `env:"APP_PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ConfigPath string `env:"DB_CONFIG_PATH"`
	UseEnv     bool   `env:"DB_CONFIG_USE_ENV" envDefault:"false"`
	DotenvPath string `env:"DOTENV_PATH" envDefault:".env"`
}

// Load reads configuration from environment variables with sane defaults.
// Variables from the dotenv file, if it exists, are added first without
// overriding ones already set.
func Load() (Config, error) {
	if err := loadDotenv(getEnv("DOTENV_PATH", ".env")); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
