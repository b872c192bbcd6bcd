package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/llm"
)

// Prefix is prepended to every environment variable name.
const Prefix = "CAREERFIT_"

// Config is the process configuration.
type Config struct {
	// LogFile receives JSON logs. Empty disables logging.
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CatalogPath overrides the embedded question catalog.
	CatalogPath string `env:"CATALOG"`

	LLM llm.Config `envPrefix:"LLM_"`
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set win over the file.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv paths. Missing files are skipped.
func LoadFiles(dotenv ...string) (Config, error) {
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.LLM, _ = cfg.LLM.Discover()
	if err := cfg.LLM.Validate(); err != nil {
		return Config{}, fmt.Errorf("llm config: %w", err)
	}
	return cfg, nil
}
