package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds the naira CLI configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"NAIRA_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"NAIRA_LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
