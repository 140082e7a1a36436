// Package config loads checkcrates settings from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"

	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
	"github.com/matzehuels/checkcrates/pkg/integrations/crates"
)

// Prefix is prepended to every environment variable name.
const Prefix = "CHECKCRATES"

// Config holds all application configuration.
type Config struct {
	// RegistryURL is the registry host searched (CHECKCRATES_REGISTRY_URL).
	RegistryURL string `envconfig:"REGISTRY_URL" default:"https://crates.io"`

	// UserAgent is sent with every request (CHECKCRATES_USER_AGENT).
	UserAgent string `envconfig:"USER_AGENT" default:"check-crates-client"`

	// Debug enables debug logging (CHECKCRATES_DEBUG).
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		RegistryURL: crates.DefaultURL,
		UserAgent:   crates.DefaultUserAgent,
	}
}

// Validate checks that the configuration can be used to reach a registry.
func (c *Config) Validate() error {
	if err := apperrors.ValidateURL(c.RegistryURL); err != nil {
		return err
	}
	if c.UserAgent == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "user agent cannot be empty")
	}
	return nil
}
