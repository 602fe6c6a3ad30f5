package config

import "fmt"

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.MaxTokens < 0 {
		return fmt.Errorf("config: 'max-tokens' must be >= 0")
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("config: 'timeout' must be >= 0")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "generated"
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = "build"
	}
	return nil
}
