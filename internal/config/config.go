package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the settings file looked up in the working directory.
const DefaultFileName = "vibe.yaml"

// Config holds the application settings for the generator.
type Config struct {
	Model        string `yaml:"model"`
	BaseURL      string `yaml:"base-url"`
	MaxTokens    int    `yaml:"max-tokens"`
	Timeout      int    `yaml:"timeout"`
	TemplatesDir string `yaml:"templates-dir"`
	OutputDir    string `yaml:"output-dir"`
	BuildDir     string `yaml:"build-dir"`
	MemoryPath   string `yaml:"memory-path"`
	Archive      bool   `yaml:"archive"`
}

// Load reads a YAML settings file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to a default
// config otherwise. A present-but-invalid file is still an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg = &Config{}
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}
