// Package config loads glossa's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Defaults struct {
		Format  string `yaml:"format"`
		NoColor bool   `yaml:"no_color"`
		Verbose bool   `yaml:"verbose"`
	} `yaml:"defaults"`

	Watch struct {
		DebounceMS int `yaml:"debounce_ms"`
	} `yaml:"watch"`

	Document struct {
		MaxPDFPages int `yaml:"max_pdf_pages"`
	} `yaml:"document"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults.Format = "text"
	cfg.Watch.DebounceMS = 250
	cfg.Document.MaxPDFPages = 50
	return cfg
}

// Load reads and validates a config file. Fields left unset in the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the given path, or searches the standard locations
// when path is empty. Missing files are not an error; defaults apply.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	found := findConfigFile()
	if found == "" {
		return Default(), nil
	}
	return Load(found)
}

// findConfigFile searches the working directory and then the user config
// directory. The first existing file wins.
func findConfigFile() string {
	candidates := []string{"glossa.yaml", ".glossa.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "glossa", "config.yaml"))
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func (c *Config) validate() error {
	switch c.Defaults.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", c.Defaults.Format)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must not be negative")
	}
	if c.Document.MaxPDFPages < 0 {
		return fmt.Errorf("max_pdf_pages must not be negative")
	}
	return nil
}
