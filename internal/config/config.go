// Package config reads and validates the optional clangcat YAML
// configuration file. CLI flags always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds settings loadable from a YAML file.
type Config struct {
	// Compiler is the compiler path or bare binary name to query.
	Compiler string `yaml:"compiler"`

	// Plugins lists analyzer plugin paths. Order is preserved and
	// determines the load order passed to the compiler.
	Plugins []string `yaml:"plugins" validate:"omitempty,dive,required"`

	// Format is the default output format.
	Format string `yaml:"format" validate:"omitempty,oneof=text json jsonl"`

	// NoColor disables colored text output.
	NoColor bool `yaml:"no_color"`
}

var validate = validator.New()

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault looks for a config file in the default locations:
// ./.clangcat.yaml, then $XDG_CONFIG_HOME/clangcat/config.yaml (falling
// back to ~/.config). A missing file is not an error; the zero Config and
// an empty path are returned.
func LoadDefault() (*Config, string, error) {
	for _, path := range defaultPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return &Config{}, "", nil
}

// defaultPaths returns candidate config locations in lookup order.
func defaultPaths() []string {
	paths := []string{".clangcat.yaml"}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(home, ".config")
		}
	}
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "clangcat", "config.yaml"))
	}
	return paths
}
