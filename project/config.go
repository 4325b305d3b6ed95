// Package project locates Java sources and carries the settings for an
// extraction run.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name looked up in the working directory when no
// explicit configuration path is given.
const ConfigFile = "jex.yaml"

// Config holds the settings for one extraction run.
type Config struct {
	// Roots are directories or files to scan for Java sources.
	Roots []string `yaml:"roots"`
	// Jobs caps how many units are processed concurrently.
	Jobs int `yaml:"jobs"`
	// Eager parses every block during collection instead of on access.
	Eager bool `yaml:"eager"`
}

func DefaultConfig() Config {
	return Config{Roots: []string{"."}, Jobs: 1}
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error: a Maven project next to it supplies the roots, and without
// one the defaults are returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return mavenConfig(filepath.Dir(path)), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Jobs < 0 {
		return Config{}, fmt.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}
	if len(cfg.Roots) == 0 {
		cfg.Roots = []string{"."}
	}
	return cfg, nil
}
