// pkg/core/load.go
package core

import (
	"fmt"
	"os"

	manifest "github.com/joeydtaylor/steeze-routes/pkg/manifest"
	toml "github.com/pelletier/go-toml/v2"
)

// LoadConfig reads, decodes and validates a route manifest.
func LoadConfig(path string) (manifest.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return manifest.Config{}, err
	}
	var cfg manifest.Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return manifest.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return manifest.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
