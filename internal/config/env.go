package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// loadFromEnv overrides cfg from FLUXTODO_* variables and records which keys
// they set.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	for _, f := range fields {
		if _, ok := os.LookupEnv(EnvPrefix + f.env); ok {
			sources[f.key] = SourceEnv
		}
	}
	return nil
}
