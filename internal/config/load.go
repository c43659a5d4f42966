package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Load loads configuration from defaults, config files, environment and the
// flags in fs (which may be nil).
func Load(fs *pflag.FlagSet) (*Config, error) {
	cws, err := LoadWithSources(fs)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each key.
func LoadWithSources(fs *pflag.FlagSet) (*ConfigWithSources, error) {
	cfg := Defaults()
	sources := make(map[string]ConfigSource, len(fields))
	for _, key := range Keys() {
		sources[key] = SourceDefault
	}
	cws := &ConfigWithSources{Config: cfg, Sources: sources}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg.ProjectRoot = wd

	// 1. User config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
		cws.Files = append(cws.Files, path)
	}

	// 2. Project config file, or the one named by --config
	projectFile := findProjectConfigFile(wd)
	if explicit := explicitConfigFile(fs); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		projectFile = explicit
	}
	if projectFile != "" {
		if err := loadConfigFile(cfg, projectFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
		cws.Files = append(cws.Files, projectFile)
	}

	// 3. Environment
	if err := loadFromEnv(cfg, sources); err != nil {
		return nil, err
	}

	// 4. Flags
	if err := applyFlags(cfg, fs, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	return cws, nil
}

// loadConfigFile decodes a TOML file over cfg. Keys the file sets are
// attributed to source; unknown keys are rejected.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	for _, f := range fields {
		if md.IsDefined(f.key) {
			sources[f.key] = source
		}
	}
	return nil
}

// finalizeConfig expands paths and validates values.
func finalizeConfig(cfg *Config) error {
	cfg.LogDir = expandPath(cfg.LogDir)

	if cfg.CharLimit < 0 {
		return fmt.Errorf("char_limit must not be negative, got %d", cfg.CharLimit)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format must be text, json or logfmt, got %q", cfg.LogFormat)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, error or fatal, got %q", cfg.LogLevel)
	}
	return nil
}
