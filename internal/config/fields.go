package config

import (
	"fmt"
	"strconv"
)

// field describes one configurable key across the file, env and flag layers.
type field struct {
	key   string // TOML key
	env   string // environment variable, without EnvPrefix
	flag  string // CLI flag name
	usage string
	ptr   func(*Config) any // *string, *int or *bool inside the config
}

var fields = []field{
	{"title", "TITLE", "title", "Heading shown above the list", func(c *Config) any { return &c.Title }},
	{"placeholder", "PLACEHOLDER", "placeholder", "Placeholder text of the new item input", func(c *Config) any { return &c.Placeholder }},
	{"char_limit", "CHAR_LIMIT", "char-limit", "Maximum length of a new item (0 for no limit)", func(c *Config) any { return &c.CharLimit }},
	{"alt_screen", "ALT_SCREEN", "alt-screen", "Run the UI in the alternate screen buffer", func(c *Config) any { return &c.AltScreen }},
	{"mouse", "MOUSE", "mouse", "Enable mouse clicks on remove controls", func(c *Config) any { return &c.Mouse }},
	{"log_dir", "LOG_DIR", "log-dir", "Directory for per-run diagnostic logs (empty disables)", func(c *Config) any { return &c.LogDir }},
	{"log_level", "LOG_LEVEL", "log-level", "Log level (debug, info, warn, error)", func(c *Config) any { return &c.LogLevel }},
	{"log_format", "LOG_FORMAT", "log-format", "Log format (text, json, logfmt)", func(c *Config) any { return &c.LogFormat }},
	{"log_timestamps", "LOG_TIMESTAMPS", "log-timestamps", "Include timestamps in log lines", func(c *Config) any { return &c.LogTimestamps }},
	{"log_caller", "LOG_CALLER", "log-caller", "Include caller location in log lines", func(c *Config) any { return &c.LogCaller }},
}

// Keys returns the configurable keys in display order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Value returns the string form of key in cfg.
func (c *Config) Value(key string) (string, error) {
	for _, f := range fields {
		if f.key != key {
			continue
		}
		switch p := f.ptr(c).(type) {
		case *string:
			return *p, nil
		case *int:
			return strconv.Itoa(*p), nil
		case *bool:
			return strconv.FormatBool(*p), nil
		}
	}
	return "", fmt.Errorf("unknown config key %q", key)
}
