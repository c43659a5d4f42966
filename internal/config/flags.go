package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ConfigFlag names the flag that points at an explicit config file.
const ConfigFlag = "config"

// BindFlags defines one flag per config key on fs, plus --config. Flag
// defaults are the built-in defaults; only flags the user actually sets
// override the file and env layers.
func BindFlags(fs *pflag.FlagSet) {
	def := Defaults()
	fs.String(ConfigFlag, "", "Path to a config file (replaces the project config file)")
	for _, f := range fields {
		switch p := f.ptr(def).(type) {
		case *string:
			fs.String(f.flag, *p, f.usage)
		case *int:
			fs.Int(f.flag, *p, f.usage)
		case *bool:
			fs.Bool(f.flag, *p, f.usage)
		}
	}
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet, sources map[string]ConfigSource) error {
	if fs == nil {
		return nil
	}
	for _, f := range fields {
		if !fs.Changed(f.flag) {
			continue
		}
		var err error
		switch p := f.ptr(cfg).(type) {
		case *string:
			*p, err = fs.GetString(f.flag)
		case *int:
			*p, err = fs.GetInt(f.flag)
		case *bool:
			*p, err = fs.GetBool(f.flag)
		}
		if err != nil {
			return fmt.Errorf("flag --%s: %w", f.flag, err)
		}
		sources[f.key] = SourceFlag
	}
	return nil
}

// explicitConfigFile returns the --config value, if the flag is defined and set.
func explicitConfigFile(fs *pflag.FlagSet) string {
	if fs == nil || fs.Lookup(ConfigFlag) == nil {
		return ""
	}
	path, err := fs.GetString(ConfigFlag)
	if err != nil {
		return ""
	}
	return path
}
