package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each key.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultTitle       = "Todo List"
	DefaultPlaceholder = "New Item"
	DefaultCharLimit   = 256
	DefaultLogLevel    = "debug"
	DefaultLogFormat   = "text"

	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "FLUXTODO_"
	// FileName is the config file name looked up in user and project dirs.
	FileName = "fluxtodo.toml"
)

// Config holds the full configuration for fluxtodo.
type Config struct {
	// UI
	Title       string `toml:"title" env:"TITLE"`
	Placeholder string `toml:"placeholder" env:"PLACEHOLDER"`
	CharLimit   int    `toml:"char_limit" env:"CHAR_LIMIT"`
	AltScreen   bool   `toml:"alt_screen" env:"ALT_SCREEN"`
	Mouse       bool   `toml:"mouse" env:"MOUSE"`

	// Diagnostics. An empty LogDir disables the per-run log file.
	LogDir        string `toml:"log_dir" env:"LOG_DIR"`
	LogLevel      string `toml:"log_level" env:"LOG_LEVEL"`
	LogFormat     string `toml:"log_format" env:"LOG_FORMAT"`
	LogTimestamps bool   `toml:"log_timestamps" env:"LOG_TIMESTAMPS"`
	LogCaller     bool   `toml:"log_caller" env:"LOG_CALLER"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// Defaults returns a Config holding the built-in defaults.
func Defaults() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Title = DefaultTitle
	cfg.Placeholder = DefaultPlaceholder
	cfg.CharLimit = DefaultCharLimit
	cfg.AltScreen = true
	cfg.Mouse = true
	cfg.LogDir = ""
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}
