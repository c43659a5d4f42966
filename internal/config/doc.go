// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.fluxtodo/fluxtodo.toml or OS-specific config directory)
// 3. Project config file (fluxtodo.toml or .fluxtodo.toml in the working directory),
//    or the file named by --config
// 4. Environment variables (FLUXTODO_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.fluxtodo/fluxtodo.toml (preferred)
// - Windows: %APPDATA%\fluxtodo\fluxtodo.toml
// - macOS: ~/Library/Application Support/fluxtodo/fluxtodo.toml
// - Linux/BSD: $XDG_CONFIG_HOME/fluxtodo/fluxtodo.toml or ~/.config/fluxtodo/fluxtodo.toml
package config
