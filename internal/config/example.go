package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# fluxtodo configuration file
# Values can be overridden by FLUXTODO_* environment variables or CLI flags

# Heading shown above the list
title = "Todo List"

# Placeholder of the new item input
placeholder = "New Item"

# Maximum length of a new item (0 for no limit)
char_limit = 256

# Run in the alternate screen buffer
alt_screen = true

# Allow clicking the [x] control of a row
mouse = true

# Directory for per-run diagnostic logs (supports ~ expansion); empty disables
# log_dir = "~/.fluxtodo/logs"

# Diagnostics
log_level = "debug"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
