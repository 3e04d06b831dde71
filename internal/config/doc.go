// Package config handles loading and validation of lstime configuration.
//
// Configuration is read from a single file whose settings sit between the
// built-in defaults and the command-line flags.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags
//   - --config FILE
//   - LSTIME_CONFIG env var: path of the config file
//   - $XDG_CONFIG_HOME/lstime/config.toml, or ~/.config/lstime/config.toml
//   - Default values
//
// A missing default file is not an error. A file named with --config or
// LSTIME_CONFIG must exist.
//
// # File Formats
//
// Files ending in .yaml or .yml are decoded as YAML; anything else as TOML.
// Unknown keys are rejected in both formats.
//
// # Key Settings
//
//   - item_format: item template (default: "%m  %a  %p%n")
//   - time_format: strftime template (default: "%FT%T.%3N")
//   - utc: format timestamps in UTC instead of the local zone
//   - sort: m[time], a[time], c[time], b[time], p[ath] or n[one]
//   - reverse: reverse the sort order
//   - debug: print debug diagnostics
//   - null_input: read --file paths terminated by NUL instead of newline
//   - stat_links: show timestamps of symlinks themselves
//   - no_automount: do not trigger automounts
//   - sync: "as-stat", "force" or "none"
//
// Keys left out of the file keep their defaults.
package config
