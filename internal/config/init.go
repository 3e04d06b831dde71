package config

import (
	"errors"
	"os"

	"github.com/de-mickey/lstime/internal/storage"
)

const defaultTOML = `# lstime configuration
#
# Every setting below is commented out and shows its default.
# Command-line flags override anything set here.

# Item template for each file
#   %m %a %c %b  modification, access, change and birth time
#   %p           path with shell escapes
#   %u           path with shell escapes, non-ASCII escaped too
#   %r           raw path bytes
#   %n %z %%     newline, NUL byte, percent sign
# item_format = "%m  %a  %p%n"

# strftime template for timestamps, plus %[1-9]N (subseconds) and %:z (+hh:mm)
# time_format = "%FT%T.%3N"

# Format timestamps in UTC instead of the local zone
# utc = false

# Sort by m[time], a[time], c[time], b[time], p[ath] or n[one]
# Sorting buffers all output; "none" streams it
# sort = "none"
# reverse = false

# Read --file paths terminated by NUL instead of newline
# null_input = false

# Show timestamps of symlinks themselves instead of their targets
# stat_links = false

# statx(2) only: avoid automounts, and choose "as-stat", "force" or "none" syncing
# no_automount = false
# sync = "as-stat"

# debug = false
`

const defaultYAML = `# lstime configuration
#
# Every setting below is commented out and shows its default.
# Command-line flags override anything set here.

# Item template for each file
#   %m %a %c %b  modification, access, change and birth time
#   %p           path with shell escapes
#   %u           path with shell escapes, non-ASCII escaped too
#   %r           raw path bytes
#   %n %z %%     newline, NUL byte, percent sign
# item_format: "%m  %a  %p%n"

# strftime template for timestamps, plus %[1-9]N (subseconds) and %:z (+hh:mm)
# time_format: "%FT%T.%3N"

# utc: false
# sort: none
# reverse: false
# null_input: false
# stat_links: false
# no_automount: false
# sync: as-stat
# debug: false
`

// Init creates a default config file at path, or at the default location
// when path is empty. If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(path string, force bool) (string, error) {
	if path == "" {
		var err error
		if path, _, err = Path("", func(string) string { return "" }); err != nil {
			return "", err
		}
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path + " (use --force to overwrite)")
		}
	}

	content := defaultTOML
	if isYAML(path) {
		content = defaultYAML
	}
	if err := storage.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
