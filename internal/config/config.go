package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/de-mickey/lstime/internal/options"
	"github.com/de-mickey/lstime/internal/stat"
	"github.com/de-mickey/lstime/internal/storage"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "LSTIME_CONFIG"

// ErrInvalidConfig is returned for a config file that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of a config file.
// Nil pointers and empty strings mean "not set" (keep the default).
type Config struct {
	ItemFormat  *string `toml:"item_format" yaml:"item_format"`
	TimeFormat  *string `toml:"time_format" yaml:"time_format" validate:"omitnil,max=1023"`
	UTC         *bool   `toml:"utc" yaml:"utc"`
	Sort        string  `toml:"sort" yaml:"sort" validate:"omitempty,oneof=m mtime a atime c ctime b btime p path n none"`
	Reverse     *bool   `toml:"reverse" yaml:"reverse"`
	Debug       *bool   `toml:"debug" yaml:"debug"`
	NullInput   *bool   `toml:"null_input" yaml:"null_input"`
	StatLinks   *bool   `toml:"stat_links" yaml:"stat_links"`
	NoAutomount *bool   `toml:"no_automount" yaml:"no_automount"`
	Sync        string  `toml:"sync" yaml:"sync" validate:"omitempty,oneof=as-stat force none"`
}

// Path returns the config file to read. flagPath comes from --config.
// explicit reports whether the user named the file, in which case it
// must exist.
func Path(flagPath string, getenv func(string) string) (path string, explicit bool, err error) {
	if flagPath != "" {
		return flagPath, true, nil
	}
	if env := getenv(EnvConfigPath); env != "" {
		return env, true, nil
	}
	dir, err := storage.ConfigDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, "config.toml"), false, nil
}

// Load reads the config file at path.
// Returns an empty Config if the file doesn't exist and mustExist is false.
// Returns error only if the file exists but is invalid, or is required.
func Load(path string, mustExist bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if isYAML(path) {
		err = decodeYAML(data, &cfg)
	} else {
		err = decodeTOML(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Apply overrides the settings in o with every value set in c.
func (c *Config) Apply(o *options.Options) error {
	if c.ItemFormat != nil {
		o.ItemFormat = *c.ItemFormat
	}
	if c.TimeFormat != nil {
		o.TimeFormat = *c.TimeFormat
	}
	if c.UTC != nil {
		o.UTC = *c.UTC
	}
	if c.Sort != "" {
		field, err := options.ParseSortField(c.Sort)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		o.Sort = field
	}
	if c.Reverse != nil {
		o.Reverse = *c.Reverse
	}
	if c.Debug != nil {
		o.Debug = *c.Debug
	}
	if c.NullInput != nil {
		o.Delim = '\n'
		if *c.NullInput {
			o.Delim = 0
		}
	}
	if c.StatLinks != nil {
		o.Stat.NoFollow = *c.StatLinks
	}
	if c.NoAutomount != nil {
		o.Stat.NoAutomount = *c.NoAutomount
	}
	if c.Sync != "" {
		mode, err := stat.ParseSyncMode(c.Sync)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		o.Stat.Sync = mode
	}
	return nil
}
