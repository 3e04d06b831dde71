package main

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/de-mickey/lstime/internal/format"
	"github.com/de-mickey/lstime/internal/options"
	"github.com/de-mickey/lstime/internal/stat"
)

// action applies one command-line flag to the options.
type action func(o *options.Options) error

// switchValue is a boolean flag whose effect is queued when it is set.
// An explicit --flag=false queues nothing.
type switchValue struct {
	queue *[]action
	apply action
}

func (v *switchValue) String() string   { return "false" }
func (v *switchValue) Type() string     { return "bool" }
func (v *switchValue) IsBoolFlag() bool { return true }

func (v *switchValue) Set(arg string) error {
	on, err := strconv.ParseBool(arg)
	if err != nil {
		return err
	}
	if on {
		*v.queue = append(*v.queue, v.apply)
	}
	return nil
}

// argValue is a flag with an argument whose effect is queued when it is set.
type argValue struct {
	queue *[]action
	def   string
	apply func(o *options.Options, arg string) error
}

func (v *argValue) String() string { return v.def }
func (v *argValue) Type() string   { return "string" }

func (v *argValue) Set(arg string) error {
	*v.queue = append(*v.queue, func(o *options.Options) error {
		return v.apply(o, arg)
	})
	return nil
}

func (a *app) switchFlag(fs *pflag.FlagSet, name, short, usage string, apply func(o *options.Options) error) {
	f := fs.VarPF(&switchValue{queue: &a.actions, apply: apply}, name, short, usage)
	f.NoOptDefVal = "true"
}

func (a *app) argFlag(fs *pflag.FlagSet, name, short, def, usage string, apply func(o *options.Options, arg string) error) {
	fs.VarP(&argValue{queue: &a.actions, def: def, apply: apply}, name, short, usage)
}

// set wraps a side-effect free option change as an action.
func set(fn func(o *options.Options)) func(o *options.Options) error {
	return func(o *options.Options) error {
		fn(o)
		return nil
	}
}

func (a *app) registerFlags(fs *pflag.FlagSet) {
	a.argFlag(fs, "item-format", "i", format.DefaultItemFormat, "item (overall) `format`",
		func(o *options.Options, arg string) error {
			o.ItemFormat = arg
			return nil
		})
	a.argFlag(fs, "time-format", "t", options.DefaultTimeFormat, "strftime `format` for timestamps",
		func(o *options.Options, arg string) error {
			o.TimeFormat = arg
			return nil
		})
	a.switchFlag(fs, "local-time", "l", "use the local (TZ) time zone (default)", set(func(o *options.Options) { o.UTC = false }))
	a.switchFlag(fs, "utc", "u", "use UTC", set(func(o *options.Options) { o.UTC = true }))
	a.argFlag(fs, "file", "f", "", "read paths from `file` (- for stdin)",
		func(o *options.Options, arg string) error {
			o.InputFile = arg
			return nil
		})
	a.switchFlag(fs, "newline", "n", "read paths terminated by newline (default)", set(func(o *options.Options) { o.Delim = '\n' }))
	a.switchFlag(fs, "null", "z", "read paths terminated by NUL", set(func(o *options.Options) { o.Delim = 0 }))
	a.switchFlag(fs, "show-options", "o", "show option settings at this point on stderr",
		func(o *options.Options) error {
			return o.WriteSettings(a.stderr)
		})
	a.switchFlag(fs, "reverse", "r", "reverse the sort order (toggles)", set(func(o *options.Options) { o.Reverse = !o.Reverse }))
	a.argFlag(fs, "sort", "s", "none", "sort output by `field`",
		func(o *options.Options, arg string) error {
			field, err := options.ParseSortField(arg)
			if err != nil {
				return err
			}
			o.Sort = field
			return nil
		})
	a.switchFlag(fs, "debug", "d", "show debug messages", set(func(o *options.Options) { o.Debug = true }))

	// Presets
	a.switchFlag(fs, "mtime", "m", "preset: mtime only", set(func(o *options.Options) { o.Preset(stat.Modified) }))
	a.switchFlag(fs, "atime", "a", "preset: atime only", set(func(o *options.Options) { o.Preset(stat.Accessed) }))
	a.switchFlag(fs, "ctime", "c", "preset: ctime only", set(func(o *options.Options) { o.Preset(stat.Changed) }))
	a.switchFlag(fs, "btime", "b", "preset: btime only", set(func(o *options.Options) { o.Preset(stat.Born) }))
	a.switchFlag(fs, "everything", "e", "preset: every timestamp, labelled, one per line", set((*options.Options).Everything))

	// statx(2) flags
	a.switchFlag(fs, "automount", "A", "allow automounting (default)", set(func(o *options.Options) { o.Stat.NoAutomount = false }))
	a.switchFlag(fs, "no-automount", "B", "do not automount, use the underlying directory", set(func(o *options.Options) { o.Stat.NoAutomount = true }))
	a.switchFlag(fs, "follow-links", "L", "show timestamps of symlink targets (default)", set(func(o *options.Options) { o.Stat.NoFollow = false }))
	a.switchFlag(fs, "stat-links", "P", "show timestamps of symlinks themselves", set(func(o *options.Options) { o.Stat.NoFollow = true }))
	a.switchFlag(fs, "sync-as-stat", "X", "sync remote attributes as stat(2) does (default)", set(func(o *options.Options) { o.Stat.Sync = stat.SyncAsStat }))
	a.switchFlag(fs, "force-sync", "Y", "force syncing of remote attributes", set(func(o *options.Options) { o.Stat.Sync = stat.SyncForce }))
	a.switchFlag(fs, "do-not-sync", "Z", "use cached remote attributes", set(func(o *options.Options) { o.Stat.Sync = stat.SyncNone }))

	// Configuration
	fs.StringVar(&a.configPath, "config", "", "config `file` (default $LSTIME_CONFIG or ~/.config/lstime/config.toml)")
	fs.BoolVar(&a.initConfig, "init-config", false, "write a default config file and exit")
	fs.BoolVar(&a.force, "force", false, "overwrite an existing config file with --init-config")
}
