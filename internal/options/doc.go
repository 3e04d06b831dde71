// Package options holds the runtime settings of one lstime run.
//
// Settings start from [Default], are overridden by the config file and then
// by command-line flags in the order they appear. Presets such as
// [Options.Preset] and [Options.Everything] replace formats wholesale, so a
// later -i or -t still wins over an earlier preset and the reverse.
package options
