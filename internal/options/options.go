package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/de-mickey/lstime/internal/format"
	"github.com/de-mickey/lstime/internal/listing"
	"github.com/de-mickey/lstime/internal/stat"
)

// DefaultTimeFormat is the default strftime template for timestamps
const DefaultTimeFormat = "%FT%T.%3N"

const (
	everythingItemFormat = "%p\n" +
		"    modified  %m\n" +
		"    accessed  %a\n" +
		"     changed  %c\n" +
		"        born  %b\n" +
		"\n"
	everythingTimeFormat = "%F %T.%9N %:z"
)

// Options are the effective settings of a run.
type Options struct {
	ItemFormat string
	TimeFormat string
	InputFile  string // "" for none, "-" for stdin
	Stat       stat.Flags
	Delim      byte
	Sort       listing.SortField
	Reverse    bool
	UTC        bool
	Debug      bool
}

// Default returns the built-in settings.
func Default() Options {
	return Options{
		ItemFormat: format.DefaultItemFormat,
		TimeFormat: DefaultTimeFormat,
		Stat:       stat.Flags{Sync: stat.SyncAsStat},
		Delim:      '\n',
		Sort:       listing.SortNone,
	}
}

// Preset shows a single timestamp field next to the path.
func (o *Options) Preset(f stat.Field) {
	o.ItemFormat = fmt.Sprintf("%%%c  %%p%%n", byte(f))
}

// Everything shows all timestamps with labels, one per line.
func (o *Options) Everything() {
	o.ItemFormat = everythingItemFormat
	o.TimeFormat = everythingTimeFormat
}

// WriteSettings writes the settings to w as the long flags that would
// reproduce them, one per line, followed by a blank line.
func (o *Options) WriteSettings(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--item-format=\"%s\"\n", o.ItemFormat)
	fmt.Fprintf(&b, "--time-format=\"%s\"\n", o.TimeFormat)
	if o.InputFile != "" {
		fmt.Fprintf(&b, "--file=\"%s\"\n", o.InputFile)
	}

	b.WriteString(choose(o.Stat.NoFollow, "--stat-links\n", "--follow-links\n"))
	b.WriteString(choose(o.Stat.NoAutomount, "--no-automount\n", "--automount\n"))
	switch o.Stat.Sync {
	case stat.SyncForce:
		b.WriteString("--force-sync\n")
	case stat.SyncNone:
		b.WriteString("--do-not-sync\n")
	default:
		b.WriteString("--sync-as-stat\n")
	}

	fmt.Fprintf(&b, "--sort=%c\n", byte(o.Sort))
	if o.Reverse {
		b.WriteString("--reverse\n")
	}
	b.WriteString(choose(o.Delim == 0, "--null\n", "--newline\n"))
	b.WriteString(choose(o.UTC, "--utc\n", "--local-time\n"))
	if o.Debug {
		b.WriteString("--debug\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
