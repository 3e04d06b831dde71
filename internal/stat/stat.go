package stat

import (
	"fmt"

	"github.com/de-mickey/lstime/internal/timefmt"
)

// Info holds a path and its timestamps.
type Info struct {
	Path  string
	Mtime timefmt.Timestamp
	Atime timefmt.Timestamp
	Ctime timefmt.Timestamp
	Btime timefmt.Timestamp
}

// Field selects one of the timestamps in Info.
type Field byte

const (
	Modified Field = 'm'
	Accessed Field = 'a'
	Changed  Field = 'c'
	Born     Field = 'b'
)

// Time returns the timestamp selected by f.
func (i Info) Time(f Field) timefmt.Timestamp {
	switch f {
	case Modified:
		return i.Mtime
	case Accessed:
		return i.Atime
	case Changed:
		return i.Ctime
	case Born:
		return i.Btime
	default:
		return timefmt.Unset
	}
}

// SyncMode controls how statx(2) synchronizes attributes with a remote server.
type SyncMode int

const (
	SyncAsStat SyncMode = iota
	SyncForce
	SyncNone
)

func (m SyncMode) String() string {
	switch m {
	case SyncAsStat:
		return "as-stat"
	case SyncForce:
		return "force"
	case SyncNone:
		return "none"
	default:
		return fmt.Sprintf("SyncMode(%d)", int(m))
	}
}

// ParseSyncMode converts a config value to a SyncMode.
func ParseSyncMode(s string) (SyncMode, error) {
	switch s {
	case "", "as-stat":
		return SyncAsStat, nil
	case "force":
		return SyncForce, nil
	case "none":
		return SyncNone, nil
	default:
		return SyncAsStat, fmt.Errorf("invalid sync mode %q (valid: as-stat, force, none)", s)
	}
}

// Flags adjust how a path is examined.
type Flags struct {
	NoFollow    bool // examine a symlink itself
	NoAutomount bool // do not trigger automounts
	Sync        SyncMode
}
