//go:build !linux

package stat

import (
	"os"

	"github.com/de-mickey/lstime/internal/timefmt"
)

// Path returns the timestamps of path. Automount and sync flags have no
// effect here, and the birth time is always unset.
func Path(path string, flags Flags) (Info, error) {
	stat := os.Stat
	if flags.NoFollow {
		stat = os.Lstat
	}
	fi, err := stat(path)
	if err != nil {
		return Info{}, err
	}

	mtime := fi.ModTime()
	return Info{
		Path:  path,
		Mtime: timefmt.Timestamp{Sec: mtime.Unix(), Nsec: int64(mtime.Nanosecond())},
		Atime: timefmt.Unset,
		Ctime: timefmt.Unset,
		Btime: timefmt.Unset,
	}, nil
}
