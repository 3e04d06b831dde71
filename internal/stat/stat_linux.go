//go:build linux

package stat

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/de-mickey/lstime/internal/timefmt"
)

const statxMask = unix.STATX_ATIME | unix.STATX_BTIME | unix.STATX_CTIME | unix.STATX_MTIME

func (f Flags) statx() int {
	var flags int
	if f.NoFollow {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}
	if f.NoAutomount {
		flags |= unix.AT_NO_AUTOMOUNT
	}
	switch f.Sync {
	case SyncForce:
		flags |= unix.AT_STATX_FORCE_SYNC
	case SyncNone:
		flags |= unix.AT_STATX_DONT_SYNC
	default:
		flags |= unix.AT_STATX_SYNC_AS_STAT
	}
	return flags
}

// Path returns the timestamps of path.
func Path(path string, flags Flags) (Info, error) {
	var sx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, flags.statx(), statxMask, &sx); err != nil {
		return Info{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}

	return Info{
		Path:  path,
		Mtime: statxTime(sx.Mask, unix.STATX_MTIME, sx.Mtime),
		Atime: statxTime(sx.Mask, unix.STATX_ATIME, sx.Atime),
		Ctime: statxTime(sx.Mask, unix.STATX_CTIME, sx.Ctime),
		Btime: statxTime(sx.Mask, unix.STATX_BTIME, sx.Btime),
	}, nil
}

func statxTime(mask, bit uint32, ts unix.StatxTimestamp) timefmt.Timestamp {
	if mask&bit == 0 {
		return timefmt.Unset
	}
	return timefmt.Timestamp{Sec: ts.Sec, Nsec: int64(ts.Nsec)}
}
