// Package stat reads the four file timestamps lstime displays.
//
// On Linux the timestamps come from statx(2), which also reports the birth
// time when the filesystem records one. A timestamp the kernel does not
// return is [timefmt.Unset]. Other platforms fall back to os.Stat and
// os.Lstat, which provide only the modification time.
package stat
