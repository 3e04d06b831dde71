package timefmt

import "cmp"

// Timestamp is a point in time as seconds and nanoseconds since the Unix epoch.
type Timestamp struct {
	Sec  int64
	Nsec int64
}

// Unset marks a timestamp the filesystem did not provide.
var Unset = Timestamp{Sec: -1, Nsec: -1}

// IsSet reports whether t holds a real instant.
func (t Timestamp) IsSet() bool {
	return t != Unset
}

// Compare orders timestamps by seconds, then nanoseconds.
// Unset sorts as a second before the epoch.
func (t Timestamp) Compare(u Timestamp) int {
	if c := cmp.Compare(t.Sec, u.Sec); c != 0 {
		return c
	}
	return cmp.Compare(t.Nsec, u.Nsec)
}
