package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-mickey/lstime/internal/stat"
	"github.com/de-mickey/lstime/internal/timefmt"
)

func ts(sec, nsec int64) timefmt.Timestamp {
	return timefmt.Timestamp{Sec: sec, Nsec: nsec}
}

// sample returns items whose fields are ordered differently per kind.
func sample() *List {
	var l List
	l.Add(stat.Info{Path: "ccc", Mtime: ts(5, 2), Atime: ts(3, 0), Ctime: ts(1, 0), Btime: ts(9, 9)})
	l.Add(stat.Info{Path: "aaa", Mtime: ts(5, 4), Atime: ts(1, 0), Ctime: ts(4, 0), Btime: timefmt.Unset})
	l.Add(stat.Info{Path: "ddd", Mtime: ts(5, 1), Atime: ts(4, 0), Ctime: ts(2, 0), Btime: ts(0, 0)})
	l.Add(stat.Info{Path: "bbb", Mtime: ts(5, 3), Atime: ts(2, 0), Ctime: ts(3, 0), Btime: ts(9, 8)})
	return &l
}

func paths(l *List) []string {
	var out []string
	for _, info := range l.Items() {
		out = append(out, info.Path)
	}
	return out
}

func TestListSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   SortField
		reverse bool
		want    []string
	}{
		{name: "mtime newest first", field: SortModified, want: []string{"aaa", "bbb", "ccc", "ddd"}},
		{name: "mtime reversed", field: SortModified, reverse: true, want: []string{"ddd", "ccc", "bbb", "aaa"}},
		{name: "atime newest first", field: SortAccessed, want: []string{"ddd", "ccc", "bbb", "aaa"}},
		{name: "atime reversed", field: SortAccessed, reverse: true, want: []string{"aaa", "bbb", "ccc", "ddd"}},
		{name: "ctime newest first", field: SortChanged, want: []string{"aaa", "bbb", "ddd", "ccc"}},
		{name: "btime unset sorts oldest", field: SortBorn, want: []string{"ccc", "bbb", "ddd", "aaa"}},
		{name: "path ascending", field: SortPath, want: []string{"aaa", "bbb", "ccc", "ddd"}},
		{name: "path reversed", field: SortPath, reverse: true, want: []string{"ddd", "ccc", "bbb", "aaa"}},
		{name: "none keeps input order", field: SortNone, want: []string{"ccc", "aaa", "ddd", "bbb"}},
		{name: "none ignores reverse", field: SortNone, reverse: true, want: []string{"ccc", "aaa", "ddd", "bbb"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := sample()
			require.NoError(t, l.Sort(tt.field, tt.reverse, nil))
			assert.Equal(t, tt.want, paths(l))
		})
	}
}

func TestListSortNanoseconds(t *testing.T) {
	t.Parallel()

	l := sample()
	require.NoError(t, l.Sort(SortModified, false, nil))
	var nsecs []int64
	for _, info := range l.Items() {
		nsecs = append(nsecs, info.Mtime.Nsec)
	}
	assert.Equal(t, []int64{4, 3, 2, 1}, nsecs)
}

func TestListSortStable(t *testing.T) {
	t.Parallel()

	var l List
	for _, p := range []string{"x", "y", "z"} {
		l.Add(stat.Info{Path: p, Mtime: ts(7, 0)})
	}
	require.NoError(t, l.Sort(SortModified, false, nil))
	assert.Equal(t, []string{"x", "y", "z"}, paths(&l))
}

func TestListSortUnknownField(t *testing.T) {
	t.Parallel()

	l := sample()
	assert.Error(t, l.Sort(SortField('q'), false, nil))
	assert.Equal(t, 4, l.Len())
}

func TestSortFieldString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mtime", SortModified.String())
	assert.Equal(t, "path", SortPath.String())
	assert.Equal(t, "none", SortNone.String())
	assert.Equal(t, `SortField('q')`, SortField('q').String())
}
