package listing

import (
	"fmt"
	"slices"

	"github.com/de-mickey/lstime/internal/stat"
)

// SortField selects the sort key of a List.
type SortField byte

const (
	SortModified SortField = 'm'
	SortAccessed SortField = 'a'
	SortChanged  SortField = 'c'
	SortBorn     SortField = 'b'
	SortPath     SortField = 'p'
	SortNone     SortField = 'n'
)

var sortFieldNames = map[SortField]string{
	SortModified: "mtime",
	SortAccessed: "atime",
	SortChanged:  "ctime",
	SortBorn:     "btime",
	SortPath:     "path",
	SortNone:     "none",
}

func (f SortField) String() string {
	if name, ok := sortFieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("SortField(%q)", byte(f))
}

// List accumulates stat results for sorting.
type List struct {
	items []stat.Info
}

// Add appends info to the list.
func (l *List) Add(info stat.Info) {
	l.items = append(l.items, info)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the items in their current order.
func (l *List) Items() []stat.Info {
	return l.items
}

// Sort orders the list by field. coll is used for SortPath and may be nil
// for byte order. SortNone leaves the list untouched.
func (l *List) Sort(field SortField, reverse bool, coll *Collator) error {
	var cmp func(a, b stat.Info) int
	switch field {
	case SortNone:
		return nil
	case SortModified, SortAccessed, SortChanged, SortBorn:
		f := stat.Field(field)
		cmp = func(a, b stat.Info) int {
			return b.Time(f).Compare(a.Time(f))
		}
	case SortPath:
		cmp = func(a, b stat.Info) int {
			return coll.Compare(a.Path, b.Path)
		}
	default:
		return fmt.Errorf("cannot sort by %v", field)
	}

	if reverse {
		forward := cmp
		cmp = func(a, b stat.Info) int { return forward(b, a) }
	}
	slices.SortStableFunc(l.items, cmp)
	return nil
}
