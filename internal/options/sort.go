package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/de-mickey/lstime/internal/listing"
)

// ErrUnknownSortField is returned for a --sort value that names no field.
var ErrUnknownSortField = errors.New("unknown --sort value")

// SortFieldNames lists the long sort field names; each may be abbreviated
// to its first letter.
var SortFieldNames = []string{"mtime", "atime", "ctime", "btime", "path", "none"}

// SuggestionError wraps an error with a hint for the user
type SuggestionError struct {
	Err        error
	Suggestion string
}

func (e *SuggestionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v (%s)", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap allows errors.Is and errors.As to work
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// ParseSortField accepts a sort field name or its first letter.
func ParseSortField(s string) (listing.SortField, error) {
	for _, name := range SortFieldNames {
		if s == name || s == name[:1] {
			return listing.SortField(name[0]), nil
		}
	}
	return listing.SortNone, &SuggestionError{
		Err:        fmt.Errorf("%w: %s", ErrUnknownSortField, s),
		Suggestion: suggestSortField(s),
	}
}

func suggestSortField(s string) string {
	matches := fuzzy.Find(strings.ToLower(s), SortFieldNames)
	if len(matches) > 0 {
		return fmt.Sprintf("did you mean %q?", matches[0].Str)
	}
	return "valid: m[time], a[time], c[time], b[time], p[ath], n[one]"
}
