package listing

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares paths in locale order. The zero value compares bytes.
type Collator struct {
	coll *collate.Collator
}

// NewCollator picks the collation locale from the environment, read
// through getenv: LC_ALL, then LC_COLLATE, then LANG.
func NewCollator(getenv func(string) string) *Collator {
	var locale string
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if locale = getenv(key); locale != "" {
			break
		}
	}

	tag, ok := parseLocale(locale)
	if !ok {
		return &Collator{}
	}
	return &Collator{coll: collate.New(tag)}
}

// parseLocale converts a POSIX locale name like "de_DE.UTF-8@euro" into a
// language tag. It reports false for byte-order locales.
func parseLocale(locale string) (language.Tag, bool) {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Compare returns -1, 0 or +1 as a sorts before, with or after b.
func (c *Collator) Compare(a, b string) int {
	if c == nil || c.coll == nil {
		return strings.Compare(a, b)
	}
	if r := c.coll.CompareString(a, b); r != 0 {
		return r
	}
	// strings equal under collation keep a stable byte order
	return strings.Compare(a, b)
}
