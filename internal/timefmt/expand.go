package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxTimeLen bounds both an expanded template and a formatted timestamp,
// terminator included.
const MaxTimeLen = 1024

const (
	conversionFlags = "_-0^#"
	maxSubsecDigits = 9
)

type directiveKind int

const (
	directiveOther directiveKind = iota
	directiveSubsec
	directiveColonZone
	directiveUnterminated
)

// directive is one %-conversion located in a template.
type directive struct {
	kind  directiveKind
	width string
	end   int
}

// scanDirective parses the conversion starting at s[start] == '%'.
// Grammar: % flags* digits* [EO]? letter
func scanDirective(s string, start int) directive {
	i := start + 1
	for i < len(s) && strings.IndexByte(conversionFlags, s[i]) >= 0 {
		i++
	}
	widthStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	width := s[widthStart:i]
	if i < len(s) && (s[i] == 'E' || s[i] == 'O') {
		i++
	}
	if i >= len(s) {
		return directive{kind: directiveUnterminated, end: len(s)}
	}

	letter := s[i]
	i++
	switch {
	case letter == 'N':
		return directive{kind: directiveSubsec, width: width, end: i}
	case letter == ':' && i < len(s) && s[i] == 'z':
		return directive{kind: directiveColonZone, end: i + 1}
	default:
		return directive{kind: directiveOther, end: i}
	}
}

// subsecDigits returns the leading digits of the zero-padded nanosecond
// value. Only a single-digit width selects a precision; anything else means 9.
func subsecDigits(nsec int64, width string) string {
	n := maxSubsecDigits
	if len(width) == 1 {
		n = int(width[0] - '0')
	}
	return fmt.Sprintf("%09d", nsec)[:n]
}

// Expand rewrites the %N and %:z extensions in template into literal text,
// leaving every other directive for strftime. offset is the five-character
// numeric zone ("+hhmm") of the instant being formatted.
func Expand(template string, nsec int64, offset string) (string, error) {
	if nsec < 0 || nsec > 999_999_999 {
		return "", fmt.Errorf("%w: nanoseconds %d out of range", ErrInvalidCalendarValue, nsec)
	}

	var b strings.Builder
	emit := func(s string) error {
		if b.Len()+len(s) > MaxTimeLen-1 {
			return fmt.Errorf("%w: expanded template exceeds %d bytes", ErrTemplateBufferExhausted, MaxTimeLen-1)
		}
		b.WriteString(s)
		return nil
	}

	for i := 0; i < len(template); {
		if template[i] != '%' {
			if err := emit(template[i : i+1]); err != nil {
				return "", err
			}
			i++
			continue
		}

		d := scanDirective(template, i)
		var piece string
		switch d.kind {
		case directiveSubsec:
			piece = subsecDigits(nsec, d.width)
		case directiveColonZone:
			if len(offset) != 5 {
				return "", fmt.Errorf("%w: unexpected UTC offset %s", ErrInvalidCalendarValue, strconv.Quote(offset))
			}
			piece = offset[:3] + ":" + offset[3:]
		default:
			piece = template[i:d.end]
		}
		if err := emit(piece); err != nil {
			return "", err
		}
		i = d.end
	}
	return b.String(), nil
}
