package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/de-mickey/lstime/internal/display"
	"github.com/de-mickey/lstime/internal/stat"
	"github.com/de-mickey/lstime/internal/timefmt"
)

// DefaultItemFormat is the default template for one output item
const DefaultItemFormat = "%m  %a  %p%n"

// ValidDirectives lists all supported item directives
var ValidDirectives = []string{"%m", "%a", "%c", "%b", "%p", "%u", "%r", "%n", "%z", "%%"}

// ErrUnknownDirective is returned for a directive not in ValidDirectives.
var ErrUnknownDirective = errors.New("unrecognized item format directive")

// ValidateItemFormat checks that every directive in format is recognized
func ValidateItemFormat(format string) error {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i == len(format) || !isValidDirective(format[i]) {
			return unknownDirective(format, i)
		}
	}
	return nil
}

func isValidDirective(c byte) bool {
	return strings.IndexByte("macbpurnz%", c) >= 0
}

func unknownDirective(format string, i int) error {
	directive := "%"
	if i < len(format) {
		directive = format[i-1 : i+1]
	}
	return fmt.Errorf("%w %q in format %q (valid: %s)",
		ErrUnknownDirective, directive, format, strings.Join(ValidDirectives, ", "))
}

// Renderer expands an item template for each file
type Renderer struct {
	Paths      *display.PathFormatter
	Times      *timefmt.Formatter
	ItemFormat string
	TimeFormat string
	UTC        bool
	Debug      bool
}

// Render returns the expanded item for info.
func (r *Renderer) Render(info stat.Info) ([]byte, error) {
	var buf bytes.Buffer
	format := r.ItemFormat

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			buf.WriteByte(c)
			continue
		}
		i++
		if i == len(format) {
			return nil, unknownDirective(format, i)
		}

		switch c = format[i]; c {
		case 'm', 'a', 'c', 'b':
			s, err := r.Times.Format(info.Time(stat.Field(c)), r.TimeFormat, r.UTC)
			if err != nil {
				return nil, fmt.Errorf("formatting %%%c time: %w", c, err)
			}
			buf.WriteString(s)
		case 'p', 'u':
			s, err := r.Paths.Format(info.Path, c == 'u', r.Debug)
			if err != nil {
				return nil, err
			}
			buf.WriteString(s)
		case 'r':
			buf.WriteString(info.Path)
		case 'n':
			buf.WriteByte('\n')
		case 'z':
			buf.WriteByte(0)
		case '%':
			buf.WriteByte('%')
		default:
			return nil, unknownDirective(format, i)
		}
	}
	return buf.Bytes(), nil
}

// Write renders info and writes it to w in a single call.
func (r *Renderer) Write(w io.Writer, info stat.Info) error {
	item, err := r.Render(info)
	if err != nil {
		return err
	}
	_, err = w.Write(item)
	return err
}
