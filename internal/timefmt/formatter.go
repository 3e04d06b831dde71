package timefmt

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// NotAvailable is printed in place of an unset timestamp.
const NotAvailable = "N/A"

// Range of seconds whose calendar year fits a signed 32-bit tm_year.
const (
	minCalendarSec = -67768040609740800
	maxCalendarSec = 67768036191676799
)

// Formatter renders timestamps in UTC or in a configured local zone.
type Formatter struct {
	local *time.Location
}

// NewFormatter returns a Formatter whose local zone is loc.
// A nil loc means time.Local.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{local: loc}
}

// Format renders ts using template. Unset timestamps render as "N/A".
func (f *Formatter) Format(ts Timestamp, template string, useUTC bool) (string, error) {
	if !ts.IsSet() {
		return NotAvailable, nil
	}

	t, err := f.calendar(ts, useUTC)
	if err != nil {
		return "", err
	}

	expanded, err := Expand(template, ts.Nsec, strftime.Format("%z", t))
	if err != nil {
		return "", err
	}

	out := strftime.Format(expanded, t)
	if len(out) >= MaxTimeLen {
		return "", fmt.Errorf("%w: result exceeds %d bytes", ErrTemplateBufferExhausted, MaxTimeLen-1)
	}
	return out, nil
}

func (f *Formatter) calendar(ts Timestamp, useUTC bool) (time.Time, error) {
	if ts.Sec < minCalendarSec || ts.Sec > maxCalendarSec {
		return time.Time{}, fmt.Errorf("%w: %d seconds", ErrInvalidCalendarValue, ts.Sec)
	}
	if ts.Nsec < 0 || ts.Nsec > 999_999_999 {
		return time.Time{}, fmt.Errorf("%w: nanoseconds %d out of range", ErrInvalidCalendarValue, ts.Nsec)
	}

	t := time.Unix(ts.Sec, ts.Nsec)
	if useUTC {
		return t.UTC(), nil
	}
	return t.In(f.local), nil
}
