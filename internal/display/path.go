package display

import (
	"errors"
	"fmt"
)

// Warner receives diagnostics about paths that fall back to hex escapes.
type Warner interface {
	Warnf(format string, args ...any)
}

// PathFormatter formats paths for display.
type PathFormatter struct {
	conv *Converter
	warn Warner
}

// NewPathFormatter creates a formatter that validates UTF-8 with conv.
// Diagnostics go to warn when debug output is requested; warn may be nil.
func NewPathFormatter(conv *Converter, warn Warner) *PathFormatter {
	return &PathFormatter{conv: conv, warn: warn}
}

// Format returns path quoted and escaped so it can be pasted into a shell
// and shows every byte unambiguously.
//
// With escapeUnicode, non-ASCII codepoints are written as \u or \U escapes
// instead of being passed through. With debug, a UTF-8 decoding failure is
// reported to the Warner; it never changes the result.
func (f *PathFormatter) Format(path string, escapeUnicode, debug bool) (string, error) {
	if len(path) > MaxPathLen {
		return "", fmt.Errorf("%w: %d bytes exceed %d", ErrPathTooLong, len(path), MaxPathLen)
	}

	level := Classify(path, escapeUnicode)

	var cps []rune
	if level.needsCodepoints() {
		decoded, err := f.conv.Decode(path)
		switch {
		case errors.Is(err, ErrConverterClosed):
			return "", err
		case err != nil:
			if debug && f.warn != nil {
				f.warn.Warnf("utf-8 conversion failed, using hex escapes: %v", err)
			}
			level = LevelHex
		default:
			cps = decoded
		}
	}

	if level == LevelUnicodeEscaped {
		return Encode(cps, level)
	}
	return Encode([]byte(path), level)
}
