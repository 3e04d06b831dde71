package display

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// MaxPathLen bounds path length, decoded codepoints and quoted output.
const MaxPathLen = 8192

// Converter validates UTF-8 paths and decodes them into codepoints.
//
// It is the counterpart of an iconv UTF-8 to UTF-32 handle: create one with
// NewConverter when the program starts and release it with Close. A Converter
// keeps no per-call state, so one value may be shared by concurrent callers.
type Converter struct {
	utf32  encoding.Encoding
	closed atomic.Bool
}

// NewConverter creates a converter ready for use.
func NewConverter() *Converter {
	return &Converter{
		// no BOM: output is a bare sequence of 4-byte units
		utf32: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	}
}

// Decode validates path as UTF-8 and returns its codepoints.
// It fails with ErrInvalidUTF8 on malformed or truncated sequences and with
// ErrPathTooLong when the result would exceed MaxPathLen codepoints.
func (c *Converter) Decode(path string) ([]rune, error) {
	if c.closed.Load() {
		return nil, ErrConverterClosed
	}

	t := transform.Chain(encoding.UTF8Validator, c.utf32.NewEncoder())
	raw, _, err := transform.Bytes(t, []byte(path))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, ErrInvalidUTF8
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: incomplete UTF-32 output (%d bytes)", ErrInvalidUTF8, len(raw))
	}

	n := len(raw) / 4
	if n > MaxPathLen {
		return nil, fmt.Errorf("%w: %d codepoints exceed %d", ErrPathTooLong, n, MaxPathLen)
	}

	cps := make([]rune, n)
	for i := range cps {
		cps[i] = rune(binary.BigEndian.Uint32(raw[i*4:]))
	}
	return cps, nil
}

// Close releases the converter. Decode fails with ErrConverterClosed afterwards.
// Closing twice is harmless.
func (c *Converter) Close() error {
	c.closed.Store(true)
	return nil
}
