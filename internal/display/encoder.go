package display

import (
	"fmt"
	"unicode/utf8"
)

// unitReserve is the worst-case width of one encoded unit plus framing:
// \UHHHHHHHH, the closing quote and one spare byte.
const unitReserve = 12

const hexDigits = "0123456789ABCDEF"

// Unit is an element of the sequence handed to Encode: a raw path byte or a
// decoded codepoint.
type Unit interface {
	byte | rune
}

// Encode quotes and escapes units for display at the given level.
//
// Raw bytes are used for every level except LevelUnicodeEscaped, which needs
// codepoints. Encode never validates UTF-8 itself. It fails with
// ErrPathTooLong instead of truncating when the output would exceed MaxPathLen.
func Encode[U Unit](units []U, level Level) (string, error) {
	var zero U
	_, codepoints := any(zero).(rune)

	buf := make([]byte, 0, min(MaxPathLen, 2*len(units)+3))
	if level >= LevelEscaped {
		buf = append(buf, '$')
	}
	if level >= LevelQuoted {
		buf = append(buf, '\'')
	}

	for _, u := range units {
		if len(buf) > MaxPathLen-unitReserve {
			return "", fmt.Errorf("%w: quoted output exceeds %d bytes", ErrPathTooLong, MaxPathLen)
		}
		buf = appendUnit(buf, rune(u), codepoints, level)
	}

	if level >= LevelQuoted {
		buf = append(buf, '\'')
	}
	return string(buf), nil
}

func appendUnit(buf []byte, cp rune, codepoint bool, level Level) []byte {
	if level <= LevelMultibyte {
		return appendRaw(buf, cp, codepoint)
	}

	if esc, ok := namedEscape(cp); ok {
		return append(buf, '\\', esc)
	}
	if cp >= 0x20 && cp <= 0x7E {
		return append(buf, byte(cp))
	}

	switch level {
	case LevelEscaped:
		if cp <= 0x7F {
			return appendUnicodeEscape(buf, cp)
		}
		// multi-byte UTF-8 is trusted to render
		return appendRaw(buf, cp, codepoint)
	case LevelUnicodeEscaped:
		return appendUnicodeEscape(buf, cp)
	default:
		if codepoint && cp > 0xFF {
			// not produced by PathFormatter; escape the UTF-8 bytes of the rune
			for _, b := range utf8.AppendRune(nil, cp) {
				buf = appendHexEscape(buf, b)
			}
			return buf
		}
		return appendHexEscape(buf, byte(cp))
	}
}

func namedEscape(cp rune) (byte, bool) {
	switch cp {
	case '\a':
		return 'a', true
	case '\b':
		return 'b', true
	case 0x1B:
		return 'E', true
	case '\f':
		return 'f', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '\t':
		return 't', true
	case '\v':
		return 'v', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	}
	return 0, false
}

func appendRaw(buf []byte, cp rune, codepoint bool) []byte {
	if codepoint {
		return utf8.AppendRune(buf, cp)
	}
	return append(buf, byte(cp))
}

func appendUnicodeEscape(buf []byte, cp rune) []byte {
	if cp <= 0xFFFF {
		return fmt.Appendf(buf, `\u%04X`, cp)
	}
	return fmt.Appendf(buf, `\U%08X`, cp)
}

func appendHexEscape(buf []byte, b byte) []byte {
	return append(buf, '\\', 'x', hexDigits[b>>4], hexDigits[b&0x0F])
}
