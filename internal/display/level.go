package display

// Level is the quoting strategy needed to display a path safely.
type Level int

const (
	LevelPlain          Level = iota + 1 // graphic ASCII, no quoting
	LevelQuoted                          // shell specials, single quotes
	LevelMultibyte                       // multi-byte UTF-8, single quotes
	LevelEscaped                         // single quote or control codes, $'...'
	LevelUnicodeEscaped                  // codepoints beyond ASCII escaped on request
	LevelHex                             // invalid UTF-8 or binary, hex escapes
)

// String returns a short name for the level, used in debug output.
func (l Level) String() string {
	switch l {
	case LevelPlain:
		return "plain"
	case LevelQuoted:
		return "quoted"
	case LevelMultibyte:
		return "multibyte"
	case LevelEscaped:
		return "escaped"
	case LevelUnicodeEscaped:
		return "unicode-escaped"
	case LevelHex:
		return "hex"
	}
	return "invalid"
}

// needsCodepoints reports whether the level relies on the path being valid UTF-8.
func (l Level) needsCodepoints() bool {
	return l >= LevelMultibyte && l <= LevelUnicodeEscaped
}

// Classify scans path once and returns the lowest level that displays it correctly.
// Bytes >= 0x80 raise the level to LevelMultibyte, or to LevelUnicodeEscaped
// when escapeUnicode is set.
func Classify(path string, escapeUnicode bool) Level {
	level := LevelPlain
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch c {
		case ' ', '"', '|', '&', ';', '(', ')', '<', '>', '{', '}',
			'!', '$', '`', '\\', '*', '?', '[', ']':
			level = max(level, LevelQuoted)
		case '\'':
			// the only printable byte that cannot appear inside '...'
			level = max(level, LevelEscaped)
		default:
			switch {
			case c < 0x20 || c == 0x7F:
				level = max(level, LevelEscaped)
			case c < 0x80:
			case escapeUnicode:
				level = max(level, LevelUnicodeEscaped)
			default:
				level = max(level, LevelMultibyte)
			}
		}
	}
	return level
}
