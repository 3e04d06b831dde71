// Package display renders raw path bytes as shell-safe, visually faithful text.
//
// A path is first classified into one of six display levels. The level picks
// the cheapest quoting strategy that is still correct for every byte in the
// path, and a level never goes down once raised.
//
// # Display Levels
//
//   - [LevelPlain]: graphic ASCII only, printed as is
//   - [LevelQuoted]: shell metacharacters, wrapped in '...'
//   - [LevelMultibyte]: valid multi-byte UTF-8, wrapped in '...'
//   - [LevelEscaped]: single quote or control codes, $'...' with backslash escapes
//   - [LevelUnicodeEscaped]: non-ASCII codepoints escaped as \uHHHH or \UHHHHHHHH
//   - [LevelHex]: invalid UTF-8 or binary, non-ASCII bytes escaped as \xHH
//
// Levels 3 to 5 depend on the path being valid UTF-8. [PathFormatter] checks
// this with a [Converter] and falls back to [LevelHex] when decoding fails.
//
// # Capacity
//
// Paths longer than [MaxPathLen] bytes and quoted output that would not fit
// in [MaxPathLen] bytes fail with [ErrPathTooLong]. Output is never truncated.
package display
