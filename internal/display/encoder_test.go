package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		level Level
		want  string
	}{
		{name: "plain", in: "abc", level: LevelPlain, want: "abc"},
		{name: "quoted keeps specials", in: "a b$c", level: LevelQuoted, want: "'a b$c'"},
		{name: "multibyte verbatim", in: "α", level: LevelMultibyte, want: "'α'"},
		{name: "escaped passes utf-8 bytes", in: "'α", level: LevelEscaped, want: `$'\'α'`},
		{name: "escaped control", in: "\x02", level: LevelEscaped, want: `$'\u0002'`},
		{name: "hex high bytes", in: "\xCE\xB1", level: LevelHex, want: `$'\xCE\xB1'`},
		{name: "hex control without name", in: "\x1F", level: LevelHex, want: `$'\x1F'`},
		{name: "hex named control", in: "\n", level: LevelHex, want: `$'\n'`},
		{name: "hex lowercase never used", in: "\xab", level: LevelHex, want: `$'\xAB'`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Encode([]byte(tt.in), tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCodepoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    []rune
		level Level
		want  string
	}{
		{name: "bmp", in: []rune{0x3B1}, level: LevelUnicodeEscaped, want: `$'\u03B1'`},
		{name: "astral", in: []rune{0x1F600}, level: LevelUnicodeEscaped, want: `$'\U0001F600'`},
		{name: "max bmp", in: []rune{0xFFFF}, level: LevelUnicodeEscaped, want: `$'\uFFFF'`},
		{name: "latin-1", in: []rune{0xE9}, level: LevelUnicodeEscaped, want: `$'\u00E9'`},
		{name: "ascii mixed", in: []rune{'a', '\t', 0xE9, '\''}, level: LevelUnicodeEscaped, want: `$'a\t\u00E9\''`},
		{name: "escaped level keeps rune raw", in: []rune{'\t', 0x3B1}, level: LevelEscaped, want: "$'\\tα'"},
		{name: "quoted level writes utf-8", in: []rune{0x3B1}, level: LevelMultibyte, want: "'α'"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Encode(tt.in, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeOverflow(t *testing.T) {
	t.Parallel()

	// 2046 \uHHHH escapes fill 12276 bytes, far past the bound
	cps := []rune(strings.Repeat("α", 2046))
	_, err := Encode(cps, LevelUnicodeEscaped)
	assert.ErrorIs(t, err, ErrPathTooLong)

	// 1 + 1 + 6*1363 = 8180 bytes before the last unit still fits
	fits := []rune(strings.Repeat("α", 1364))
	got, err := Encode(fits, LevelUnicodeEscaped)
	require.NoError(t, err)
	assert.Len(t, got, 2+6*1364+1)
}
