package display

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWarner struct {
	msgs []string
}

func (w *recordingWarner) Warnf(format string, args ...any) {
	w.msgs = append(w.msgs, fmt.Sprintf(format, args...))
}

func TestPathFormatterFormat(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	t.Cleanup(func() { _ = conv.Close() })
	f := NewPathFormatter(conv, nil)

	tests := []struct {
		name          string
		path          string
		escapeUnicode bool
		want          string
	}{
		{name: "plain", path: "abc_def.ghi", want: "abc_def.ghi"},
		{name: "plain with slash and colon", path: "xyz/def:ghi", want: "xyz/def:ghi"},
		{name: "empty", path: "", want: ""},
		{name: "shell meta dollar", path: "abc$def", want: "'abc$def'"},
		{name: "shell meta star", path: "abc*def", want: "'abc*def'"},
		{name: "double quote stays literal", path: `a"b`, want: `'a"b'`},
		{name: "utf-8 passed through", path: "\u03B0\u03B1\u03B2", want: "'\u03B0\u03B1\u03B2'"},
		{name: "utf-8 escaped", path: "\u03B0\u03B1\u03B2", escapeUnicode: true, want: `$'\u03B0\u03B1\u03B2'`},
		{name: "astral escaped", path: "\U0001F600", escapeUnicode: true, want: `$'\U0001F600'`},
		{name: "tab", path: "abc\tdef", want: `$'abc\tdef'`},
		{name: "single quote", path: "abc'def", want: `$'abc\'def'`},
		{name: "escape char", path: "\x1B[0m", want: `$'\E[0m'`},
		{name: "all named escapes", path: "\a\b\f\n\r\t\v\\\"", want: `$'\a\b\f\n\r\t\v\\\"'`},
		{name: "unnamed control", path: "a\x01b", want: `$'a\u0001b'`},
		{name: "delete", path: "\x7F", want: `$'\u007F'`},
		{name: "control keeps utf-8 raw", path: "\t\u03B1", want: "$'\\t\u03B1'"},
		{name: "control with utf-8 escaped", path: "\t\u03B1", escapeUnicode: true, want: `$'\t\u03B1'`},
		{name: "binary", path: "abc\xFF\xFF\xFFdef", want: `$'abc\xFF\xFF\xFFdef'`},
		{name: "valid then invalid", path: "\u03B1\xFF", want: `$'\xCE\xB1\xFF'`},
		{name: "truncated lead byte", path: "ab\xCE", want: `$'ab\xCE'`},
		{name: "binary with control", path: "\x01\xFF", want: `$'\x01\xFF'`},
		{name: "binary with quote", path: "'\xFF", want: `$'\'\xFF'`},
		{name: "binary escape request", path: "\xFF", escapeUnicode: true, want: `$'\xFF'`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := f.Format(tt.path, tt.escapeUnicode, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathFormatterProperties(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	t.Cleanup(func() { _ = conv.Close() })
	f := NewPathFormatter(conv, nil)

	t.Run("plain ascii is unchanged", func(t *testing.T) {
		t.Parallel()
		for _, p := range []string{"a", "file.txt", "dir/sub/x-y_z.tar.gz", "%@+=,:~#"} {
			got, err := f.Format(p, false, false)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	})

	t.Run("shell meta is single quoted", func(t *testing.T) {
		t.Parallel()
		for _, p := range []string{"a b", "x|y", "a&b", "c;d", "(e)", "<f>", "{g}", "h!", "`i`", "j?", "[k]"} {
			got, err := f.Format(p, false, false)
			require.NoError(t, err)
			assert.Equal(t, "'"+p+"'", got)
		}
	})

	t.Run("utf-8 bytes unchanged inside quotes", func(t *testing.T) {
		t.Parallel()
		p := "日本語/ファイル"
		got, err := f.Format(p, false, false)
		require.NoError(t, err)
		assert.Equal(t, "'"+p+"'", got)
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		t.Parallel()
		first, err := f.Format("a\tb\xFF", false, false)
		require.NoError(t, err)
		second, err := f.Format("a\tb\xFF", false, false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestPathFormatterCapacity(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	t.Cleanup(func() { _ = conv.Close() })
	f := NewPathFormatter(conv, nil)

	got, err := f.Format(strings.Repeat("a", 8181), false, false)
	require.NoError(t, err)
	assert.Len(t, got, 8181)

	_, err = f.Format(strings.Repeat("a", 8182), false, false)
	assert.ErrorIs(t, err, ErrPathTooLong)

	_, err = f.Format(strings.Repeat("a", MaxPathLen+1), false, false)
	assert.ErrorIs(t, err, ErrPathTooLong)

	// every byte escapes to four, so a short input already overflows
	_, err = f.Format(strings.Repeat("\xFF", 3000), false, false)
	assert.ErrorIs(t, err, ErrPathTooLong)
}

func TestPathFormatterDebugWarning(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	t.Cleanup(func() { _ = conv.Close() })

	t.Run("debug reports fallback", func(t *testing.T) {
		t.Parallel()
		w := &recordingWarner{}
		got, err := NewPathFormatter(conv, w).Format("a\xFF", false, true)
		require.NoError(t, err)
		assert.Equal(t, `$'a\xFF'`, got)
		require.Len(t, w.msgs, 1)
		assert.Contains(t, w.msgs[0], "utf-8 conversion failed")
	})

	t.Run("no debug stays quiet", func(t *testing.T) {
		t.Parallel()
		w := &recordingWarner{}
		got, err := NewPathFormatter(conv, w).Format("a\xFF", false, false)
		require.NoError(t, err)
		assert.Equal(t, `$'a\xFF'`, got)
		assert.Empty(t, w.msgs)
	})
}

func TestPathFormatterClosedConverter(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	require.NoError(t, conv.Close())
	f := NewPathFormatter(conv, nil)

	got, err := f.Format("plain", false, false)
	require.NoError(t, err)
	assert.Equal(t, "plain", got)

	_, err = f.Format("α", false, false)
	assert.ErrorIs(t, err, ErrConverterClosed)
}
