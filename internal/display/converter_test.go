package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterDecode(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	t.Cleanup(func() { _ = conv.Close() })

	tests := []struct {
		name    string
		path    string
		want    []rune
		wantErr error
	}{
		{name: "empty", path: "", want: []rune{}},
		{name: "ascii", path: "abc", want: []rune{'a', 'b', 'c'}},
		{name: "greek", path: "ΰαβ", want: []rune{0x3B0, 0x3B1, 0x3B2}},
		{name: "astral", path: "x\U0001F600", want: []rune{'x', 0x1F600}},
		{name: "lone 0xFF", path: "abc\xFF", wantErr: ErrInvalidUTF8},
		{name: "truncated lead byte", path: "ab\xCE", wantErr: ErrInvalidUTF8},
		{name: "overlong slash", path: "\xC0\xAF", wantErr: ErrInvalidUTF8},
		{name: "surrogate half", path: "\xED\xA0\x80", wantErr: ErrInvalidUTF8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := conv.Decode(tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverterCodepointCountDiffersFromBytes(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	defer conv.Close()

	path := "αβ/\U0001F600"
	cps, err := conv.Decode(path)
	require.NoError(t, err)
	assert.Len(t, cps, 4)
	assert.Len(t, path, 9)
}

func TestConverterClose(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	require.NoError(t, conv.Close())
	require.NoError(t, conv.Close())

	_, err := conv.Decode("abc")
	assert.ErrorIs(t, err, ErrConverterClosed)
}
