package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		debug bool
		log   func(l *Logger)
		want  string
	}{
		{
			name: "error",
			log:  func(l *Logger) { l.Errorf("cannot stat %s", "x") },
			want: "lstime error: cannot stat x\n",
		},
		{
			name: "warning",
			log:  func(l *Logger) { l.Warnf("fallback %d", 6) },
			want: "lstime warning: fallback 6\n",
		},
		{
			name:  "debug enabled",
			debug: true,
			log:   func(l *Logger) { l.Debugf("reading %q", "-") },
			want:  "lstime debug: reading \"-\"\n",
		},
		{
			name: "debug suppressed",
			log:  func(l *Logger) { l.Debugf("hidden") },
			want: "",
		},
		{
			name: "warnings ignore debug flag",
			log:  func(l *Logger) { l.Warnf("shown") },
			want: "lstime warning: shown\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(New(&buf, "lstime", tt.debug))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSetDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, "lstime", false)
	l.Debugf("hidden")
	l.SetDebug(true)
	l.Debugf("now visible")
	l.SetDebug(false)
	l.Debugf("hidden again")
	assert.Equal(t, "lstime debug: now visible\n", buf.String())
}

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, "lstime", false)
		ctx := WithLogger(context.Background(), l)
		assert.Same(t, l, FromContext(ctx))
	})

	t.Run("no-op when not set", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		assert.NotNil(t, l)
		assert.NotPanics(t, func() {
			l.SetDebug(true)
			l.Errorf("discarded")
			l.Debugf("discarded")
		})
	})
}
