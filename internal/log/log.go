// Package log provides context-aware diagnostics for lstime.
//
// Every message is one line on stderr in the form "<prog> <level>: <msg>".
package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

type ctxKey struct{}

// Logger writes warnings, errors and debug messages.
type Logger struct {
	out   io.Writer
	prog  string
	debug bool

	errorStyle lipgloss.Style
	warnStyle  lipgloss.Style
	debugStyle lipgloss.Style
	color      bool
}

// New creates a new logger that prefixes messages with prog.
// Debug messages are written only when debug is set. The level word is
// coloured when out is a terminal that supports it.
func New(out io.Writer, prog string, debug bool) *Logger {
	l := &Logger{out: out, prog: prog, debug: debug}

	// Detect color profile for out (handles piped output, NO_COLOR, etc.)
	if colorprofile.Detect(out, os.Environ()) >= colorprofile.ANSI {
		r := lipgloss.NewRenderer(out)
		l.color = true
		l.errorStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
		l.warnStyle = r.NewStyle().Foreground(lipgloss.Color("3"))
		l.debugStyle = r.NewStyle().Foreground(lipgloss.Color("240"))
	}
	return l
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Errorf reports a failure.
func (l *Logger) Errorf(format string, args ...any) {
	l.msg("error", l.errorStyle, format, args...)
}

// Warnf reports a recoverable problem.
func (l *Logger) Warnf(format string, args ...any) {
	l.msg("warning", l.warnStyle, format, args...)
}

// Debugf reports details useful for troubleshooting.
// Only prints when debug mode is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.msg("debug", l.debugStyle, format, args...)
	}
}

func (l *Logger) msg(level string, style lipgloss.Style, format string, args ...any) {
	if l.color {
		level = style.Render(level)
	}
	fmt.Fprintf(l.out, "%s %s: %s\n", l.prog, level, fmt.Sprintf(format, args...))
}

// SetDebug turns debug messages on or off.
func (l *Logger) SetDebug(debug bool) {
	l.debug = debug
}
