// Package output provides context-aware primary output for lstime.
// Stdout carries the rendered items, byte for byte.
// Stderr (via log package) is used for diagnostics.
package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes primary output through a buffer.
// Call Flush before exit.
type Printer struct {
	buf *bufio.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{buf: bufio.NewWriter(w)}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Write buffers raw bytes. Errors are sticky and also reported by Flush.
func (p *Printer) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.buf, format, a...)
}

// Flush writes any buffered output to the underlying writer.
func (p *Printer) Flush() error {
	return p.buf.Flush()
}
