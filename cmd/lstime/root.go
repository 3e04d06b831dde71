package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-mickey/lstime/internal/log"
	"github.com/de-mickey/lstime/internal/output"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks errors caused by how lstime was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// app carries the process environment and the flag state of one run.
type app struct {
	stdin  io.Reader
	stderr io.Writer
	getenv func(string) string
	loc    *time.Location

	// actions hold the effect of every ordered flag, in command-line order
	actions    []action
	configPath string
	initConfig bool
	force      bool
}

const longHelp = `Display a file's associated timestamps.

The item format (-i) selects which timestamps to print, their order, and
the surrounding text:
  %m    mtime, last modification
  %a    atime, last access
  %c    ctime, last metadata (inode) change
  %b    btime, birth (creation)
  %r    raw path bytes
  %p    path, shell-quoted with escapes for unusual characters
  %u    path, like %p but also escaping every non-ASCII character
  %n    newline
  %z    NUL byte
  %%    literal percent sign
Any other text is copied as is.

The time format (-t) follows strftime(3), with two additions:
  %[1-9]N   1 to 9 digits of subsecond time (%N means 9)
  %:z       UTC offset as +hh:mm, as used by RFC 3339

The sort field (-s) is one of m[time], a[time], c[time], b[time], p[ath]
or n[one]. Times sort newest first and paths in locale collation order;
-r reverses either. Sorting buffers all output, so prefer "none" for large
inputs. Set LC_COLLATE=C to sort paths by raw bytes.

Flags take effect in the order given, so -e -t '%s' keeps the labelled
layout of -e with Unix seconds. Missing timestamps print as N/A. Set TZ to
format in a zone other than local time or UTC.`

func newRootCmd(a *app, prog string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           prog + " [flags] [path ...]",
		Short:         "Display a file's associated timestamps",
		Long:          longHelp,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}

	// paths after the first non-flag argument are never parsed as flags
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().SortFlags = false
	a.registerFlags(cmd.Flags())

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Version flag
	cmd.Version = versionString(prog)
	cmd.SetVersionTemplate("{{.Version}}\n")
	return cmd
}

// Execute runs lstime with the process arguments and exits.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{stdin: os.Stdin, stderr: os.Stderr, getenv: os.Getenv, loc: time.Local}
	code := a.execute(ctx, filepath.Base(os.Args[0]), os.Args[1:], os.Stdout)

	cancel()
	os.Exit(code)
}

// execute runs the root command and returns the process exit code.
func (a *app) execute(ctx context.Context, prog string, args []string, stdout io.Writer) int {
	// Create logger (stderr for diagnostics)
	logger := log.New(a.stderr, prog, false)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	out := output.New(stdout)
	ctx = output.WithPrinter(ctx, out)

	cmd := newRootCmd(a, prog)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	// items rendered before a failure are still written
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("writing output: %w", ferr)
	}
	if err == nil {
		return exitOK
	}

	logger.Errorf("%v", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(a.stderr, "Run '%s --help' for usage.\n", prog)
		return exitUsage
	}
	return exitFailure
}
