package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/de-mickey/lstime/internal/config"
	"github.com/de-mickey/lstime/internal/display"
	"github.com/de-mickey/lstime/internal/format"
	"github.com/de-mickey/lstime/internal/listing"
	"github.com/de-mickey/lstime/internal/log"
	"github.com/de-mickey/lstime/internal/options"
	"github.com/de-mickey/lstime/internal/output"
	"github.com/de-mickey/lstime/internal/stat"
	"github.com/de-mickey/lstime/internal/timefmt"
)

func (a *app) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if a.initConfig {
		path, err := config.Init(a.configPath, a.force)
		if err != nil {
			return err
		}
		out.Printf("Created config file: %s\n", path)
		return nil
	}

	opts, err := a.resolveOptions()
	if err != nil {
		return err
	}
	logger.SetDebug(opts.Debug)

	conv := display.NewConverter()
	defer conv.Close()

	paths := display.NewPathFormatter(conv, logger)
	r := &format.Renderer{
		Paths:      paths,
		Times:      timefmt.NewFormatter(a.loc),
		ItemFormat: opts.ItemFormat,
		TimeFormat: opts.TimeFormat,
		UTC:        opts.UTC,
		Debug:      opts.Debug,
	}

	var list listing.List
	visit := func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := stat.Path(path, opts.Stat)
		if err != nil {
			return statError(paths, path, err)
		}
		// sort=none streams each item as soon as it is known
		if opts.Sort == listing.SortNone {
			return r.Write(out, info)
		}
		list.Add(info)
		return nil
	}

	if opts.InputFile != "" {
		if err := a.readInputFile(ctx, opts, visit); err != nil {
			return err
		}
	}
	for _, path := range args {
		if err := visit(path); err != nil {
			return err
		}
	}

	if err := list.Sort(opts.Sort, opts.Reverse, listing.NewCollator(a.getenv)); err != nil {
		return err
	}
	logger.Debugf("sorted %d items by %v", list.Len(), opts.Sort)
	for _, info := range list.Items() {
		if err := r.Write(out, info); err != nil {
			return err
		}
	}
	return nil
}

// resolveOptions layers defaults, the config file and the command-line
// flags, then checks the item format.
func (a *app) resolveOptions() (options.Options, error) {
	opts := options.Default()

	path, explicit, err := config.Path(a.configPath, a.getenv)
	if err != nil {
		return opts, err
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return opts, &usageError{err: err}
		}
		return opts, err
	}
	if err := cfg.Apply(&opts); err != nil {
		return opts, &usageError{err: err}
	}

	for _, apply := range a.actions {
		if err := apply(&opts); err != nil {
			var serr *options.SuggestionError
			if errors.As(err, &serr) {
				return opts, &usageError{err: err}
			}
			return opts, err
		}
	}

	if err := format.ValidateItemFormat(opts.ItemFormat); err != nil {
		return opts, &usageError{err: err}
	}
	return opts, nil
}

func (a *app) readInputFile(ctx context.Context, opts options.Options, visit func(string) error) error {
	logger := log.FromContext(ctx)

	var in io.Reader
	if opts.InputFile == "-" {
		in = a.stdin
		if f, ok := a.stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			logger.Debugf("reading paths from the terminal, end input with Ctrl-D")
		}
	} else {
		f, err := os.Open(opts.InputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return listing.ReadPaths(in, opts.Delim, visit)
}

// statError reports a stat failure with the path quoted for display.
func statError(paths *display.PathFormatter, path string, err error) error {
	shown, ferr := paths.Format(path, false, false)
	if ferr != nil {
		shown = "(unprintable path)"
	}
	var perr *os.PathError
	if errors.As(err, &perr) {
		err = perr.Err
	}
	return fmt.Errorf("cannot stat %s: %w", shown, err)
}
