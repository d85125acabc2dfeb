package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cargoport/cargoport/pkg/portfile"
)

// generateOpts holds the command-line flags for block generation.
type generateOpts struct {
	align   string    // alignment mode name
	output  string    // output file path (stdout if empty)
	refresh bool      // bypass the crate download cache
	stdin   io.Reader // source for "-" arguments, os.Stdin outside tests
}

// runGenerate reads every requested source, resolves the merged package
// set, and writes the formatted cargo.crates block.
func runGenerate(ctx context.Context, opts *generateOpts, args []string) error {
	logger := loggerFromContext(ctx)

	mode, err := portfile.ParseMode(opts.align)
	if err != nil {
		return err
	}

	sources := args
	if len(sources) == 0 {
		sources = []string{"Cargo.lock"}
	}

	prog := newProgress(logger)
	packages, err := readPackages(ctx, sources, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d crates from %d sources", len(packages), len(sources)))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := fmt.Fprintln(out, portfile.Format(packages, mode)); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote cargo.crates block to %s", opts.output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
