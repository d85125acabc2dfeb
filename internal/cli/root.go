package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cargoport/cargoport/pkg/buildinfo"
)

// Execute runs the cargoport CLI and returns an error if any command fails.
//
// The root command itself generates the cargo.crates block; the cache
// subcommand manages the crate download cache. Logging goes to stderr at
// info level, or debug level with --verbose (-v), and the logger is
// attached to the context for all commands.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &generateOpts{stdin: os.Stdin}

	root := &cobra.Command{
		Use:   "cargoport [flags] [LOCKFILE|-|crate:NAME@VERSION ...]",
		Short: "Generate the cargo.crates Portfile block from Cargo.lock files",
		Long: `cargoport merges the packages of one or more Cargo.lock files into the
cargo.crates block of a MacPorts Portfile: deduplicated, sorted, and aligned.

Each argument is a local Cargo.lock path, "-" for stdin, or
"crate:NAME@VERSION" to fetch the lockfile embedded in a published crate
from crates.io. With no arguments, ./Cargo.lock is used.

Examples:
  cargoport                              # ./Cargo.lock
  cargoport path/to/Cargo.lock --align maxlen
  cargoport crate:ripgrep@14.1.0         # lockfile from crates.io
  cargoport Cargo.lock crate:cargo-c@0.9.27 -`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVar(&opts.align, "align", "normal", "column alignment: normal, maxlen, multiline, or justify")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	root.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the crate download cache")

	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
