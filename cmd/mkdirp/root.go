package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp"
	"github.com/arthur-debert/mkdirp/pkg/mkdirp/filesystem"
)

const (
	exitSuccess = 0
	exitFailure = -1
)

// errNoTarget is returned when neither -p nor a positional path was given.
var errNoTarget = errors.New("no directory given")

type options struct {
	mode     string
	parents  []string
	verbose  bool
	dryRun   bool
	logLevel string
}

// newRootCommand builds the mkdirp command writing notifications to stdout
// and diagnostics to stderr.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mkdirp [-mvph?] [dir...]",
		Short: "Create directories, optionally with their parents",
		Long: `mkdirp creates a directory. With -p it creates every missing parent
directory first, walking the path from the root to the leaf. With -m every
directory it creates gets the same owner permissions.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), cmd, opts, args, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.mode, "mode", "m", "", "set permission mode: r, w, x, rw or rwx (owner only)")
	flags.StringArrayVarP(&opts.parents, "parents", "p", nil, "create `PATH`, making parent directories as needed (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print a message for each created directory")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "report what would be created without touching the filesystem")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "diagnostic log level (trace, debug, info, warn, error)")

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of mkdirp`,
		Args:  cobra.NoArgs,
		// "mkdirp -v version" still prints the version.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mkdirp version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func runCreate(ctx context.Context, cmd *cobra.Command, opts *options, args []string, stderr io.Writer) error {
	logger, err := mkdirp.NewLoggerFromString(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	cfg := mkdirp.DefaultConfig()
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mkdirp.ParseMode(opts.mode)
		if !cfg.Mode.Recognized {
			logger.Warn().Str("mode", opts.mode).Msg("unrecognized mode, using rwx")
		}
	}
	cfg.Parents = len(opts.parents) > 0
	cfg.Verbose = opts.verbose
	cfg.DryRun = opts.dryRun

	var targets []string
	switch {
	case cfg.Parents:
		targets = opts.parents
		if len(args) > 0 {
			logger.Debug().Strs("ignored", args).Msg("positional arguments are ignored with -p")
		}
	case len(args) > 0:
		targets = args[len(args)-1:]
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Expected at least one of the following arguments:\n%s", cmd.UsageString())
		return errNoTarget
	}

	if cfg.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "DRY RUN: no directories will be changed")
	}

	creator := mkdirp.NewPathCreator(filesystem.NewOSFileSystem(), cfg, mkdirp.WithLogger(logger))
	subscribePrinter(creator.Events(), cmd.OutOrStdout())

	result, err := creator.EnsureAll(ctx, targets)
	if err != nil {
		return err
	}
	logger.Debug().Int("created", len(result.Created)).Int("existing", len(result.Existing)).Msg("done")
	return nil
}

// run executes mkdirp with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(normalizeArgs(args, func(unknown byte) {
		reportUnknownOption(stdout, cmd, unknown)
	}))

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errNoTarget) {
			fmt.Fprintln(stderr, err)
		}
		return exitFailure
	}
	return exitSuccess
}
