package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathsift/pathsift/internal/config"
	fsutil "github.com/pathsift/pathsift/internal/fs"
	"github.com/pathsift/pathsift/internal/render"
	"github.com/pathsift/pathsift/internal/search"
)

const version = "0.1.0"

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		num           int
		filesOnly     bool
		dirsOnly      bool
		caseSensitive bool
		ignoreCase    bool
		noParallel    bool
		long          bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:     "pathsift [flags] <query> [root]",
		Short:   "Fuzzy path finder",
		Long:    "pathsift recursively walks a directory and ranks every path\nbeneath it against a query using local-alignment fuzzy matching.",
		Example: "  pathsift kilo src --files-only -n 20\n  pathsift resume ~/Documents --dirs-only",
		Args:    cobra.RangeArgs(1, 2),
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			cfg.Query = args[0]
			if len(args) > 1 {
				cfg.Root = args[1]
			}

			// Explicit flags win over defaults-file values.
			flags := cmd.Flags()
			if flags.Changed("num") {
				cfg.Num = num
			}
			if flags.Changed("files-only") {
				cfg.FilesOnly = filesOnly
			}
			if flags.Changed("dirs-only") {
				cfg.DirsOnly = dirsOnly
			}
			if flags.Changed("case-sensitive") {
				cfg.CaseSensitive = caseSensitive
			}
			if flags.Changed("ignore-case") && ignoreCase {
				cfg.CaseSensitive = false
			}
			if flags.Changed("no-parallel") {
				cfg.Parallel = !noParallel
			}
			if flags.Changed("long") {
				cfg.Long = long
			}
			cfg.Verbose = verbose

			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.SetVersionTemplate("pathsift v{{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&configFlag, "config", "c", "", "Defaults file path")
	flags.IntVarP(&num, "num", "n", 10, "Limit number of results")
	flags.BoolVar(&filesOnly, "files-only", false, "Only show files")
	flags.BoolVar(&dirsOnly, "dirs-only", false, "Only show directories")
	flags.BoolVarP(&caseSensitive, "case-sensitive", "s", false, "Case-sensitive search")
	flags.BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive search (default)")
	flags.BoolVar(&noParallel, "no-parallel", false, "Disable parallel scoring")
	flags.BoolVarP(&long, "long", "l", false, "Table output with size and modification time")
	flags.BoolVar(&verbose, "verbose", false, "Log skipped subtrees to stderr")

	return cmd
}

func run(out io.Writer, cfg config.Config) error {
	logger := newLogger(cfg.Verbose)

	report, err := fsutil.Walk(cfg.Root)
	if err != nil {
		return fmt.Errorf("traversing directory: %w", err)
	}
	for _, diag := range report.Diagnostics {
		logger.Warn("skipping unreadable entry", "path", diag.Path, "error", diag.Err)
	}

	caseMode := search.CaseInsensitive
	if cfg.CaseSensitive {
		caseMode = search.CaseSensitive
	}

	results := search.Run(report.Entries, search.Options{
		Query:    search.Query{Text: cfg.Query, Case: caseMode},
		Filter:   search.TypeFilter{FilesOnly: cfg.FilesOnly, DirsOnly: cfg.DirsOnly},
		Limit:    cfg.Num,
		Parallel: cfg.Parallel,
	})

	opts := render.DetectTerminal()
	opts.Long = cfg.Long
	render.Results(out, results, opts)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
