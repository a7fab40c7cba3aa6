// Package app wires configuration, logging, and output into the CLI command.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hollowlog/ignorewalk"
	"github.com/hollowlog/ignorewalk/internal/config"
	"github.com/hollowlog/ignorewalk/internal/logger"
	"github.com/hollowlog/ignorewalk/internal/printer"
	"github.com/hollowlog/ignorewalk/internal/summary"
)

// NewRootCmd builds the CLI command.
func NewRootCmd() *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "ignorewalk [dir]",
		Short: "List directory entries, honoring gitignore-style rules",
		Long: "ignorewalk recursively lists the entries of a directory tree while\n" +
			"honoring .gitignore, .ignore, git exclude files, and explicit override\n" +
			"patterns, the way source-control tooling does.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.RootDir = args[0]
			}
			cfg.Finalize()
			return run(cfg)
		},
	}

	cfg.AddFlags(cmd.Flags())

	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.ShowVersion {
		fmt.Printf("ignorewalk version %s\n", cfg.Version)
		return nil
	}

	// Configure color globally
	color.NoColor = !cfg.UseColors

	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	log := logger.New(os.Stderr, cfg.UseColors)
	log.SetLevel(cfg.LogLevel)
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	startTime := time.Now()

	w, err := ignorewalk.New(cfg.RootDir, walkOptionsFrom(cfg, log)...)
	if err != nil {
		return err
	}

	log.Debug("Walking directory: %s", w.Root())

	p := printer.New().
		WithOutput(output).
		WithColors(cfg.UseColors && cfg.OutputFile == "")
	if cfg.JSONOutput {
		p.WithJSON(true).WithColors(false)
	}

	for w.Next() {
		p.PrintEntry(w.Entry())
	}
	p.Finalize()

	if err := w.Err(); err != nil {
		return err
	}

	summary.DisplayResults(log, p.Count(), time.Since(startTime), cfg.Quiet)
	if cfg.ShowSkipped {
		summary.DisplaySkipped(log, w.Skipped(), os.Stderr, cfg.Quiet)
	}

	return nil
}

// walkOptionsFrom translates CLI settings into walker options.
func walkOptionsFrom(cfg *config.Config, log *logger.Logger) []ignorewalk.Option {
	opts := []ignorewalk.Option{
		ignorewalk.WithLogger(log),
		ignorewalk.WithIgnoreHidden(cfg.IgnoreHidden),
		ignorewalk.WithReadIgnoreFiles(cfg.ReadIgnoreFiles),
		ignorewalk.WithReadParentsIgnores(cfg.ReadParents),
		ignorewalk.WithReadGitIgnore(cfg.ReadGitIgnore),
		ignorewalk.WithReadGlobalGitIgnore(cfg.ReadGlobalIgnore),
		ignorewalk.WithReadGitExclude(cfg.ReadGitExclude),
		ignorewalk.WithRequireGit(cfg.RequireGit),
		ignorewalk.WithMaxDepth(cfg.MaxDepth),
		ignorewalk.WithMaxFilesize(cfg.MaxFileSize),
		ignorewalk.WithFollowLinks(cfg.FollowLinks),
		ignorewalk.WithCaseInsensitive(cfg.IgnoreCase),
		ignorewalk.WithSameFileSystem(cfg.SameFileSystem),
	}

	if len(cfg.CustomIgnores) > 0 {
		opts = append(opts, ignorewalk.WithAdditionalIgnores(cfg.CustomIgnores))
	}
	if len(cfg.IgnoreFileNames) > 0 {
		opts = append(opts, ignorewalk.WithAdditionalIgnorePaths(cfg.IgnoreFileNames))
	}
	if len(cfg.Overrides) > 0 {
		opts = append(opts, ignorewalk.WithOverrides(cfg.Overrides))
	}
	if cfg.ShowSkipped {
		opts = append(opts, ignorewalk.WithSkippedTracking(true))
	}

	return opts
}
