package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"srctidy/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory>",
	Short: "Normalize whitespace and comments in a file or directory",
	Long:  "Apply the normalization pipeline to every selected file, rewriting files in place or printing the would-be result with --dry-run.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "print transformed content instead of writing files")
	fixCmd.Flags().Bool("keep-markers", false, "keep // $Id$ marker comments")
	fixCmd.Flags().Bool("ui", false, "show interactive progress for directory runs")
	addPatternFlags(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	target := args[0]

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	useUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return err
	}
	if dryRun && useUI {
		return fmt.Errorf("fix: --dry-run cannot be combined with --ui")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	if err := applyColorMode(cmd); err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	cfg, err := resolveRunConfig(cmd, target)
	if err != nil {
		return err
	}
	if cfg.ManifestPath != "" {
		logger.Debug("using manifest", "path", cfg.ManifestPath)
	}

	files, err := driver.CollectTarget(cmd.Context(), target, cfg.Selector)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stdout, "no files selected")
		}
		return nil
	}

	opts := driver.Options{
		Mode:     driver.ModeWrite,
		Pipeline: cfg.Pipeline,
		Logger:   logger,
	}
	if dryRun {
		opts.Mode = driver.ModeDryRun
	} else if !quiet && !useUI {
		opts.OnResult = func(_ driver.Result, done, total int) {
			fmt.Fprintf(os.Stdout, "%d/%d files processed (%.2f%%).\n", done, total, percentDone(done, total))
		}
	}

	var results []driver.Result
	var summary driver.Summary
	if useUI {
		results, summary, err = runWithUI(cmd, "srctidy fix", files, opts)
	} else {
		results, summary, err = driver.Run(cmd.Context(), files, opts)
	}
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	if dryRun {
		renderDryRun(os.Stdout, results)
	}

	if !quiet {
		printRunSummary(os.Stdout, summary)
	}
	if showTimings {
		printStageTimings(os.Stdout, summary.Timings)
	}
	return nil
}
