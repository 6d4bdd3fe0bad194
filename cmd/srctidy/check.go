package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"srctidy/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>",
	Short: "Report files the normalizer would change",
	Long:  "Run the normalization pipeline without writing anything and list the files whose content would change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|json)")
	checkCmd.Flags().Bool("keep-markers", false, "keep // $Id$ marker comments")
	addPatternFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	target := args[0]

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch outputFormat {
	case "text", "json":
		// supported
	default:
		return fmt.Errorf("check: unsupported output format %q", outputFormat)
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

	files, err := driver.CollectTarget(cmd.Context(), target, cfg.Selector)
	if err != nil {
		return err
	}

	results, summary, err := driver.Run(cmd.Context(), files, driver.Options{
		Mode:     driver.ModeCheck,
		Pipeline: cfg.Pipeline,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	var hasChanges bool
	switch outputFormat {
	case "text":
		for _, res := range results {
			if res.Changed {
				hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
		}
	case "json":
		if err := renderCheckJSON(os.Stdout, results, &hasChanges); err != nil {
			return err
		}
	}

	if showTimings {
		printStageTimings(os.Stdout, summary.Timings)
	}

	if hasChanges {
		return fmt.Errorf("check: normalization changes required")
	}
	return nil
}

func renderCheckJSON(out io.Writer, results []driver.Result, hasChanges *bool) error {
	type jsonResult struct {
		Path    string `json:"path"`
		Changed bool   `json:"changed"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		payload = append(payload, jsonResult{Path: res.Path, Changed: res.Changed})
		if res.Changed {
			*hasChanges = true
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
