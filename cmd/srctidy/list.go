package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"srctidy/internal/driver"
)

var listCmd = &cobra.Command{
	Use:   "list [flags] <file|directory>",
	Short: "Print the files a run would process",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	addPatternFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	target := args[0]

	cfg, err := resolveRunConfig(cmd, target)
	if err != nil {
		return err
	}

	files, err := driver.CollectTarget(cmd.Context(), target, cfg.Selector)
	if err != nil {
		return err
	}
	for _, file := range files {
		fmt.Fprintln(os.Stdout, file)
	}
	return nil
}
