package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newLogger builds the run logger from the persistent --log-level flag.
func newLogger(cmd *cobra.Command) (*log.Logger, error) {
	levelName, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	return logger, nil
}
