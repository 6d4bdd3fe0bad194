package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"srctidy/internal/driver"
	"srctidy/internal/ui"
)

type runOutcome struct {
	results []driver.Result
	summary driver.Summary
	err     error
}

// runWithUI executes the run in the background while a Bubble Tea program
// renders per-file progress from the event channel.
func runWithUI(cmd *cobra.Command, title string, files []string, opts driver.Options, teaOpts ...tea.ProgramOption) ([]driver.Result, driver.Summary, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		results, summary, err := driver.Run(cmd.Context(), files, optsCopy)
		outcomeCh <- runOutcome{results: results, summary: summary, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithOutput(os.Stdout)}, teaOpts...)...)
	_, uiErr := program.Run()
	// The model stops reading events once the user quits; keep draining so
	// the background run never blocks on a full channel.
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, outcome.summary, uiErr
	}
	return outcome.results, outcome.summary, outcome.err
}
