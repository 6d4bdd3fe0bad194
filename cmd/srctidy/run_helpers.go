package main

import (
	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"srctidy/internal/normalize"
	"srctidy/internal/project"
	"srctidy/internal/selector"
)

// runConfig is the resolved configuration a subcommand operates with.
type runConfig struct {
	Selector     *selector.Selector
	Pipeline     normalize.Options
	ManifestPath string
}

// resolveRunConfig loads the manifest governing the target and applies the
// command-line pattern overrides. Flag-provided patterns replace the
// manifest ones entirely; mixing the two silently is harder to reason about.
func resolveRunConfig(cmd *cobra.Command, target string) (runConfig, error) {
	manifest, manifestPath, err := project.Resolve(target)
	if err != nil {
		return runConfig{}, err
	}

	include := manifest.Patterns.Include
	exclude := manifest.Patterns.Exclude
	if cmd.Flags().Changed("include") {
		include, err = cmd.Flags().GetStringArray("include")
		if err != nil {
			return runConfig{}, err
		}
	}
	if cmd.Flags().Changed("exclude") {
		exclude, err = cmd.Flags().GetStringArray("exclude")
		if err != nil {
			return runConfig{}, err
		}
	}

	sel, err := selector.New(include, exclude)
	if err != nil {
		return runConfig{}, err
	}

	pipeline := normalize.Options{RemoveMarkers: manifest.Pipeline.RemoveMarkers}
	if cmd.Flags().Changed("keep-markers") {
		keep, flagErr := cmd.Flags().GetBool("keep-markers")
		if flagErr != nil {
			return runConfig{}, flagErr
		}
		pipeline.RemoveMarkers = !keep
	}

	return runConfig{
		Selector:     sel,
		Pipeline:     pipeline,
		ManifestPath: manifestPath,
	}, nil
}

// addPatternFlags registers the selection override flags shared by the
// fix, check, and list commands.
func addPatternFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("include", nil, "override include patterns (doublestar globs)")
	cmd.Flags().StringArray("exclude", nil, "override exclude patterns (doublestar globs)")
}

// percentDone returns the completion percentage for done of total files.
func percentDone(done, total int) float64 {
	if total <= 0 {
		return 100
	}
	d, errD := safecast.Conv[uint64](done)
	t, errT := safecast.Conv[uint64](total)
	if errD != nil || errT != nil {
		return 0
	}
	return float64(d) / float64(t) * 100
}
