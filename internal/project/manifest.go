// Package project loads the srctidy.toml manifest that configures a run:
// file selection patterns and pipeline toggles. The manifest is discovered
// by walking up from the target directory; absent files and absent sections
// fall back to built-in defaults.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest carries the on-disk configuration for a run.
type Manifest struct {
	Patterns PatternsSection `toml:"patterns"`
	Pipeline PipelineSection `toml:"pipeline"`
}

// PatternsSection lists doublestar globs for file selection.
type PatternsSection struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// PipelineSection toggles optional normalization stages.
type PipelineSection struct {
	RemoveMarkers bool `toml:"remove_markers"`
}

// Default returns the configuration used when no manifest is present.
func Default() Manifest {
	return Manifest{
		Patterns: PatternsSection{
			Include: []string{"**/*.php", "**/*.inc", "**/*.module", "**/*.install"},
			Exclude: []string{"**/vendor/**", "**/node_modules/**"},
		},
		Pipeline: PipelineSection{RemoveMarkers: true},
	}
}

// Load parses a manifest file. Sections the file does not define keep their
// default values; an explicitly empty exclude list stays empty.
func Load(path string) (Manifest, error) {
	var cfg Manifest
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	def := Default()
	if !meta.IsDefined("patterns", "include") {
		cfg.Patterns.Include = def.Patterns.Include
	}
	if !meta.IsDefined("patterns", "exclude") {
		cfg.Patterns.Exclude = def.Patterns.Exclude
	}
	if !meta.IsDefined("pipeline", "remove_markers") {
		cfg.Pipeline.RemoveMarkers = def.Pipeline.RemoveMarkers
	}
	return cfg, nil
}

// Resolve discovers and loads the manifest governing target. When target is
// a file, discovery starts from its directory. Returns the manifest path for
// reporting, or "" when defaults are in effect.
func Resolve(target string) (Manifest, string, error) {
	startDir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return Manifest{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(manifestPath)
	if err != nil {
		return Manifest{}, "", err
	}
	return cfg, manifestPath, nil
}
