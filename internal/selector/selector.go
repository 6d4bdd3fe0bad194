// Package selector decides which files take part in a normalization run.
// Paths are matched with doublestar globs against the walk root; exclusion
// always wins over inclusion.
package selector

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Selector holds validated include and exclude patterns.
type Selector struct {
	include []string
	exclude []string
}

// New validates every pattern up front and builds a Selector. A selector
// with no include patterns matches nothing.
func New(include, exclude []string) (*Selector, error) {
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("selector: invalid include pattern %q", pattern)
		}
	}
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("selector: invalid exclude pattern %q", pattern)
		}
	}
	return &Selector{include: include, exclude: exclude}, nil
}

// Matches reports whether rel matches at least one include pattern and no
// exclude pattern. rel is relative to the walk root; separators are
// normalized so Windows paths match the same globs.
func (s *Selector) Matches(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return false
		}
	}
	for _, pattern := range s.include {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Include returns the include patterns. Exposed for the list command output.
func (s *Selector) Include() []string { return s.include }

// Exclude returns the exclude patterns.
func (s *Selector) Exclude() []string { return s.exclude }
