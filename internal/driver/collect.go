package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"srctidy/internal/selector"
)

// ErrPathNotFound is returned when the target path is neither a file nor a
// directory. The CLI maps it to its own exit code.
var ErrPathNotFound = errors.New("path is neither a file nor a directory")

// CollectTarget enumerates the files a run will process. A file target is
// returned as-is; a directory target is walked recursively and filtered
// through sel, with paths matched relative to the directory. The result is
// sorted for deterministic processing order.
func CollectTarget(ctx context.Context, target string, sel *selector.Selector) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", target, ErrPathNotFound)
		}
		return nil, err
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%q: %w", target, ErrPathNotFound)
		}
		// Явно указанный файл обрабатывается без фильтрации по паттернам.
		return []string{target}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(target, path)
		if relErr != nil {
			return relErr
		}
		if sel.Matches(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
