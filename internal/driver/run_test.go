package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"srctidy/internal/normalize"
	"srctidy/internal/selector"
)

func newSelector(t *testing.T) *selector.Selector {
	t.Helper()
	sel, err := selector.New(
		[]string{"**/*.php", "**/*.inc"},
		[]string{"**/vendor/**"},
	)
	if err != nil {
		t.Fatalf("selector.New returned error: %v", err)
	}
	return sel
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestCollectTargetDirectory(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.php"), "<?php\n")
	writeFile(t, filepath.Join(tmp, "sub", "b.inc"), "<?php\n")
	writeFile(t, filepath.Join(tmp, "vendor", "c.php"), "<?php\n")
	writeFile(t, filepath.Join(tmp, "readme.txt"), "text\n")

	files, err := CollectTarget(context.Background(), tmp, newSelector(t))
	if err != nil {
		t.Fatalf("CollectTarget returned error: %v", err)
	}
	want := []string{
		filepath.Join(tmp, "a.php"),
		filepath.Join(tmp, "sub", "b.inc"),
	}
	if len(files) != len(want) {
		t.Fatalf("collected %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("collected %v, want %v", files, want)
		}
	}
}

func TestCollectTargetSingleFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "standalone.txt")
	writeFile(t, path, "anything\n")

	files, err := CollectTarget(context.Background(), path, newSelector(t))
	if err != nil {
		t.Fatalf("CollectTarget returned error: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("collected %v, want just %q", files, path)
	}
}

func TestCollectTargetMissingPath(t *testing.T) {
	_, err := CollectTarget(context.Background(), filepath.Join(t.TempDir(), "nope"), newSelector(t))
	if err == nil {
		t.Fatalf("expected error for missing path")
	}
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("expected ErrPathNotFound, got %v", err)
	}
}

func TestRunRewritesInPlace(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "f.php")
	writeFile(t, path, "function f() {\r\n  return 1;  \r\n}\r\n\r\n\r\n")

	results, summary, err := Run(context.Background(), []string{path}, Options{
		Mode:     ModeWrite,
		Pipeline: normalize.Options{RemoveMarkers: true},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 1 || !results[0].Changed {
		t.Fatalf("expected one changed result, got %+v", results)
	}
	if summary.Changed != 1 || summary.Total != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("failed to read back: %v", readErr)
	}
	want := "function f() {\n  return 1;\n}\n"
	if string(data) != want {
		t.Fatalf("file content = %q, want %q", string(data), want)
	}
}

func TestRunDryRunLeavesFileUntouched(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "f.php")
	original := "// hello\r\n"
	writeFile(t, path, original)

	results, _, err := Run(context.Background(), []string{path}, Options{Mode: ModeDryRun})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if want := "// Hello.\n"; string(results[0].Output) != want {
		t.Fatalf("Output = %q, want %q", string(results[0].Output), want)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("failed to read back: %v", readErr)
	}
	if string(data) != original {
		t.Fatalf("dry run modified the file: %q", string(data))
	}
}

func TestRunCheckReportsWithoutWriting(t *testing.T) {
	tmp := t.TempDir()
	dirty := filepath.Join(tmp, "dirty.php")
	clean := filepath.Join(tmp, "clean.php")
	writeFile(t, dirty, "x  \n")
	writeFile(t, clean, "x\n")

	results, summary, err := Run(context.Background(), []string{clean, dirty}, Options{Mode: ModeCheck})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if results[0].Changed || !results[1].Changed {
		t.Fatalf("unexpected changed flags: %+v", results)
	}
	if summary.Changed != 1 {
		t.Fatalf("summary.Changed = %d, want 1", summary.Changed)
	}

	data, readErr := os.ReadFile(dirty)
	if readErr != nil {
		t.Fatalf("failed to read back: %v", readErr)
	}
	if string(data) != "x  \n" {
		t.Fatalf("check mode modified the file: %q", string(data))
	}
}

func TestRunReportsProgressPerFile(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a.php")
	b := filepath.Join(tmp, "b.php")
	writeFile(t, a, "x\n")
	writeFile(t, b, "y\n")

	var calls []int
	_, _, err := Run(context.Background(), []string{a, b}, Options{
		Mode: ModeCheck,
		OnResult: func(_ Result, done, total int) {
			if total != 2 {
				t.Fatalf("total = %d, want 2", total)
			}
			calls = append(calls, done)
		},
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("OnResult calls = %v, want [1 2]", calls)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Run(ctx, []string{"whatever.php"}, Options{Mode: ModeCheck})
	if err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRunStopsOnFileError(t *testing.T) {
	tmp := t.TempDir()
	missing := filepath.Join(tmp, "gone.php")
	dirty := filepath.Join(tmp, "dirty.php")
	writeFile(t, dirty, "x  \n")

	results, summary, err := Run(context.Background(), []string{missing, dirty}, Options{Mode: ModeWrite})
	if err == nil {
		t.Fatalf("expected fatal error for unreadable file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected only the failing result, got %+v", results)
	}
	if summary.Failed != 1 {
		t.Fatalf("summary.Failed = %d, want 1", summary.Failed)
	}

	// the failure must terminate the run before the next file is touched
	data, readErr := os.ReadFile(dirty)
	if readErr != nil {
		t.Fatalf("failed to read back: %v", readErr)
	}
	if string(data) != "x  \n" {
		t.Fatalf("run continued past the failure, file = %q", string(data))
	}
}
