package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "srctidy"}
	root.PersistentFlags().String("color", "off", "")
	root.PersistentFlags().Bool("quiet", false, "")
	root.PersistentFlags().Bool("timings", false, "")
	root.PersistentFlags().String("log-level", "warn", "")
	return root
}

// captureStdout redirects os.Stdout for the duration of fn, команды пишут
// напрямую в stdout.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	runErr := fn()
	w.Close()
	os.Stdout = old
	data, readErr := io.ReadAll(r)
	if readErr != nil {
		t.Fatalf("failed to read captured output: %v", readErr)
	}
	return string(data), runErr
}

func TestCheckPrintsStageTimings(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "clean.php"), []byte("// Clean.\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	root := newTestRoot()
	root.AddCommand(checkCmd)
	root.SetArgs([]string{"check", "--timings", tmp})

	out, err := captureStdout(t, root.Execute)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(out, "read ") || !strings.Contains(out, "normalize ") {
		t.Fatalf("stage timings missing from output: %q", out)
	}
}
