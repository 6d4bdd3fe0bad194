package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"srctidy/internal/driver"
)

var (
	dryRunHeaderColor = color.New(color.Bold)
	summaryColor      = color.New(color.FgGreen)
)

// renderDryRun prints the would-be content of every processed file: a
// header, an underline of dashes as wide as the header in codepoints, the
// transformed content, and a blank separator line. Failed files are skipped
// here and reported on stderr by the caller.
func renderDryRun(out io.Writer, results []driver.Result) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		header := fmt.Sprintf("File: %s", res.Path)
		fmt.Fprintln(out, dryRunHeaderColor.Sprint(header))
		fmt.Fprintln(out, strings.Repeat("-", utf8.RuneCountInString(header)))
		fmt.Fprint(out, string(res.Output))
		fmt.Fprintln(out)
	}
}

// printRunSummary reports the elapsed wall time in seconds and minutes.
func printRunSummary(out io.Writer, summary driver.Summary) {
	secs := summary.Elapsed.Seconds()
	fmt.Fprintln(out, summaryColor.Sprintf(
		"Processed %d files (%d changed) in %.2f seconds (%.2f minutes).",
		summary.Total, summary.Changed, secs, secs/60,
	))
}
