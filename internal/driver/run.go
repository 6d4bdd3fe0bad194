// Package driver orchestrates a normalization run: it enumerates target
// files, pushes each one through the text pipeline, and writes results back
// or hands them to the caller. Files are processed strictly one at a time,
// start to finish; the only cancellation point is between files.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"srctidy/internal/normalize"
)

// Mode selects what happens with transformed content.
type Mode uint8

const (
	// ModeWrite rewrites changed files in place.
	ModeWrite Mode = iota
	// ModeDryRun keeps transformed content in the result, files untouched.
	ModeDryRun
	// ModeCheck only reports whether a file would change.
	ModeCheck
)

// Options configures a normalization run.
type Options struct {
	Mode     Mode
	Pipeline normalize.Options
	Progress ProgressSink
	Logger   *log.Logger
	// OnResult is invoked after each file with running done/total counters.
	OnResult func(res Result, done, total int)
}

// Result captures the outcome for a single file.
type Result struct {
	Path    string
	Changed bool
	Err     error
	// Output holds the transformed content in dry-run mode.
	Output []byte
}

// Summary aggregates a finished run.
type Summary struct {
	Total   int
	Changed int
	Failed  int
	Elapsed time.Duration
	Timings Timings
}

// Run processes files in order and returns per-file results plus a summary.
// An I/O failure on any file is fatal: the run stops immediately and the
// error is returned, with remaining files left untouched. Context
// cancellation likewise aborts between files.
func Run(ctx context.Context, files []string, opts Options) ([]Result, Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	started := time.Now()
	summary := Summary{Total: len(files)}
	results := make([]Result, 0, len(files))

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(started)
			return results, summary, err
		}

		res := processFile(path, opts, &summary.Timings)
		switch {
		case res.Err != nil:
			summary.Failed++
			summary.Elapsed = time.Since(started)
			logger.Error("failed to process file", "path", path, "err", res.Err)
			emit(opts.Progress, Event{File: path, Status: StatusError, Err: res.Err})
			results = append(results, res)
			return results, summary, fmt.Errorf("%s: %w", path, res.Err)
		case res.Changed:
			summary.Changed++
			logger.Debug("normalized", "path", path)
			emit(opts.Progress, Event{File: path, Status: StatusDone, Changed: true})
		default:
			logger.Debug("already clean", "path", path)
			emit(opts.Progress, Event{File: path, Status: StatusDone})
		}

		results = append(results, res)
		if opts.OnResult != nil {
			opts.OnResult(res, i+1, len(files))
		}
	}

	summary.Elapsed = time.Since(started)
	return results, summary, nil
}

func processFile(path string, opts Options, timings *Timings) Result {
	res := Result{Path: path}

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	readStart := time.Now()
	data, err := os.ReadFile(path)
	timings.Add(StageRead, time.Since(readStart))
	if err != nil {
		res.Err = err
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageNormalize, Status: StatusWorking})
	normStart := time.Now()
	transformed := normalize.Apply(string(data), opts.Pipeline)
	timings.Add(StageNormalize, time.Since(normStart))
	res.Changed = transformed != string(data)

	switch opts.Mode {
	case ModeDryRun:
		res.Output = []byte(transformed)
	case ModeCheck:
		// nothing to do, Changed is the answer
	case ModeWrite:
		if !res.Changed {
			break
		}
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		writeStart := time.Now()
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		err = os.WriteFile(path, []byte(transformed), mode.Perm())
		timings.Add(StageWrite, time.Since(writeStart))
		if err != nil {
			res.Err = err
			res.Changed = false
		}
	}
	return res
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
