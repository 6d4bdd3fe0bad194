package main

import (
	"fmt"
	"io"
	"time"

	"srctidy/internal/driver"
)

func printStageTimings(out io.Writer, timings driver.Timings) {
	if out == nil {
		return
	}
	if timings.Has(driver.StageRead) {
		fmt.Fprintf(out, "read %.1f ms\n", toMillis(timings.Duration(driver.StageRead)))
	}
	if timings.Has(driver.StageNormalize) {
		fmt.Fprintf(out, "normalize %.1f ms\n", toMillis(timings.Duration(driver.StageNormalize)))
	}
	if timings.Has(driver.StageWrite) {
		fmt.Fprintf(out, "write %.1f ms\n", toMillis(timings.Duration(driver.StageWrite)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
