// Package report renders scrape results. The KEY=value lines written by
// WriteLines are parsed upstream by fixed regular expressions, so their
// order, prefixes and three-decimal formatting must not change.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mwiater/msprofstat/harness"
)

// NA is printed in place of any value that does not exist.
const NA = "NA"

// Line prefixes of the kernel latency contract.
const (
	KeyAvg     = "[KERNEL] AVG_MS"
	KeyP50     = "[KERNEL] P50_MS"
	KeyP90     = "[KERNEL] P90_MS"
	KeySamples = "[KERNEL] SAMPLES"
	KeySource  = "[KERNEL] SOURCE"
)

// FormatMs renders a millisecond value with three decimals.
func FormatMs(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// WriteLines writes the five report lines for agg. An aggregate without
// data renders NA fields and zero samples.
func WriteLines(w io.Writer, agg harness.Aggregate) error {
	avg, p50, p90, source := NA, NA, NA, NA
	if agg.Valid {
		avg, p50, p90 = FormatMs(agg.AvgMs), FormatMs(agg.P50Ms), FormatMs(agg.P90Ms)
		if agg.LastSource != "" {
			source = agg.LastSource
		}
	}
	_, err := fmt.Fprintf(w, "%s=%s\n%s=%s\n%s=%s\n%s=%d\n%s=%s\n",
		KeyAvg, avg,
		KeyP50, p50,
		KeyP90, p90,
		KeySamples, agg.Count(),
		KeySource, source,
	)
	return err
}
