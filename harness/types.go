// harness/types.go
// Package: harness
package harness

import (
	"time"

	"github.com/mwiater/msprofstat/internal/trace"
)

// SuiteConfig configures one scrape over a benchmarking session.
type SuiteConfig struct {
	// Root is the msprof output root holding run_NNN directories or
	// trace files directly.
	Root string `json:"root"`

	// Pattern is the case-insensitive row filter. An empty pattern
	// matches every row; one that fails to compile falls back to
	// trace.DefaultPattern.
	Pattern string `json:"pattern"`

	// RunPrefix names numbered run directories (default "run_").
	RunPrefix string `json:"run_prefix"`
}

// Aggregate summarizes the per-run latencies of a session. When Valid is
// false there was no data and every statistic is meaningless.
type Aggregate struct {
	Valid   bool      `json:"valid"`
	Samples []float64 `json:"samples"` // discovery order, present runs only

	AvgMs    float64 `json:"avg_ms"`
	P50Ms    float64 `json:"p50_ms"`
	P90Ms    float64 `json:"p90_ms"`
	StdDevMs float64 `json:"stddev_ms"`
	MinMs    float64 `json:"min_ms"`
	MaxMs    float64 `json:"max_ms"`

	// LastSource is the trace file behind the last run that produced a
	// value. It is provenance for traceability, not the median run.
	LastSource string `json:"last_source"`
}

// Count is the number of samples.
func (a Aggregate) Count() int { return len(a.Samples) }

// SuiteResult is the top-level artifact returned by RunScrapeSuite.
type SuiteResult struct {
	Config      SuiteConfig        `json:"config"`
	PatternUsed string             `json:"pattern_used"`
	RootMissing bool               `json:"root_missing"`
	Runs        []trace.Extraction `json:"runs"`
	Aggregate   Aggregate          `json:"aggregate"`
	GeneratedAt time.Time          `json:"generated_at"`
}
