// harness/results.go
// Package: harness
package harness

import (
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/samber/lo"

	"github.com/mwiater/msprofstat/internal/trace"
)

// summarize reduces per-run extractions to an Aggregate. Runs without a
// value are excluded rather than counted as zero.
func summarize(runs []trace.Extraction) Aggregate {
	present := lo.Filter(runs, func(r trace.Extraction, _ int) bool {
		return r.Latency.Valid
	})
	if len(present) == 0 {
		return Aggregate{}
	}

	samples := lo.Map(present, func(r trace.Extraction, _ int) float64 {
		return r.Latency.Ms
	})
	std, min, max := spread(samples)
	return Aggregate{
		Valid:      true,
		Samples:    samples,
		AvgMs:      stats.Mean(samples),
		P50Ms:      quantile(samples, 0.50),
		P90Ms:      quantile(samples, 0.90),
		StdDevMs:   std,
		MinMs:      min,
		MaxMs:      max,
		LastSource: present[len(present)-1].Source,
	}
}

// buildSuiteResult packs everything with a timestamp.
func buildSuiteResult(cfg SuiteConfig, pattern string, runs []trace.Extraction) SuiteResult {
	return SuiteResult{
		Config:      cfg,
		PatternUsed: pattern,
		Runs:        runs,
		Aggregate:   summarize(runs),
		GeneratedAt: time.Now(),
	}
}
