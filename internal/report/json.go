// internal/report/json.go
package report

import (
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/mwiater/msprofstat/harness"
	"github.com/mwiater/msprofstat/internal/trace"
)

// summaryDoc is the JSON form of a scrape. Statistics are null when there
// is no data so that a missing measurement never reads as 0 ms.
type summaryDoc struct {
	Root        string    `json:"root"`
	Pattern     string    `json:"pattern"`
	RootMissing bool      `json:"root_missing"`
	Samples     []float64 `json:"samples"`
	Count       int       `json:"sample_count"`
	AvgMs       *float64  `json:"avg_ms"`
	P50Ms       *float64  `json:"p50_ms"`
	P90Ms       *float64  `json:"p90_ms"`
	StdDevMs    *float64  `json:"stddev_ms"`
	MinMs       *float64  `json:"min_ms"`
	MaxMs       *float64  `json:"max_ms"`
	Source      *string   `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
}

// runDoc is one row of the per-run JSON listing.
type runDoc struct {
	Run        string       `json:"run"`
	Path       string       `json:"path"`
	Ms         *float64     `json:"ms"`
	Match      string       `json:"match,omitempty"`
	Column     string       `json:"column,omitempty"`
	Source     string       `json:"source,omitempty"`
	Candidates int          `json:"candidates"`
	Skips      []trace.Skip `json:"skips,omitempty"`
}

func ptr[T any](v T) *T { return &v }

func newSummaryDoc(res harness.SuiteResult) summaryDoc {
	agg := res.Aggregate
	doc := summaryDoc{
		Root:        res.Config.Root,
		Pattern:     res.PatternUsed,
		RootMissing: res.RootMissing,
		Samples:     agg.Samples,
		Count:       agg.Count(),
		GeneratedAt: res.GeneratedAt,
	}
	if doc.Samples == nil {
		doc.Samples = []float64{}
	}
	if agg.Valid {
		doc.AvgMs, doc.P50Ms, doc.P90Ms = ptr(agg.AvgMs), ptr(agg.P50Ms), ptr(agg.P90Ms)
		doc.StdDevMs, doc.MinMs, doc.MaxMs = ptr(agg.StdDevMs), ptr(agg.MinMs), ptr(agg.MaxMs)
		doc.Source = ptr(agg.LastSource)
	}
	return doc
}

func newRunDoc(ext trace.Extraction) runDoc {
	doc := runDoc{
		Run:        ext.Run.Name,
		Path:       ext.Run.Path,
		Candidates: len(ext.Candidates),
		Skips:      ext.Skips,
	}
	if ext.Latency.Valid {
		doc.Ms = ptr(ext.Latency.Ms)
	}
	if w := ext.Winner; w != nil {
		doc.Match = w.Match.String()
		doc.Column = w.Column.Name
		doc.Source = w.Path
	}
	return doc
}

// WriteJSON writes the aggregate of res as an indented JSON document.
func WriteJSON(w io.Writer, res harness.SuiteResult) error {
	return encode(w, newSummaryDoc(res))
}

// WriteRunsJSON writes one JSON object per run directory.
func WriteRunsJSON(w io.Writer, runs []trace.Extraction) error {
	docs := make([]runDoc, 0, len(runs))
	for _, r := range runs {
		docs = append(docs, newRunDoc(r))
	}
	return encode(w, docs)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
