// cli/cli_test.go
package cli

import (
	"strings"
	"testing"

	"github.com/mwiater/msprofstat/harness"
	"github.com/mwiater/msprofstat/internal/trace"
)

func testResult() harness.SuiteResult {
	winner := trace.Candidate{
		Path:     "/r/run_000/op_summary.csv",
		FileRank: trace.RankSummary,
		Match:    trace.MatchKeyword,
		Column:   trace.Column{Name: "Task Duration(us)"},
		Ms:       1.5,
	}
	loser := trace.Candidate{
		Path:     "/r/run_000/op_statistic.csv",
		FileRank: trace.RankStatistic,
		Match:    trace.MatchFallback,
		Column:   trace.Column{Name: "Total Time(us)", Priority: 1},
		Ms:       9,
	}
	return harness.SuiteResult{
		Config: harness.SuiteConfig{Root: "/r"},
		Runs: []trace.Extraction{
			{
				Run:        trace.RunDir{Name: "run_000", Path: "/r/run_000"},
				Latency:    trace.Measurement{Ms: 1.5, Valid: true},
				Source:     winner.Path,
				Winner:     &winner,
				Candidates: []trace.Candidate{winner, loser},
			},
			{
				Run:   trace.RunDir{Name: "run_001", Path: "/r/run_001"},
				Skips: []trace.Skip{{Path: "/r/run_001/names.csv", Reason: "no timing column in header"}},
			},
		},
		Aggregate: harness.Aggregate{Valid: true, Samples: []float64{1.5}, AvgMs: 1.5, P50Ms: 1.5, P90Ms: 1.5, LastSource: winner.Path},
	}
}

func TestRunDescription(t *testing.T) {
	res := testResult()
	if got := runDescription(res.Runs[0]); got != "1.500 ms, matched, Task Duration(us)" {
		t.Fatalf("unexpected description: %q", got)
	}
	if got := runDescription(res.Runs[1]); got != "no data (1 files skipped)" {
		t.Fatalf("unexpected description: %q", got)
	}
}

func TestRenderRunDetail(t *testing.T) {
	res := testResult()
	out := renderRunDetail(res.Runs[0])
	if !strings.Contains(out, "* 1.500 ms") {
		t.Fatalf("winner not marked:\n%s", out)
	}
	if !strings.Contains(out, "fallback") || !strings.Contains(out, "op_statistic.csv") {
		t.Fatalf("losing candidate missing:\n%s", out)
	}

	out = renderRunDetail(res.Runs[1])
	if !strings.Contains(out, "No trace file produced a value.") || !strings.Contains(out, "names.csv: no timing column") {
		t.Fatalf("skip details missing:\n%s", out)
	}
}

func TestSummaryLine(t *testing.T) {
	if got := summaryLine(harness.Aggregate{}); !strings.Contains(got, "no data") {
		t.Fatalf("got %q", got)
	}
	if got := summaryLine(testResult().Aggregate); !strings.Contains(got, "p90 1.500 ms over 1 samples") {
		t.Fatalf("got %q", got)
	}
}
