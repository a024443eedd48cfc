// internal/trace/files.go
package trace

import (
	"path/filepath"
	"strings"
)

// FileRank says how authoritative a trace file looks from its name alone.
type FileRank int

const (
	RankSummary   FileRank = iota // op_summary*.csv
	RankStatistic                 // op_statistic*.csv, op_stat*.csv
	RankOther
)

func (r FileRank) String() string {
	switch r {
	case RankSummary:
		return "op_summary"
	case RankStatistic:
		return "op_statistic"
	default:
		return "other"
	}
}

var fileRules = []struct {
	substrs []string
	rank    FileRank
}{
	{substrs: []string{"op_summary"}, rank: RankSummary},
	{substrs: []string{"op_statistic", "op_stat"}, rank: RankStatistic},
}

// ScoreFile ranks path by its base name. The rank only breaks ties
// between files; files of every rank are still scanned.
func ScoreFile(path string) FileRank {
	low := strings.ToLower(filepath.Base(path))
	for _, rule := range fileRules {
		for _, s := range rule.substrs {
			if strings.Contains(low, s) {
				return rule.rank
			}
		}
	}
	return RankOther
}

// authoritative reports whether an unmatched file may fall back to
// summing every row.
func (r FileRank) authoritative() bool {
	return r <= RankStatistic
}
