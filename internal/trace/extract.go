// internal/trace/extract.go
package trace

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// MatchClass says how the rows of a candidate were chosen. Lower is better.
type MatchClass int

const (
	MatchKeyword  MatchClass = 1 // rows matched the keyword pattern
	MatchFallback MatchClass = 2 // no row matched; every row of an op_summary/op_statistic file was summed
	MatchNone     MatchClass = 3 // a value without matched rows and without fallback
)

func (c MatchClass) String() string {
	switch c {
	case MatchKeyword:
		return "matched"
	case MatchFallback:
		return "fallback"
	default:
		return "unmatched"
	}
}

// Measurement is an optional latency in milliseconds. Valid is false when
// nothing was measured; Ms is meaningless in that case.
type Measurement struct {
	Ms    float64
	Valid bool
}

// Candidate is the value a single trace file offers for its run.
type Candidate struct {
	Path        string     `json:"path"`
	FileRank    FileRank   `json:"file_rank"`
	MatchedRows int        `json:"matched_rows"`
	Match       MatchClass `json:"match"`
	Column      Column     `json:"column"`
	Ms          float64    `json:"ms"`
}

// rank is the tuple candidates are ordered by, most authoritative first.
func (c Candidate) rank() [3]int {
	return [3]int{int(c.FileRank), int(c.Match), c.Column.Priority}
}

// outranks reports whether c should replace best. Equal ranks prefer the
// larger value.
func (c Candidate) outranks(best Candidate) bool {
	a, b := c.rank(), best.rank()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return c.Ms > best.Ms
}

// Skip records a file that contributed nothing and why.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// Unreadable reports whether the file could not be opened or decoded, as
// opposed to being readable but carrying no usable timing data.
func (s Skip) Unreadable() bool {
	if s.Err == nil {
		return false
	}
	_, benign := benignCauses[errors.Cause(s.Err)]
	return !benign
}

var benignCauses = map[error]struct{}{
	ErrEmptyFile:      {},
	ErrNoTimingColumn: {},
	ErrNoPositiveSum:  {},
	ErrNotDir:         {},
}

// Extraction is the outcome of scanning one run directory.
type Extraction struct {
	Run        RunDir      `json:"run"`
	Latency    Measurement `json:"-"`
	Source     string      `json:"source"`
	Winner     *Candidate  `json:"winner,omitempty"`
	Candidates []Candidate `json:"candidates"`
	Skips      []Skip      `json:"skips,omitempty"`
}

// Best folds candidates down to the most authoritative one. ok is false
// for an empty slice.
func Best(candidates []Candidate) (best Candidate, ok bool) {
	winner := lo.Reduce(candidates, func(agg *Candidate, c Candidate, _ int) *Candidate {
		if agg == nil || c.outranks(*agg) {
			return &c
		}
		return agg
	}, (*Candidate)(nil))
	if winner == nil {
		return Candidate{}, false
	}
	return *winner, true
}

// Extractor turns run directories into latencies using a row pattern.
type Extractor struct {
	Pattern *regexp.Regexp
}

// NewExtractor returns an Extractor for pattern. A nil pattern means
// DefaultPattern; use CompilePattern("") to match every row.
func NewExtractor(pattern *regexp.Regexp) *Extractor {
	if pattern == nil {
		pattern = defaultRe
	}
	return &Extractor{Pattern: pattern}
}

// Extract scans every *.csv file below run in lexical path order and keeps
// the best candidate. A run with no usable file has an invalid Latency.
func (e *Extractor) Extract(run RunDir) Extraction {
	out := Extraction{Run: run}
	for _, path := range traceFiles(run.Path, &out.Skips) {
		c, err := e.ScanFile(path)
		if err != nil {
			out.Skips = append(out.Skips, Skip{Path: path, Reason: skipReason(err), Err: err})
			continue
		}
		out.Candidates = append(out.Candidates, c)
	}
	if best, ok := Best(out.Candidates); ok {
		out.Winner = &best
		out.Latency = Measurement{Ms: best.Ms, Valid: true}
		out.Source = best.Path
	}
	return out
}

// traceFiles walks dir for *.csv files, sorted by full path. Unreadable
// subtrees are recorded in skips and otherwise ignored. A dir that is not
// a directory holds no trace files.
func traceFiles(dir string, skips *[]Skip) []string {
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		*skips = append(*skips, Skip{Path: dir, Reason: ErrNotDir.Error(), Err: ErrNotDir})
		return nil
	}
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			*skips = append(*skips, Skip{Path: path, Reason: err.Error(), Err: err})
			if d != nil && d.IsDir() && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".csv") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	slices.Sort(files)
	return files
}

func skipReason(err error) string {
	switch errors.Cause(err) {
	case ErrEmptyFile, ErrNoTimingColumn, ErrNoPositiveSum, ErrNotDir:
		return errors.Cause(err).Error()
	}
	return err.Error()
}

// ScanFile computes the candidate value of a single trace file. Rows
// matching the pattern are summed per timing column; when none match and
// the file is an op_summary or op_statistic export, every row is summed
// instead. The highest-priority column with a positive total wins.
func (e *Extractor) ScanFile(path string) (Candidate, error) {
	var (
		sawHeader bool
		cols      []Column
		totals    []float64
		matched   int
	)
	err := scanTrace(path, func(n int, record []string) bool {
		if n == 0 {
			if len(record) == 0 {
				return false
			}
			sawHeader = true
			cols = SelectColumns(record)
			totals = make([]float64, len(cols))
			return len(cols) > 0
		}
		if !e.Pattern.MatchString(strings.ToLower(strings.Join(record, " "))) {
			return true
		}
		matched++
		accumulate(totals, cols, record)
		return true
	})
	if err != nil {
		return Candidate{}, err
	}
	if !sawHeader {
		return Candidate{}, errors.Wrap(ErrEmptyFile, path)
	}
	if len(cols) == 0 {
		return Candidate{}, errors.Wrap(ErrNoTimingColumn, path)
	}

	rank := ScoreFile(path)
	match := MatchKeyword
	if matched == 0 {
		match = MatchNone
		if rank.authoritative() {
			match = MatchFallback
			clear(totals)
			err := scanTrace(path, func(n int, record []string) bool {
				if n > 0 {
					accumulate(totals, cols, record)
				}
				return true
			})
			if err != nil {
				return Candidate{}, err
			}
		}
	}

	for i, col := range cols {
		if totals[i] > 0 {
			return Candidate{
				Path:        path,
				FileRank:    rank,
				MatchedRows: matched,
				Match:       match,
				Column:      col,
				Ms:          totals[i],
			}, nil
		}
	}
	return Candidate{}, errors.Wrap(ErrNoPositiveSum, path)
}

// accumulate adds the scaled timing cells of record to totals. Missing or
// non-numeric cells add nothing.
func accumulate(totals []float64, cols []Column, record []string) {
	for i, col := range cols {
		if col.Index >= len(record) {
			continue
		}
		if v, ok := ParseNumber(record[col.Index]); ok {
			totals[i] += v * col.Scale
		}
	}
}
