// internal/trace/runs.go
package trace

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultRunPrefix is the directory prefix of a numbered run, e.g. run_003.
const DefaultRunPrefix = "run_"

// RunDir is one run directory of a benchmarking session. The session root
// itself is a RunDir with Numbered=false when it has no numbered children.
type RunDir struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Ordinal  int    `json:"ordinal"`
	Numbered bool   `json:"numbered"`
}

// isRunName reports whether name is prefix followed by one or more ASCII
// digits, returning the parsed ordinal.
func isRunName(name, prefix string) (int, bool) {
	suffix, found := strings.CutPrefix(name, prefix)
	if !found || suffix == "" {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		// Too many digits for an int, still a run directory.
		n = -1
	}
	return n, true
}

// DiscoverRuns lists the numbered run directories directly under root,
// sorted by name. When there are none, or root cannot be listed, the
// result is root alone so a flat trace directory is treated as one run.
func DiscoverRuns(root, prefix string) []RunDir {
	if prefix == "" {
		prefix = DefaultRunPrefix
	}
	var runs []RunDir
	entries, err := os.ReadDir(root)
	if err == nil {
		for _, e := range entries {
			if !isDir(root, e) {
				continue
			}
			ordinal, ok := isRunName(e.Name(), prefix)
			if !ok {
				continue
			}
			runs = append(runs, RunDir{
				Path:     filepath.Join(root, e.Name()),
				Name:     e.Name(),
				Ordinal:  ordinal,
				Numbered: true,
			})
		}
	}
	if len(runs) == 0 {
		return []RunDir{{Path: root, Name: filepath.Base(root)}}
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Name < runs[j].Name })
	return runs
}

// isDir follows symlinks so a linked run directory still counts.
func isDir(root string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && fi.IsDir()
}
