// internal/trace/columns.go
package trace

import (
	"slices"
	"strings"
)

// Excluded is the priority of a header that carries no timing information.
const Excluded = 99

// A priorityRule assigns a priority to headers whose normalized form
// contains token. Lower priorities are more authoritative.
type priorityRule struct {
	token    string
	priority int
}

var priorityRules = []priorityRule{
	{token: "taskduration", priority: 0},
	{token: "totaltime", priority: 1},
	{token: "duration", priority: 2},
	{token: "time", priority: 3},
}

// Column is a timing column candidate picked out of a trace header.
type Column struct {
	Priority int     `json:"priority"`
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Scale    float64 `json:"scale"` // multiply cell values by Scale to get ms
}

// normalizeHeader lower-cases h and drops everything but [a-z0-9], so
// "Task Duration(us)" becomes "taskdurationus".
func normalizeHeader(h string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, strings.ToLower(h))
}

// HeaderPriority classifies a single header cell. Headers that match no
// rule get Excluded.
func HeaderPriority(header string) int {
	token := normalizeHeader(header)
	for _, rule := range priorityRules {
		if strings.Contains(token, rule.token) {
			return rule.priority
		}
	}
	return Excluded
}

// SelectColumns returns the timing columns of header ordered by priority.
// Columns sharing a priority keep their header order. An empty result
// means the file has nothing worth scanning.
func SelectColumns(header []string) []Column {
	var cols []Column
	for idx, name := range header {
		priority := HeaderPriority(name)
		if priority >= Excluded {
			continue
		}
		cols = append(cols, Column{
			Priority: priority,
			Index:    idx,
			Name:     name,
			Scale:    UnitScale(name),
		})
	}
	slices.SortStableFunc(cols, func(a, b Column) int {
		return a.Priority - b.Priority
	})
	return cols
}
