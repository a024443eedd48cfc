// internal/trace/units.go
package trace

import "strings"

// A unitRule maps header substrings to a factor converting that unit to
// milliseconds. Rules are evaluated top to bottom; the first hit wins.
type unitRule struct {
	hints []string
	scale float64
}

var unitRules = []unitRule{
	{hints: []string{"(ns", " ns"}, scale: 1e-6},
	{hints: []string{"(us", " us", "μs", "µs"}, scale: 1e-3},
	{hints: []string{"(ms", " ms"}, scale: 1.0},
	{hints: []string{"(s", " sec"}, scale: 1000.0},
}

// UnitScale returns the factor that converts values of the column named
// header to milliseconds. Headers without a recognizable unit hint are
// assumed to already be in milliseconds.
func UnitScale(header string) float64 {
	low := strings.ToLower(header)
	for _, rule := range unitRules {
		for _, hint := range rule.hints {
			if strings.Contains(low, hint) {
				return rule.scale
			}
		}
	}
	return 1.0
}
