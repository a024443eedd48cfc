// harness/metrics.go
// Package: harness
package harness

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
)

// quantile returns the q-quantile (0..1) of values using linear
// interpolation between order statistics at k = (n-1)*q. values need not
// be sorted and is not modified. It panics on an empty slice.
func quantile(values []float64, q float64) float64 {
	cp := slices.Clone(values)
	slices.Sort(cp)
	if len(cp) == 1 || q <= 0 {
		return cp[0]
	}
	if q >= 1 {
		return cp[len(cp)-1]
	}
	pos := q * float64(len(cp)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return cp[l]
	}
	frac := pos - float64(l)
	return cp[l] + (cp[r]-cp[l])*frac
}

// spread returns the sample standard deviation and bounds of values.
// A single sample has zero deviation.
func spread(values []float64) (std, min, max float64) {
	min, max = stats.Bounds(values)
	if len(values) > 1 {
		std = stats.StdDev(values)
	}
	return
}
