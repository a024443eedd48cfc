// internal/trace/cell.go
package trace

import (
	"strconv"
	"strings"
)

// degenerate are cleaned forms that contain no digits at all.
var degenerate = map[string]struct{}{
	"": {}, "+": {}, "-": {}, ".": {}, "+.": {}, "-.": {},
}

// ParseNumber converts a raw cell into a float. Grouping commas, surrounding
// whitespace and any character outside [0-9eE+-.] are dropped first, so
// " 1,234.5 " and "1234.5us" both parse. ok is false when nothing numeric
// remains or the cleaned text is not a valid float.
func ParseNumber(cell string) (v float64, ok bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	cleaned = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == 'e', r == 'E', r == '+', r == '-', r == '.':
			return r
		}
		return -1
	}, cleaned)
	if _, bad := degenerate[cleaned]; bad {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		// Overflow still yields a usable ±Inf.
		if ne, isNum := err.(*strconv.NumError); isNum && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}
