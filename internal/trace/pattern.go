// internal/trace/pattern.go
package trace

import "regexp"

// DefaultPattern matches the custom MatmulLeakyRelu kernel rows.
const DefaultPattern = `matmul|leaky|custom`

var defaultRe = regexp.MustCompile("(?i)" + DefaultPattern)

// CompilePattern compiles expr as a case-insensitive row filter. An empty
// expr compiles and matches every row. An expr that fails to compile
// yields the default pattern and ok=false; it is never an error.
func CompilePattern(expr string) (re *regexp.Regexp, ok bool) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return defaultRe, false
	}
	return re, true
}
