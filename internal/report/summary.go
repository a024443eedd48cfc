// internal/report/summary.go
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/msprofstat/harness"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderSummary formats res for people. It is not part of the parsed
// output contract.
func RenderSummary(res harness.SuiteResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Kernel latency: "+res.Config.Root) + "\n\n")

	agg := res.Aggregate
	if !agg.Valid {
		msg := "no data"
		if res.RootMissing {
			msg = "msprof root not found"
		}
		b.WriteString(warnStyle.Render(msg) + "\n")
		return b.String()
	}

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("avg", FormatMs(agg.AvgMs)+" ms")
	row("p50", FormatMs(agg.P50Ms)+" ms")
	row("p90", FormatMs(agg.P90Ms)+" ms")
	row("stddev", FormatMs(agg.StdDevMs)+" ms")
	row("range", fmt.Sprintf("%s .. %s ms", FormatMs(agg.MinMs), FormatMs(agg.MaxMs)))
	row("samples", fmt.Sprintf("%d of %d runs", agg.Count(), len(res.Runs)))
	row("source", agg.LastSource)
	return b.String()
}
