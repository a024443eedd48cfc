// internal/report/table.go
package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mwiater/msprofstat/internal/trace"
)

// WriteRunsTable renders one row per run directory: the value picked for
// the run, how its rows were chosen, the column and the source file.
func WriteRunsTable(w io.Writer, runs []trace.Extraction) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Run", "Kernel (ms)", "Rows", "Column", "Source", "Skipped"})
	for _, r := range runs {
		value, match, column, source := NA, "-", "-", NA
		if r.Winner != nil {
			value = FormatMs(r.Latency.Ms)
			match = r.Winner.Match.String()
			column = r.Winner.Column.Name
			source = r.Winner.Path
		}
		t.AppendRow(table.Row{r.Run.Name, value, match, column, source, len(r.Skips)})
	}
	t.Render()
}
