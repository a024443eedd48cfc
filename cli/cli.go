// cli/cli.go
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/msprofstat/harness"
	"github.com/mwiater/msprofstat/internal/report"
	"github.com/mwiater/msprofstat/internal/trace"
)

// viewState represents the current state of the inspector's view.
type viewState int

const (
	viewRunList   viewState = iota // viewRunList is the state where the user picks a run directory.
	viewRunDetail                  // viewRunDetail shows the per-file candidates of one run.
)

// model is the Bubble Tea model of the run inspector. It only reads the
// SuiteResult it was built from.
type model struct {
	result harness.SuiteResult // Scrape being inspected.
	state  viewState           // Current view state.

	runList  list.Model     // Run directories with their values.
	viewport viewport.Model // Detail pane for the selected run.
	selected int            // Index into result.Runs of the run in the detail pane.

	width, height int // Current width and height of the terminal.
}

// item is one run directory in the list.
type item struct {
	title string
	desc  string
	index int
}

// Title returns the run directory name.
func (i item) Title() string { return i.title }

// Description returns the run's value and match mode.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering in the list.
func (i item) FilterValue() string { return i.title }

var (
	headerStyle  = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	winnerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// initialModel builds the inspector for res with the run list focused.
func initialModel(res harness.SuiteResult) *model {
	items := make([]list.Item, len(res.Runs))
	for i, r := range res.Runs {
		items[i] = item{title: r.Run.Name, desc: runDescription(r), index: i}
	}
	runList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	runList.Title = "Runs under " + res.Config.Root

	return &model{
		result:   res,
		state:    viewRunList,
		runList:  runList,
		viewport: viewport.New(100, 5),
	}
}

func runDescription(r trace.Extraction) string {
	if r.Winner == nil {
		return fmt.Sprintf("no data (%d files skipped)", len(r.Skips))
	}
	return fmt.Sprintf("%s ms, %s, %s", report.FormatMs(r.Latency.Ms), r.Winner.Match, r.Winner.Column.Name)
}

// Init satisfies tea.Model; the inspector has no startup command.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "esc":
			if m.state == viewRunDetail {
				m.state = viewRunList
				return m, nil
			}
		case "enter":
			if m.state == viewRunList {
				if it, ok := m.runList.SelectedItem().(item); ok {
					m.selected = it.index
					m.viewport.SetContent(renderRunDetail(m.result.Runs[it.index]))
					m.viewport.GotoTop()
					m.state = viewRunDetail
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.runList.SetSize(msg.Width-2, msg.Height-6)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		return m, nil
	}

	switch m.state {
	case viewRunList:
		m.runList, cmd = m.runList.Update(msg)
	case viewRunDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View renders the run list with an aggregate footer, or the detail pane.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewRunDetail:
		run := m.result.Runs[m.selected]
		header := headerStyle.Render("Run: "+run.Run.Name) + helpStyle.Render(" (tab to go back, q to quit)")
		return header + "\n\n" + m.viewport.View()
	default:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.runList.View()) + "\n" + summaryStyle.Render(summaryLine(m.result.Aggregate))
	}
}

func summaryLine(agg harness.Aggregate) string {
	if !agg.Valid {
		return "  no data"
	}
	return fmt.Sprintf("  avg %s  p50 %s  p90 %s ms over %d samples",
		report.FormatMs(agg.AvgMs), report.FormatMs(agg.P50Ms), report.FormatMs(agg.P90Ms), agg.Count())
}

// renderRunDetail lists every scanned file of a run, winner first marked.
func renderRunDetail(r trace.Extraction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s\n\n", r.Run.Path)

	if len(r.Candidates) == 0 {
		b.WriteString("No trace file produced a value.\n")
	}
	for _, c := range r.Candidates {
		line := fmt.Sprintf("%s ms  [%s, %s, col %q p%d]  %s",
			report.FormatMs(c.Ms), c.FileRank, c.Match, c.Column.Name, c.Column.Priority, c.Path)
		if r.Winner != nil && c.Path == r.Winner.Path {
			b.WriteString(winnerStyle.Render("* "+line) + "\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}

	if len(r.Skips) > 0 {
		b.WriteString("\nSkipped:\n")
		for _, s := range r.Skips {
			b.WriteString(skipStyle.Render(fmt.Sprintf("  %s: %s", s.Path, s.Reason)) + "\n")
		}
	}
	return b.String()
}

// StartInspector runs the inspector TUI over res until the user quits.
func StartInspector(res harness.SuiteResult) error {
	p := tea.NewProgram(initialModel(res), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
