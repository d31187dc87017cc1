// Package historyui provides the Bubble Tea journey history browser.
package historyui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/starletters/internal/model"
	"github.com/verte-zerg/starletters/internal/report"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea history UI.
type Model struct {
	journeys []model.Journey
	summary  report.Summary
	table    table.Model

	width  int
	height int
}

// NewModel constructs a history browser over journeys.
func NewModel(journeys []model.Journey) *Model {
	m := &Model{
		journeys: journeys,
		summary:  report.Summarize(journeys),
	}
	m.table = buildTable(journeys, 10)
	return m
}

func buildTable(journeys []model.Journey, height int) table.Model {
	rows := report.Rows(journeys)
	columns := make([]table.Column, len(report.Headers))
	for i, h := range report.Headers {
		width := lipgloss.Width(h)
		for _, row := range rows {
			if w := lipgloss.Width(row[i]); w > width {
				width = w
			}
		}
		columns[i] = table.Column{Title: h, Width: width}
	}
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#6D28D9"))
	t.SetStyles(styles)
	if len(tableRows) > 0 {
		t.GotoBottom()
	}
	return t
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(3, m.height-6))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render("Journeys under the stars")
	if len(m.journeys) == 0 {
		return title + "\n\nNo journeys recorded yet.\n" + footerStyle.Render("q: quit")
	}
	summary := fmt.Sprintf("%d journeys · %d read to the end · %d hugs", m.summary.Journeys, m.summary.Complete, m.summary.Hugs)
	parts := []string{
		title,
		frameStyle.Render(m.table.View()),
		footerStyle.Render(summary),
		footerStyle.Render("up/down: scroll  g/G: top/bottom  q: quit"),
	}
	return strings.Join(parts, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
