// Package tui shows a live progress view while a large image is being
// transformed. Purely cosmetic; batch callers skip it entirely.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	label = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	fill  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

const barWidth = 50

// ProgressMsg reports rows completed out of the total.
type ProgressMsg struct {
	Done  int
	Total int
}

// DoneMsg ends the program.
type DoneMsg struct{}

type model struct {
	op    string
	done  int
	total int
}

func NewProgram(op string, totalRows int) *tea.Program {
	return tea.NewProgram(model{op: op, total: totalRows})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.done = msg.Done
		m.total = msg.Total
		return m, nil
	case DoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	frac := 0.0
	if m.total > 0 {
		frac = float64(m.done) / float64(m.total)
	}
	filled := int(frac * barWidth)
	bar := fill.Render(strings.Repeat("█", filled)) +
		dim.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%s %s %3.0f%%  (%d/%d rows)\n",
		label.Render(m.op), bar, frac*100, m.done, m.total)
}
