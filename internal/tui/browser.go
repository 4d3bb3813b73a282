// Package tui provides an interactive terminal browser for stored
// rotor analysis results.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rotorlab/internal/aero"
	"github.com/san-kum/rotorlab/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
)

type model struct {
	name   string
	result *aero.RotorResult

	fields []string
	field  int // index into fields
	cursor int // selected station row

	width  int
	height int
}

// NewBrowser builds the interactive view over one analysis result.
func NewBrowser(name string, result *aero.RotorResult) tea.Model {
	return &model{
		name:   name,
		result: result,
		fields: viz.Fields(),
	}
}

// Run blocks until the user quits the browser.
func Run(name string, result *aero.RotorResult) error {
	_, err := tea.NewProgram(NewBrowser(name, result), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.field = (m.field + len(m.fields) - 1) % len(m.fields)
		case "right", "l", "tab":
			m.field = (m.field + 1) % len(m.fields)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.result.Stations)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	title := fmt.Sprintf(" %s   total Cp %.4f ", m.name, m.result.PowerCoef)
	b.WriteString(header.Render(title))
	if m.result.Degraded {
		b.WriteString(red.Render("  [degraded]"))
	}
	b.WriteString("\n\n")

	graph, err := viz.Spanwise(m.result, m.fields[m.field], 10)
	if err == nil {
		b.WriteString(graph)
		b.WriteString("\n\n")
	}

	b.WriteString(dim.Render(fmt.Sprintf("field: %s  (←/→ to switch)", m.fields[m.field])))
	b.WriteString("\n\n")
	b.WriteString(m.stationTable())
	b.WriteString("\n")
	b.WriteString(dim.Render("↑/↓ select station   q quit"))
	return b.String()
}

func (m *model) stationTable() string {
	if len(m.result.Stations) == 0 {
		return dim.Render("no stations")
	}

	var b strings.Builder
	b.WriteString(dim.Render(fmt.Sprintf("%3s %9s %8s %8s %8s %8s %8s  %s",
		"#", "radius", "tiploss", "alpha", "a", "a'", "Cp", "status")))
	b.WriteString("\n")

	for i, sr := range m.result.Stations {
		status := green.Render("ok")
		if sr.Err != nil {
			status = red.Render(sr.Err.Error())
		}
		line := fmt.Sprintf("%3d %9.3f %8.4f %8.4f %8.4f %8.4f %8.4f  %s",
			i, sr.LocalRadius, sr.TipLoss, sr.AttackAngle,
			sr.AxialInduction, sr.AngularInduction, sr.PowerCoef, status)
		if i == m.cursor {
			line = cyan.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	sel := m.result.Stations[m.cursor]
	b.WriteString("\n")
	b.WriteString(yellow.Render(fmt.Sprintf(
		"station %d: phi %.4f rad  Cl %.4f  Cd %.4f  Ct %.4f  Cq %.4f  (%d iterations)",
		m.cursor, sel.RelWindAngle, sel.LiftCoef, sel.DragCoef,
		sel.ThrustCoef, sel.TorqueCoef, sel.Iterations)))
	return b.String()
}
