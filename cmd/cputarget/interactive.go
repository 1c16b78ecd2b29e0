package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/jit-dispatch/cpu"
	"github.com/wippyai/jit-dispatch/features"
	"github.com/wippyai/jit-dispatch/target"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	featStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateInputSpec
	stateShowResolved
)

type interactiveModel struct {
	err      error
	be       target.Backend
	input    textinput.Model
	profiles []cpu.Profile
	resolved []target.Target
	spec     string
	selected int
	state    modelState
}

func newInteractiveModel(spec string, be target.Backend) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "rv64gc,+zba,-c;rv64gcv"
	ti.Prompt = "spec: "
	ti.Width = 60
	ti.SetValue(spec)

	return &interactiveModel{
		be:       be,
		input:    ti,
		profiles: cpu.Profiles(),
		spec:     spec,
		state:    stateBrowse,
	}
}

type resolvedMsg struct {
	err     error
	targets []target.Target
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) resolveSpec() tea.Msg {
	specs, err := target.ParseSpecs(m.spec)
	if err != nil {
		return resolvedMsg{err: err}
	}
	if err := target.CheckSpecs(specs); err != nil {
		return resolvedMsg{err: err}
	}
	return resolvedMsg{targets: target.ResolveAll(specs, m.be)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputSpec {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.profiles)-1 {
				m.selected++
			}

		case "s":
			if m.state == stateBrowse {
				m.state = stateInputSpec
				m.input.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				m.spec = m.profiles[m.selected].Name
				return m, m.resolveSpec

			case stateInputSpec:
				m.spec = m.input.Value()
				m.input.Blur()
				return m, m.resolveSpec

			case stateShowResolved:
				m.state = stateBrowse
				m.resolved = nil
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputSpec:
				m.state = stateBrowse
				m.input.Blur()
			case stateShowResolved:
				m.state = stateBrowse
				m.resolved = nil
				m.err = nil
			}
		}

	case resolvedMsg:
		m.resolved = msg.targets
		m.err = msg.err
		m.state = stateShowResolved
	}

	if m.state == stateInputSpec {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CPU Target Explorer"))
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString("Known CPU profiles:\n\n")
		for i, p := range m.profiles {
			line := m.formatProfile(p)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter resolve • s enter spec • q quit"))

	case stateInputSpec:
		b.WriteString("Enter a target spec:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter resolve • esc back"))

	case stateShowResolved:
		b.WriteString(fmt.Sprintf("Resolved %s:\n\n", nameStyle.Render(m.spec)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			for i, t := range m.resolved {
				b.WriteString(resultStyle.Render(fmt.Sprintf("[%d] %s", i, t.Name)))
				b.WriteString("\n    ")
				b.WriteString(featStyle.Render(strings.Join(features.SetNames(t.Features), ",")))
				if len(t.Ext) > 0 {
					b.WriteString("\n    ext: ")
					b.WriteString(featStyle.Render(strings.Join(t.Ext, ",")))
				}
				if t.Flags != 0 {
					b.WriteString("\n    flags: ")
					b.WriteString(featStyle.Render(flagNames(t.Flags)))
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatProfile(p cpu.Profile) string {
	n := p.Features.Count()
	detail := fmt.Sprintf("%d features", n)
	if p.Parent != p.ID {
		detail += ", falls back to " + cpu.NameOf(p.Parent)
	}
	return nameStyle.Render(p.Name) + " " + featStyle.Render("("+detail+")")
}

func runInteractive(spec string, be target.Backend) error {
	p := tea.NewProgram(newInteractiveModel(spec, be), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
