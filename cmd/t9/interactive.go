package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/t9vm/vm"
)

const maxShown = 10

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

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

type interactiveModel struct {
	err      error
	machine  *vm.Machine
	opts     options
	title    string
	accepted []string
	cands    []vm.Candidate
	input    textinput.Model
	selected int
}

type loadedMsg struct {
	err     error
	program []byte
}

func newInteractiveModel(opts options) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type a prefix"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	title := opts.programFile
	if title == "" {
		title = opts.asmFile
	}
	return &interactiveModel{
		opts:  opts,
		title: title,
		input: ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.load, textinput.Blink)
}

func (m *interactiveModel) load() tea.Msg {
	program, err := loadProgram(m.opts)
	return loadedMsg{program: program, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.selected < len(m.shown())-1 {
				m.selected++
			}
			return m, nil

		case "tab":
			if c, ok := m.current(); ok {
				m.input.SetValue(c.Word)
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil

		case "enter":
			if c, ok := m.current(); ok {
				m.accepted = append(m.accepted, c.Word)
				m.input.SetValue("")
				m.refresh()
			}
			return m, nil
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.machine = vm.NewWithConfig(msg.program, m.opts.config())
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh reruns completion for the current input. A traversal error keeps
// the candidates found before it and is shown under the list.
func (m *interactiveModel) refresh() {
	if m.machine == nil {
		return
	}
	m.cands, m.err = m.machine.Complete(m.input.Value(), 0)
	m.selected = 0
}

func (m *interactiveModel) shown() []vm.Candidate {
	if len(m.cands) > maxShown {
		return m.cands[:maxShown]
	}
	return m.cands
}

func (m *interactiveModel) current() (vm.Candidate, bool) {
	shown := m.shown()
	if m.selected < 0 || m.selected >= len(shown) {
		return vm.Candidate{}, false
	}
	return shown[m.selected], true
}

func (m *interactiveModel) View() string {
	if m.machine == nil {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
		}
		return "Loading program..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("T9"))
	b.WriteString(" ")
	b.WriteString(m.title)
	b.WriteString("\n\n")

	if len(m.accepted) > 0 {
		b.WriteString(resultStyle.Render(strings.Join(m.accepted, " ")))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for i, c := range m.shown() {
		line := fmt.Sprintf("%-24s %3d", c.Word, c.Priority)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + wordStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if extra := len(m.cands) - len(m.shown()); extra > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more", extra)))
		b.WriteString("\n")
	}
	if len(m.cands) == 0 && m.err == nil {
		b.WriteString(helpStyle.Render("  no matches"))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • tab complete • enter accept • esc quit"))
	return b.String()
}

func runInteractive(opts options) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
