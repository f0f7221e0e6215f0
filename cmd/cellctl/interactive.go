package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/protocell/dynamic"
	"github.com/wippyai/protocell/errors"
	"github.com/wippyai/protocell/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
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
	stateSelectField modelState = iota
	stateEditField
)

// frame is one level of the message being edited. The root frame has an
// empty name.
type frame struct {
	msg  *dynamic.Message
	name string
}

type interactiveModel struct {
	err      error
	input    textinput.Model
	stack    []frame
	selected int
	state    modelState
}

func newInteractiveModel(msg *dynamic.Message) *interactiveModel {
	return &interactiveModel{
		stack: []frame{{msg: msg}},
		state: stateSelectField,
	}
}

func runInteractive(file *schema.File, msgName string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.InvalidInput(errors.PhaseAccess, "interactive mode needs a terminal on stdin")
	}
	desc := file.Message(msgName)
	if desc == nil {
		return errors.NotFound(errors.PhaseAccess, "message", msgName)
	}

	model := newInteractiveModel(dynamic.New(desc))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	// Leave the final record on the terminal once the alt screen is gone.
	describe(os.Stdout, model.root())
	return nil
}

func (m *interactiveModel) root() *dynamic.Message {
	return m.stack[0].msg
}

func (m *interactiveModel) current() *dynamic.Message {
	return m.stack[len(m.stack)-1].msg
}

func (m *interactiveModel) fields() []*schema.Field {
	return m.current().Descriptor().Fields
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == stateEditField {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateEditField {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			f := m.fields()[m.selected]
			m.err = m.current().SetText(f.Name, m.input.Value())
			m.state = stateSelectField
			return m, nil
		case "esc":
			m.state = stateSelectField
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.fields())-1 {
			m.selected++
		}

	case "enter":
		fields := m.fields()
		if len(fields) == 0 {
			break
		}
		f := fields[m.selected]
		m.err = nil
		if f.Kind == schema.KindMessage {
			child, err := m.current().Mutable(f.Name)
			if err != nil {
				m.err = err
				break
			}
			m.stack = append(m.stack, frame{msg: child, name: f.Name})
			m.selected = 0
			break
		}
		m.startEdit(f)
		return m, textinput.Blink

	case "c", "delete":
		fields := m.fields()
		if len(fields) > 0 {
			m.err = m.current().Clear(fields[m.selected].Name)
		}

	case "esc", "backspace":
		if len(m.stack) > 1 {
			top := m.stack[len(m.stack)-1]
			m.stack = m.stack[:len(m.stack)-1]
			m.selected = m.current().Descriptor().Field(top.name).Index
			m.err = nil
		}
	}

	return m, nil
}

func (m *interactiveModel) startEdit(f *schema.Field) {
	ti := textinput.New()
	ti.Prompt = f.Name + ": "
	ti.Placeholder = f.TypeString()
	ti.Width = 40
	if v, err := m.current().Get(f.Name); err == nil {
		switch f.Kind {
		case schema.KindString:
			ti.SetValue(v.String())
		case schema.KindBytes:
			ti.SetValue(string(v.Bytes()))
		default:
			ti.SetValue(dynamic.FormatValue(f, v))
		}
	}
	ti.Focus()
	m.input = ti
	m.state = stateEditField
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Message Editor"))
	b.WriteString(" ")
	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")

	cur := m.current()
	fields := m.fields()
	for i, f := range fields {
		line := fmt.Sprintf("%-3d %s %s %s",
			f.Number,
			fieldStyle.Render(f.Name),
			typeStyle.Render(f.TypeString()),
			fieldValue(cur, f))
		if o := f.Oneof; o != nil {
			line += helpStyle.Render(" [oneof " + o.Name + "]")
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(fields) == 0 {
		b.WriteString(helpStyle.Render("  (no fields)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateEditField {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	b.WriteString(resultStyle.Render(m.root().String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectField:
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit/open • c clear • esc back • q quit"))
	case stateEditField:
		b.WriteString(helpStyle.Render("enter set • esc cancel"))
	}

	return b.String()
}

func (m *interactiveModel) breadcrumb() string {
	parts := []string{m.root().Descriptor().Name}
	for _, fr := range m.stack[1:] {
		parts = append(parts, fr.name)
	}
	return strings.Join(parts, ".")
}
