package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formPurpose says what a submitted form should do
type formPurpose int

const (
	formNewProject formPurpose = iota
	formBid
	formProfile
)

// formField describes one input of a form
type formField struct {
	Label       string
	Placeholder string
	Value       string
}

// form is a small vertical stack of text inputs with tab focus cycling
type form struct {
	purpose formPurpose
	title   string
	labels  []string
	inputs  []textinput.Model
	focus   int
}

func newForm(purpose formPurpose, title string, fields []formField) *form {
	f := &form{purpose: purpose, title: title}
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.Placeholder
		input.SetValue(field.Value)
		input.CharLimit = 200
		input.Width = 48
		if i == 0 {
			input.Focus()
		}
		f.labels = append(f.labels, field.Label)
		f.inputs = append(f.inputs, input)
	}
	return f
}

// Next moves focus to the following input, wrapping around
func (f *form) Next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// OnLast reports whether the last input has focus
func (f *form) OnLast() bool {
	return f.focus == len(f.inputs)-1
}

// Values returns the current input values in field order
func (f *form) Values() []string {
	values := make([]string, len(f.inputs))
	for i, input := range f.inputs {
		values[i] = input.Value()
	}
	return values
}

// Update forwards a message to the focused input
func (f *form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// View renders the form
func (f *form) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)

	sections := []string{titleStyle.Render(f.title)}
	for i := range f.inputs {
		sections = append(sections,
			labelStyle.Render(f.labels[i]),
			"  "+f.inputs[i].View())
	}
	sections = append(sections,
		labelStyle.Render("tab: next field · enter on last field: submit · esc: cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
