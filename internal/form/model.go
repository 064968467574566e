package form

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type kind int

const (
	textField kind = iota
	toggleField
	choiceField
)

type field struct {
	label   string
	section string // heading printed above the field when set
	kind    kind
	input   textinput.Model
	on      bool
	choices []string
	choice  int
}

func textInput(label, value string, width int) field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Width = width
	ti.SetValue(value)
	return field{label: label, kind: textField, input: ti}
}

func toggle(label string, on bool) field {
	return field{label: label, kind: toggleField, on: on}
}

func choice(label string, choices []string, selected string) field {
	f := field{label: label, kind: choiceField, choices: choices}
	for i, c := range choices {
		if c == selected {
			f.choice = i
		}
	}
	return f
}

func (f field) value() string {
	switch f.kind {
	case toggleField:
		return strconv.FormatBool(f.on)
	case choiceField:
		return f.choices[f.choice]
	}
	return f.input.Value()
}

type keymap struct {
	next   key.Binding
	prev   key.Binding
	enter  key.Binding
	submit key.Binding
	cancel key.Binding
	toggle key.Binding
	left   key.Binding
	right  key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / ok")),
		submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "ok")),
		cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		toggle: key.NewBinding(key.WithKeys(" ", "space", "x")),
		left:   key.NewBinding(key.WithKeys("left")),
		right:  key.NewBinding(key.WithKeys("right")),
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("250"))
	focusStyle   = labelStyle.Foreground(lipgloss.Color("#f5c542")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// model is a vertical list of fields with one focused at a time.
type model struct {
	title     string
	note      string
	fields    []field
	focus     int
	keys      keymap
	done      bool
	cancelled bool
}

func newModel(title string, fields []field) model {
	m := model{title: title, fields: fields, keys: defaultKeymap()}
	if len(m.fields) > 0 && m.fields[0].kind == textField {
		m.fields[0].input.Focus()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}
	f := &m.fields[m.focus]
	switch {
	case key.Matches(km, m.keys.cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(km, m.keys.submit):
		m.done = true
		return m, tea.Quit
	case key.Matches(km, m.keys.enter):
		if m.focus == len(m.fields)-1 {
			m.done = true
			return m, tea.Quit
		}
		return m, m.move(1)
	case key.Matches(km, m.keys.next):
		return m, m.move(1)
	case key.Matches(km, m.keys.prev):
		return m, m.move(-1)
	case f.kind == toggleField && key.Matches(km, m.keys.toggle):
		f.on = !f.on
		return m, nil
	case f.kind == choiceField && key.Matches(km, m.keys.right):
		f.choice = (f.choice + 1) % len(f.choices)
		return m, nil
	case f.kind == choiceField && key.Matches(km, m.keys.left):
		f.choice = (f.choice + len(f.choices) - 1) % len(f.choices)
		return m, nil
	}
	return m.forward(msg)
}

func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.fields[m.focus]
	if f.kind != textField {
		return m, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

// move shifts the focus by delta, wrapping around.
func (m *model) move(delta int) tea.Cmd {
	n := len(m.fields)
	if m.fields[m.focus].kind == textField {
		m.fields[m.focus].input.Blur()
	}
	m.focus = (m.focus + delta + n) % n
	if m.fields[m.focus].kind == textField {
		return m.fields[m.focus].input.Focus()
	}
	return nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	if m.note != "" {
		b.WriteString(m.note + "\n")
	}
	for i, f := range m.fields {
		if f.section != "" {
			b.WriteString(sectionStyle.Render(f.section) + "\n")
		}
		label := labelStyle.Render(f.label)
		if i == m.focus {
			label = focusStyle.Render(f.label)
		}
		b.WriteString(label + " " + f.view(i == m.focus) + "\n")
	}
	b.WriteString(helpStyle.Render("tab/shift+tab move • space toggle • ←/→ choose • enter/ctrl+s ok • esc cancel"))
	return b.String()
}

func (f field) view(focused bool) string {
	switch f.kind {
	case toggleField:
		if f.on {
			return "[x]"
		}
		return "[ ]"
	case choiceField:
		if focused {
			return "< " + f.choices[f.choice] + " >"
		}
		return f.choices[f.choice]
	}
	return f.input.View()
}

// values returns every field value in field order.
func (m model) values() []string {
	out := make([]string, len(m.fields))
	for i, f := range m.fields {
		out[i] = f.value()
	}
	return out
}
