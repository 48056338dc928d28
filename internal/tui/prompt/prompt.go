// Package prompt implements the single-line input shown in the bottom bar
// for search, goto, edit and confirmation questions.
package prompt

import (
	"strings"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Model is a focused single-line text input with a label.
type Model struct {
	Label string

	input  []rune
	pos    int
	cursor cursor.Model

	labelStyle lipgloss.Style
	textStyle  lipgloss.Style
}

// New creates a prompt pre-filled with initial text, cursor at the end.
// The returned command starts the cursor blinking.
func New(label, initial string, labelStyle, textStyle lipgloss.Style) (Model, tea.Cmd) {
	c := cursor.New()
	c.Focus()
	c.TextStyle = textStyle
	m := Model{
		Label:      label,
		input:      []rune(initial),
		pos:        len([]rune(initial)),
		cursor:     c,
		labelStyle: labelStyle,
		textStyle:  textStyle,
	}
	return m, m.cursor.Blink()
}

// Value returns the current input text.
func (m Model) Value() string { return string(m.input) }

// Update handles key presses and cursor blink messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.Keystroke() {
		case "left":
			if m.pos > 0 {
				m.pos--
			}
		case "right":
			if m.pos < len(m.input) {
				m.pos++
			}
		case "home", "ctrl+a":
			m.pos = 0
		case "end", "ctrl+e":
			m.pos = len(m.input)
		case "backspace":
			if m.pos > 0 {
				m.input = append(m.input[:m.pos-1], m.input[m.pos:]...)
				m.pos--
			}
		case "delete":
			if m.pos < len(m.input) {
				m.input = append(m.input[:m.pos], m.input[m.pos+1:]...)
			}
		case "ctrl+u":
			m.input = append([]rune{}, m.input[m.pos:]...)
			m.pos = 0
		case "ctrl+k":
			m.input = m.input[:m.pos]
		default:
			if key.Text != "" {
				m.insert([]rune(key.Text))
			}
		}
	}

	// Forward to cursor for blink handling
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) insert(runes []rune) {
	out := make([]rune, 0, len(m.input)+len(runes))
	out = append(out, m.input[:m.pos]...)
	out = append(out, runes...)
	out = append(out, m.input[m.pos:]...)
	m.input = out
	m.pos += len(runes)
}

// View renders the prompt as a single line padded to width cells.
func (m Model) View(width int) string {
	label := m.labelStyle.Render(m.Label + " ")

	before := string(m.input[:m.pos])
	cursorChar := " "
	var after string
	if m.pos < len(m.input) {
		cursorChar = string(m.input[m.pos])
		after = string(m.input[m.pos+1:])
	}
	m.cursor.SetChar(cursorChar)
	m.cursor.TextStyle = m.textStyle

	line := label + m.textStyle.Render(before) + m.cursor.View() + m.textStyle.Render(after)
	if w := lipgloss.Width(line); w < width {
		line += m.textStyle.Render(strings.Repeat(" ", width-w))
	}
	return line
}
