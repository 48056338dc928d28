// Package modal implements the centered picker overlay used to choose a
// color theme: a filter input above a scrollable list of candidates.
package modal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Action is the result of handling a message. nil means no action.
type Action any

// ActionClose signals the modal should be dismissed.
type ActionClose struct{}

// ActionSelect signals an item was chosen.
type ActionSelect struct{ Item Item }

// Item is a single entry in the list.
type Item struct {
	Name string
	Desc string
}

// Colors holds the theme colors for the modal.
type Colors struct {
	Fg     string
	Bg     string
	Dim    string
	SelFg  string
	SelBg  string
	Border string
}

// Model is an input+list picker. Typing filters the list in place.
type Model struct {
	all      []Item
	items    []Item
	input    []rune
	cursor   int
	selected int

	colors Colors

	// Prompt shown before the input text.
	Prompt string
}

// New creates a picker over the given items.
func New(items []Item, prompt string, colors Colors) Model {
	return Model{
		all:    items,
		items:  items,
		Prompt: prompt,
		colors: colors,
	}
}

// HandleMsg processes a tea.Msg and returns an optional Action.
func (m *Model) HandleMsg(msg tea.Msg) Action {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch key.Keystroke() {
	case "esc":
		return ActionClose{}
	case "enter":
		if len(m.items) == 0 {
			return nil
		}
		return ActionSelect{Item: m.items[m.selected]}
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return nil
	case "down":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		return nil
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case "right":
		if m.cursor < len(m.input) {
			m.cursor++
		}
		return nil
	case "home", "ctrl+a":
		m.cursor = 0
		return nil
	case "end", "ctrl+e":
		m.cursor = len(m.input)
		return nil
	case "backspace":
		if m.cursor > 0 {
			m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
			m.cursor--
			m.refilter()
		}
		return nil
	case "delete":
		if m.cursor < len(m.input) {
			m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
			m.refilter()
		}
		return nil
	case "ctrl+u":
		m.input = m.input[m.cursor:]
		m.cursor = 0
		m.refilter()
		return nil
	case "ctrl+k":
		m.input = m.input[:m.cursor]
		m.refilter()
		return nil
	}

	if key.Text != "" {
		for _, r := range key.Text {
			m.input = append(m.input[:m.cursor], append([]rune{r}, m.input[m.cursor:]...)...)
			m.cursor++
		}
		m.refilter()
	}
	return nil
}

// refilter recomputes the visible items from the current query.
func (m *Model) refilter() {
	query := strings.ToLower(string(m.input))
	if query == "" {
		m.items = m.all
	} else {
		m.items = nil
		for _, it := range m.all {
			if strings.Contains(strings.ToLower(it.Name), query) {
				m.items = append(m.items, it)
			}
		}
	}
	m.selected = 0
}

// View renders the modal at the given app width and height.
func (m *Model) View(appWidth, appHeight int) string {
	w := appWidth * 80 / 100
	h := appHeight * 80 / 100
	if w < 30 {
		w = 30
	}
	if h < 8 {
		h = 8
	}

	innerW := w - 6 // border + padding
	if innerW < 10 {
		innerW = 10
	}

	prompt := m.Prompt
	if prompt == "" {
		prompt = "> "
	}

	inputLine := m.renderInput(prompt)
	listHeight := h - 4 // border top/bottom + input + divider
	if listHeight < 1 {
		listHeight = 1
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Dim))
	divider := dimStyle.Render(strings.Repeat("─", innerW))
	listLines := m.renderList(innerW, listHeight)

	content := inputLine + "\n" + divider
	for _, l := range listLines {
		content += "\n" + l
	}

	bg := lipgloss.Color(m.colors.Bg)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.colors.Border)).
		BorderBackground(bg).
		Foreground(lipgloss.Color(m.colors.Fg)).
		Background(bg).
		Padding(0, 1).
		Width(w - 2).
		Render(content)

	return lipgloss.Place(appWidth, appHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceStyle(lipgloss.NewStyle().Background(bg)))
}

func (m *Model) renderInput(prompt string) string {
	before := string(m.input[:m.cursor])
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	cursorChar := " "
	after := ""
	if m.cursor < len(m.input) {
		cursorChar = string(m.input[m.cursor])
		after = string(m.input[m.cursor+1:])
	}
	return prompt + before + cursorStyle.Render(cursorChar) + after
}

func (m *Model) renderList(innerW, listHeight int) []string {
	scrollOff := 0
	if m.selected >= listHeight {
		scrollOff = m.selected - listHeight + 1
	}

	bg := lipgloss.Color(m.colors.Bg)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.colors.Dim)).
		Background(bg)
	selStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.colors.SelFg)).
		Background(lipgloss.Color(m.colors.SelBg))

	var lines []string
	for i := scrollOff; i < len(m.items) && len(lines) < listHeight; i++ {
		item := m.items[i]
		if i == m.selected {
			lines = append(lines, selStyle.Render(padRight(item.Name, innerW)))
		} else {
			line := item.Name
			if item.Desc != "" {
				line += dimStyle.Render("  " + item.Desc)
			}
			lines = append(lines, padRight(line, innerW))
		}
	}

	for len(lines) < listHeight {
		lines = append(lines, strings.Repeat(" ", innerW))
	}
	return lines
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
