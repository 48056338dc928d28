package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/lined/internal/search"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	content := m.renderContent()
	if m.mode == modeTheming {
		content = m.picker.View(m.width, m.height)
	}
	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// renderContent produces the string content for the view: header, content
// rows and the status or prompt bar.
func (m Model) renderContent() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	m.renderHeader(&b)

	contentH := m.height - statusRows
	if contentH < 1 {
		contentH = 1
	}
	for row := 0; row < contentH; row++ {
		m.renderRow(&b, m.vp.Top+row)
		b.WriteByte('\n')
	}

	if m.mode == modePrompt {
		b.WriteString(m.prompt.View(m.width))
	} else {
		m.renderStatusBar(&b)
	}
	return b.String()
}

// renderHeader writes the one-line title bar.
func (m Model) renderHeader(b *strings.Builder) {
	title := " lined: " + m.name
	if m.modified {
		title += " [modified]"
	}
	line := ansi.Truncate(title, m.width, "")
	if w := lipgloss.Width(line); w < m.width {
		line += strings.Repeat(" ", m.width-w)
	}
	b.WriteString(m.styles.Header.Render(line))
	b.WriteByte('\n')
}

// renderRow writes one content row: gutter plus the (possibly highlighted)
// line text, padded to the full width.
func (m Model) renderRow(b *strings.Builder, lineIdx int) {
	if lineIdx >= m.buf.Len() {
		line := m.styles.Tilde.Render("~")
		if w := lipgloss.Width(line); w < m.width {
			line += m.styles.BgFill.Render(strings.Repeat(" ", m.width-w))
		}
		b.WriteString(line)
		return
	}

	selected := lineIdx == m.vp.Selected()
	gutterStyle := m.styles.Gutter
	if selected {
		gutterStyle = m.styles.GutterSel
	}
	gutter := gutterStyle.Render(fmt.Sprintf("|%5d| ", lineIdx+1))

	textW := m.width - gutterWidth
	if textW < 1 {
		textW = 1
	}
	text := m.renderLineText(m.buf.Line(lineIdx), textW, selected)

	line := ansi.Truncate(gutter+text, m.width, "")
	if w := lipgloss.Width(line); w < m.width {
		pad := m.styles.BgFill
		if selected {
			pad = m.styles.Selected
		}
		line += pad.Render(strings.Repeat(" ", m.width-w))
	}
	b.WriteString(line)
}

// renderLineText styles one line of text, marking active search matches.
func (m Model) renderLineText(text string, textW int, selected bool) string {
	base := m.styles.Text
	if selected {
		base = m.styles.Selected
	}

	runes := []rune(text)
	if len(runes) > textW {
		runes = runes[:textW]
	}

	if !m.index.Active() {
		return base.Render(string(runes))
	}

	spans := search.ClipSpans(search.Spans(text, m.index.Term()), 0, textW)
	if len(spans) == 0 {
		return base.Render(string(runes))
	}

	var b strings.Builder
	at := 0
	for _, sp := range spans {
		if sp.Start > at {
			b.WriteString(base.Render(string(runes[at:sp.Start])))
		}
		b.WriteString(m.styles.Match.Render(string(runes[sp.Start:sp.End])))
		at = sp.End
	}
	if at < len(runes) {
		b.WriteString(base.Render(string(runes[at:])))
	}
	return b.String()
}
