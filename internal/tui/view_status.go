package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const helpText = " q:quit s:save e:edit /:find n/N:next g:goto r:reload t:theme"

// renderStatusBar writes the bottom bar: key help and position on the left,
// the latest status message on the right.
func (m Model) renderStatusBar(b *strings.Builder) {
	left := m.styles.StatusText.Render(helpText) +
		m.styles.StatusText.Render(fmt.Sprintf("  Line %d/%d", m.vp.Selected()+1, m.buf.Len()))

	var right string
	if m.status != "" {
		style := m.styles.StatusText
		switch m.level {
		case statusOK:
			style = m.styles.StatusOK
		case statusErr:
			style = m.styles.StatusErr
		}
		right = style.Render(m.status)
	}

	// -- Compose: left + gap + right + trailing space --
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		gap = 0
	}
	b.WriteString(left)
	b.WriteString(m.styles.BgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(m.styles.BgFill.Render(" "))
}
