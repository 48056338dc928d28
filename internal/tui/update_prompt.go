package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/lined/internal/buffer"
	"github.com/xonecas/lined/internal/tui/prompt"
)

// openPrompt switches to prompt mode with the given label and initial text.
func (m *Model) openPrompt(kind promptKind, label, initial string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.prompt, cmd = prompt.New(label, initial, m.styles.PromptLabel, m.styles.PromptText)
	m.kind = kind
	m.mode = modePrompt
	return *m, cmd
}

// updatePrompt routes key presses while a prompt is open.
func (m Model) updatePrompt(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.Keystroke() {
	case "esc":
		m.mode = modeNormal
		if m.kind == promptEdit {
			m.setStatus(statusInfo, "Edit cancelled")
		}
		return m, nil
	case "enter":
		m.mode = modeNormal
		if m.kind == promptQuit {
			if isYes(m.prompt.Value()) {
				m.rememberPosition()
				return m, tea.Quit
			}
			return m, nil
		}
		m.completePrompt(m.prompt.Value())
		return m, nil
	case "ctrl+c":
		m.rememberPosition()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// completePrompt applies an accepted prompt value.
func (m *Model) completePrompt(value string) {
	switch m.kind {
	case promptSearch:
		m.completeSearch(value)
	case promptGoto:
		m.completeGoto(value)
	case promptEdit:
		m.completeEdit(value)
	case promptReload:
		if isYes(value) {
			m.doReload()
		} else {
			m.setStatus(statusInfo, "Reload cancelled")
		}
	}
}

func (m *Model) completeSearch(value string) {
	term := strings.TrimSpace(value)
	if term == "" {
		m.index.Clear()
		m.setStatus(statusInfo, "Search cleared")
		return
	}

	m.index.SetTerm(term)
	m.index.Recompute(m.buf.Lines(), m.vp.Selected())
	m.st.RecordTerm(term)

	if !m.index.HasMatches() {
		m.setStatus(statusErr, fmt.Sprintf("No matches for '%s'", term))
		return
	}
	m.advance(true)
}

func (m *Model) completeGoto(value string) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		m.setStatus(statusErr, "Invalid line")
		return
	}
	line := n - 1
	if line < 0 {
		line = 0
	}
	if last := m.buf.Len() - 1; line > last {
		line = last
	}
	if line < 0 {
		line = 0
	}
	m.vp.CenterOn(line, m.buf.Len())
	m.setStatus(statusOK, fmt.Sprintf("Jumped to %d", line+1))
}

func (m *Model) completeEdit(value string) {
	sel := m.vp.Selected()
	if !m.buf.Replace(sel, value) {
		m.setStatus(statusInfo, "Edit cancelled")
		return
	}
	m.modified = true
	if m.index.Active() {
		m.index.Recompute(m.buf.Lines(), sel)
	}
	m.setStatus(statusOK, fmt.Sprintf("Line %d updated", sel+1))
}

// doReload re-reads the file from disk, discarding unsaved changes.
func (m *Model) doReload() {
	buf, err := buffer.Load(m.path)
	if err != nil {
		m.setStatus(statusErr, "Reload failed: "+err.Error())
		return
	}
	m.buf = buf
	m.modified = false
	m.vp.Clamp(m.buf.Len())
	if m.index.Active() {
		m.index.Recompute(m.buf.Lines(), m.vp.Selected())
	}
	m.setStatus(statusOK, "Reloaded")
}

// isYes reports whether a confirmation answer means yes.
func isYes(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "y" || v == "yes"
}
