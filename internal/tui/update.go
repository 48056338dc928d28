package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/lined/internal/tui/modal"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseWheelMsg:
		return m.handleWheel(msg), nil

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		switch m.mode {
		case modePrompt:
			return m.updatePrompt(msg)
		case modeTheming:
			return m.updatePicker(msg), nil
		default:
			if mdl, cmd, handled := m.handleKeyPress(msg); handled {
				return mdl, cmd
			}
		}
		return m, nil
	}

	// Forward remaining messages (cursor blink) to an open prompt.
	if m.mode == modePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleResize applies a window size change and re-clamps the viewport.
// The first resize also restores the remembered position.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	contentH := m.height - statusRows
	if contentH < 1 {
		contentH = 1
	}
	m.vp.SetHeight(contentH, m.buf.Len())

	if !m.sized {
		m.sized = true
		if m.restoreLine >= 0 {
			m.vp.CenterOn(m.restoreLine, m.buf.Len())
		}
	}
}

// handleWheel scrolls the content without moving the selection off-screen.
func (m Model) handleWheel(msg tea.MouseWheelMsg) Model {
	if m.mode != modeNormal {
		return m
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.vp.Scroll(-3, m.buf.Len())
	case tea.MouseWheelDown:
		m.vp.Scroll(3, m.buf.Len())
	}
	return m
}

// updatePicker routes key presses to the theme picker overlay.
func (m Model) updatePicker(msg tea.KeyPressMsg) Model {
	switch action := m.picker.HandleMsg(msg).(type) {
	case modal.ActionClose:
		m.mode = modeNormal
	case modal.ActionSelect:
		m.mode = modeNormal
		m.applyTheme(action.Item.Name)
	}
	return m
}
