package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/lined/internal/config"
	"github.com/xonecas/lined/internal/highlight"
	"github.com/xonecas/lined/internal/tui/modal"
)

// handleKeyPress processes normal-mode key events. Returns (model, cmd, true)
// if handled. Navigation keys are matched on the keystroke, letter commands
// on the typed text.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	if handler := m.keystrokeHandlers()[msg.Keystroke()]; handler != nil {
		return handler(m)
	}
	if handler := m.textHandlers()[msg.Text]; handler != nil {
		return handler(m)
	}
	return Model{}, nil, false
}

func (m *Model) keystrokeHandlers() map[string]func(*Model) (Model, tea.Cmd, bool) {
	return map[string]func(*Model) (Model, tea.Cmd, bool){
		"up":        (*Model).handleUp,
		"down":      (*Model).handleDown,
		"pgup":      (*Model).handlePageUp,
		"pgdown":    (*Model).handlePageDown,
		"ctrl+home": (*Model).handleTop,
		"ctrl+end":  (*Model).handleBottom,
		"ctrl+c":    (*Model).handleForceQuit,
		"esc":       (*Model).handleQuit,
	}
}

func (m *Model) textHandlers() map[string]func(*Model) (Model, tea.Cmd, bool) {
	return map[string]func(*Model) (Model, tea.Cmd, bool){
		"q": (*Model).handleQuit,
		"k": (*Model).handleUp,
		"j": (*Model).handleDown,
		"g": (*Model).handleGoto,
		"e": (*Model).handleEdit,
		"s": (*Model).handleSave,
		"/": (*Model).handleSearch,
		"n": (*Model).handleNext,
		"N": (*Model).handlePrev,
		"r": (*Model).handleReload,
		"t": (*Model).handleThemePicker,
	}
}

// -- Navigation --------------------------------------------------------------

func (m *Model) handleUp() (Model, tea.Cmd, bool) {
	m.vp.Move(-1, m.buf.Len())
	return *m, nil, true
}

func (m *Model) handleDown() (Model, tea.Cmd, bool) {
	m.vp.Move(1, m.buf.Len())
	return *m, nil, true
}

func (m *Model) handlePageUp() (Model, tea.Cmd, bool) {
	m.vp.Page(-1, m.buf.Len())
	return *m, nil, true
}

func (m *Model) handlePageDown() (Model, tea.Cmd, bool) {
	m.vp.Page(1, m.buf.Len())
	return *m, nil, true
}

func (m *Model) handleTop() (Model, tea.Cmd, bool) {
	m.vp.CenterOn(0, m.buf.Len())
	return *m, nil, true
}

func (m *Model) handleBottom() (Model, tea.Cmd, bool) {
	m.vp.CenterOn(m.buf.Len()-1, m.buf.Len())
	return *m, nil, true
}

// -- Quit --------------------------------------------------------------------

func (m *Model) handleQuit() (Model, tea.Cmd, bool) {
	if m.modified {
		hunks := m.buf.DiffStat(m.path)
		mdl, cmd := m.openPrompt(promptQuit,
			fmt.Sprintf("Discard %d unsaved change(s) and quit? (y/n)", hunks), "")
		return mdl, cmd, true
	}
	m.rememberPosition()
	return *m, tea.Quit, true
}

func (m *Model) handleForceQuit() (Model, tea.Cmd, bool) {
	m.rememberPosition()
	return *m, tea.Quit, true
}

// -- File operations ---------------------------------------------------------

func (m *Model) handleSave() (Model, tea.Cmd, bool) {
	if err := m.buf.Save(m.path); err != nil {
		log.Warn().Err(err).Str("path", m.path).Msg("save failed")
		m.setStatus(statusErr, "Save failed: "+err.Error())
		return *m, nil, true
	}
	m.modified = false
	m.setStatus(statusOK, "Saved")
	return *m, nil, true
}

func (m *Model) handleReload() (Model, tea.Cmd, bool) {
	if m.modified {
		hunks := m.buf.DiffStat(m.path)
		mdl, cmd := m.openPrompt(promptReload,
			fmt.Sprintf("Discard %d unsaved change(s) and reload? (y/n)", hunks), "")
		return mdl, cmd, true
	}
	m.doReload()
	return *m, nil, true
}

// -- Search ------------------------------------------------------------------

func (m *Model) handleSearch() (Model, tea.Cmd, bool) {
	initial := m.index.Term()
	if initial == "" {
		if term, ok := m.st.LastTerm(); ok {
			initial = term
		}
	}
	mdl, cmd := m.openPrompt(promptSearch, "Search:", initial)
	return mdl, cmd, true
}

func (m *Model) handleNext() (Model, tea.Cmd, bool) {
	m.advance(true)
	return *m, nil, true
}

func (m *Model) handlePrev() (Model, tea.Cmd, bool) {
	m.advance(false)
	return *m, nil, true
}

// advance moves to the next or previous match and reports the new position.
func (m *Model) advance(forward bool) {
	pos, ok := m.index.Advance(forward)
	if !ok {
		m.setStatus(statusErr, "No matches")
		return
	}
	m.vp.CenterOn(pos.Line, m.buf.Len())
	m.setStatus(statusOK, fmt.Sprintf("Match %d/%d at %d", pos.Ordinal, pos.Total, pos.Line+1))
}

// -- Prompt openers ----------------------------------------------------------

func (m *Model) handleGoto() (Model, tea.Cmd, bool) {
	mdl, cmd := m.openPrompt(promptGoto, "Goto line:", "")
	return mdl, cmd, true
}

func (m *Model) handleEdit() (Model, tea.Cmd, bool) {
	mdl, cmd := m.openPrompt(promptEdit, "Edit:", m.buf.Line(m.vp.Selected()))
	return mdl, cmd, true
}

// -- Theme picker ------------------------------------------------------------

func (m *Model) handleThemePicker() (Model, tea.Cmd, bool) {
	items := make([]modal.Item, 0, len(highlight.ThemeNames()))
	for _, name := range highlight.ThemeNames() {
		desc := ""
		if name == m.cfg.UI.SyntaxThemeOrDefault() {
			desc = "current"
		}
		items = append(items, modal.Item{Name: name, Desc: desc})
	}
	m.picker = modal.New(items, "Theme: ", modalColors(m.palette))
	m.mode = modeTheming
	return *m, nil, true
}

// applyTheme switches the palette, rebuilds styles and persists the choice.
func (m *Model) applyTheme(name string) {
	m.cfg.UI.SyntaxTheme = name
	m.palette = highlight.ThemePalette(name)
	m.styles = newStyles(m.palette, m.cfg.Theme)
	if m.cfgPath != "" {
		if err := config.Save(m.cfgPath, m.cfg); err != nil {
			log.Warn().Err(err).Msg("failed to persist theme choice")
		}
	}
	m.setStatus(statusOK, "Theme: "+name)
}
