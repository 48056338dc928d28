// Package tui implements the terminal UI: a line-oriented file viewer with
// single-line editing, incremental case-insensitive search and theme picking.
package tui

import (
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/lined/internal/buffer"
	"github.com/xonecas/lined/internal/config"
	"github.com/xonecas/lined/internal/highlight"
	"github.com/xonecas/lined/internal/search"
	"github.com/xonecas/lined/internal/store"
	"github.com/xonecas/lined/internal/tui/modal"
	"github.com/xonecas/lined/internal/tui/prompt"
	"github.com/xonecas/lined/internal/viewport"
)

// gutterWidth is the width of the "|12345| " line-number gutter.
const gutterWidth = 8

// statusRows is the number of rows reserved outside the content area:
// one header row and one status/prompt row.
const statusRows = 2

type sessionMode int

const (
	modeNormal sessionMode = iota
	modePrompt
	modeTheming
)

type promptKind int

const (
	promptSearch promptKind = iota
	promptGoto
	promptEdit
	promptReload
	promptQuit
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusOK
	statusErr
)

// Model is the top-level bubbletea model.
type Model struct {
	path    string
	name    string
	cfg     *config.Config
	cfgPath string

	buf   *buffer.Buffer
	vp    viewport.Viewport
	index *search.Index
	st    *store.Store

	mode   sessionMode
	kind   promptKind
	prompt prompt.Model
	picker modal.Model

	palette highlight.Palette
	styles  Styles

	width  int
	height int
	sized  bool

	// restoreLine is the remembered position applied on the first resize,
	// -1 when there is nothing to restore.
	restoreLine int

	modified bool
	status   string
	level    statusLevel
}

// New loads the file at path and builds the initial model. st may be nil
// (persistence disabled).
func New(path string, cfg *config.Config, cfgPath string, st *store.Store) (Model, error) {
	buf, err := buffer.Load(path)
	if err != nil {
		return Model{}, err
	}

	palette := highlight.ThemePalette(cfg.UI.SyntaxThemeOrDefault())

	m := Model{
		path:        path,
		name:        filepath.Base(path),
		cfg:         cfg,
		cfgPath:     cfgPath,
		buf:         buf,
		index:       search.New(),
		st:          st,
		palette:     palette,
		styles:      newStyles(palette, cfg.Theme),
		restoreLine: -1,
	}
	if line, ok := st.LastLine(path); ok {
		m.restoreLine = line
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// setStatus replaces the status line message.
func (m *Model) setStatus(level statusLevel, msg string) {
	m.status = msg
	m.level = level
}

// rememberPosition persists the current selection for the next session.
func (m *Model) rememberPosition() {
	m.st.SetLastLine(m.path, m.vp.Selected())
}
