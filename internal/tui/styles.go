package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/xonecas/lined/internal/config"
	"github.com/xonecas/lined/internal/highlight"
	"github.com/xonecas/lined/internal/tui/modal"
)

// Styles holds the lipgloss styles for every UI role, derived from the
// active theme palette with optional config overrides applied.
type Styles struct {
	Header    lipgloss.Style
	Text      lipgloss.Style
	BgFill    lipgloss.Style
	Gutter    lipgloss.Style
	GutterSel lipgloss.Style
	Selected  lipgloss.Style
	Match     lipgloss.Style
	Tilde     lipgloss.Style

	StatusText lipgloss.Style
	StatusOK   lipgloss.Style
	StatusErr  lipgloss.Style

	PromptLabel lipgloss.Style
	PromptText  lipgloss.Style
}

// newStyles builds the style set from a palette, honoring theme overrides.
func newStyles(p highlight.Palette, overrides config.ThemeConfig) Styles {
	pick := func(override, derived string) color.Color {
		if override != "" {
			return lipgloss.Color(override)
		}
		return lipgloss.Color(derived)
	}

	bg := lipgloss.Color(p.Bg)
	fg := lipgloss.Color(p.Fg)

	return Styles{
		Header:    lipgloss.NewStyle().Background(lipgloss.Color(p.Border)).Foreground(fg).Bold(true),
		Text:      lipgloss.NewStyle().Background(bg).Foreground(fg),
		BgFill:    lipgloss.NewStyle().Background(bg),
		Gutter:    lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Dim)),
		GutterSel: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Accent)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(pick(overrides.SelectedBg, p.Muted)).
			Foreground(pick(overrides.SelectedFg, p.Fg)),
		Match: lipgloss.NewStyle().
			Background(pick(overrides.SearchBg, p.Accent)).
			Foreground(pick(overrides.SearchFg, p.Bg)),
		Tilde: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Dim)),

		StatusText: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Muted)),
		StatusOK:   lipgloss.NewStyle().Background(bg).Foreground(pick(overrides.StatusOk, p.Accent)),
		StatusErr:  lipgloss.NewStyle().Background(bg).Foreground(pick(overrides.StatusErr, p.Error)).Bold(true),

		PromptLabel: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Accent)).Bold(true),
		PromptText:  lipgloss.NewStyle().Background(bg).Foreground(fg),
	}
}

// modalColors adapts the palette for the theme picker overlay.
func modalColors(p highlight.Palette) modal.Colors {
	return modal.Colors{
		Fg: p.Fg, Bg: p.Bg, Dim: p.Muted,
		SelFg: p.Bg, SelBg: p.Accent, Border: p.Border,
	}
}
