// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	renderer *lipgloss.Renderer

	// Base colors (from config.AppearanceConfig)
	Text         lipgloss.Color
	Muted        lipgloss.Color
	Border       lipgloss.Color
	ActiveBorder lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style
	StatusBar  lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates a Theme from config. A nil renderer uses the default one.
func NewTheme(re *lipgloss.Renderer, cfg *config.Config) *Theme {
	if re == nil {
		re = lipgloss.DefaultRenderer()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := cfg.Appearance

	t := &Theme{
		renderer:     re,
		Text:         lipgloss.Color(a.TextColor),
		Muted:        lipgloss.Color(a.MutedColor),
		Border:       lipgloss.Color(a.BorderColor),
		ActiveBorder: lipgloss.Color(a.ActiveBorderColor),

		// Semantic colors (not in config)
		Error:   lipgloss.Color("#ef4444"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.buildStyles()
	return t
}

// Renderer returns the lipgloss renderer the styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

func (t *Theme) buildStyles() {
	re := t.renderer

	t.Title = re.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = re.NewStyle().
		Foreground(t.Text)

	t.Subtle = re.NewStyle().
		Foreground(t.Muted)

	t.Highlight = re.NewStyle().
		Foreground(t.ActiveBorder).
		Bold(true)

	t.ErrorStyle = re.NewStyle().
		Foreground(t.Error)

	t.StatusBar = re.NewStyle().
		Foreground(t.Muted)

	t.HelpKey = re.NewStyle().
		Foreground(t.ActiveBorder)

	t.HelpDesc = re.NewStyle().
		Foreground(t.Muted)
}

// Layout returns the styles used to paint the workspace.
func (t *Theme) Layout() layout.Styles {
	re := t.renderer
	return layout.Styles{
		Border:       re.NewStyle().Foreground(t.Border),
		Header:       re.NewStyle().Foreground(t.Muted),
		ActiveHeader: re.NewStyle().Foreground(t.ActiveBorder).Bold(true),
		Empty:        re.NewStyle().Foreground(t.Muted).Italic(true),
	}
}
