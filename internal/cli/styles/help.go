package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// WorkspaceKeyMap defines keybindings for the interactive workspace.
type WorkspaceKeyMap struct {
	SplitRight key.Binding
	SplitDown  key.Binding
	SplitLeft  key.Binding
	SplitUp    key.Binding

	FocusLeft  key.Binding
	FocusRight key.Binding
	FocusUp    key.Binding
	FocusDown  key.Binding
	FocusNext  key.Binding

	Grow   key.Binding
	Shrink key.Binding

	ToggleLeft   key.Binding
	ToggleBottom key.Binding
	ToggleRight  key.Binding
	Zoom         key.Binding

	SelectUp   key.Binding
	SelectDown key.Binding
	Open       key.Binding
	CopyCurl   key.Binding
	Reload     key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WorkspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitRight, k.SplitDown, k.FocusNext, k.ToggleLeft, k.ToggleBottom, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WorkspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitRight, k.SplitDown, k.SplitLeft, k.SplitUp},
		{k.FocusLeft, k.FocusRight, k.FocusUp, k.FocusDown, k.FocusNext},
		{k.Grow, k.Shrink, k.Zoom},
		{k.ToggleLeft, k.ToggleBottom, k.ToggleRight},
		{k.SelectUp, k.SelectDown, k.Open, k.CopyCurl},
		{k.Reload, k.Help, k.Quit},
	}
}

// DefaultWorkspaceKeyMap returns the default workspace keybindings.
func DefaultWorkspaceKeyMap() WorkspaceKeyMap {
	return WorkspaceKeyMap{
		SplitRight: key.NewBinding(
			key.WithKeys("ctrl+\\", "|"),
			key.WithHelp("|", "split right"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "split down"),
		),
		SplitLeft: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "split left"),
		),
		SplitUp: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "split up"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("alt+left", "alt+h"),
			key.WithHelp("alt+←/h", "focus left"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("alt+right", "alt+l"),
			key.WithHelp("alt+→/l", "focus right"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("alt+up", "alt+k"),
			key.WithHelp("alt+↑/k", "focus up"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("alt+down", "alt+j"),
			key.WithHelp("alt+↓/j", "focus down"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow pane"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("_"),
			key.WithHelp("_", "shrink pane"),
		),
		ToggleLeft: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "collections"),
		),
		ToggleBottom: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("ctrl+j", "console"),
		),
		ToggleRight: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "inspector"),
		),
		Zoom: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "zoom console"),
		),
		SelectUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous request"),
		),
		SelectDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next request"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open request"),
		),
		CopyCurl: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy as curl"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload config"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	re := theme.Renderer()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = re.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = re.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = re.NewStyle().Foreground(theme.Border)
	return h
}
