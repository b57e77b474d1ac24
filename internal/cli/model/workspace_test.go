package model

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/component"
)

type modelFixture struct {
	model   WorkspaceModel
	host    *cli.Host
	copied  []string
	copyErr error
}

func newModelFixture(t *testing.T) *modelFixture {
	t.Helper()
	ctx := context.Background()
	settings := config.DefaultConfig()
	theme := styles.NewTheme(lipgloss.NewRenderer(io.Discard), settings)

	host, err := cli.NewHost(ctx, cli.HostOptions{
		Settings: settings,
		Theme:    theme,
		Requests: []component.Request{
			{Name: "List users", Method: component.MethodGet, URL: "https://api.example.com/users"},
		},
	})
	require.NoError(t, err)

	f := &modelFixture{host: host}
	f.model = NewWorkspaceModel(ctx, theme, WorkspaceModelConfig{
		Host: host,
		CopyText: func(s string) error {
			if f.copyErr != nil {
				return f.copyErr
			}
			f.copied = append(f.copied, s)
			return nil
		},
	})
	f.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	return f
}

func (f *modelFixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(WorkspaceModel)
	return cmd
}

func (f *modelFixture) press(keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+j":
			msg = tea.KeyMsg{Type: tea.KeyCtrlJ}
		case "ctrl+r":
			msg = tea.KeyMsg{Type: tea.KeyCtrlR}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		f.send(msg)
	}
}

func TestWorkspaceModel_SplitAndFocus(t *testing.T) {
	f := newModelFixture(t)

	f.press("|", "-")
	assert.Equal(t, "h[pane-1 v[pane-2 pane-3]]", f.host.Workspace.Group().String())
	assert.Equal(t, entity.PaneID("pane-3"), f.host.Workspace.ActivePane().ID)

	f.press("tab")
	assert.Equal(t, entity.PaneID("pane-1"), f.host.Workspace.ActivePane().ID)
}

func TestWorkspaceModel_ViewFitsWindow(t *testing.T) {
	f := newModelFixture(t)

	view := f.model.View()

	assert.Len(t, strings.Split(view, "\n"), 30)
	assert.Contains(t, view, "Collections (1)")
	assert.Contains(t, view, "split right")
}

func TestWorkspaceModel_OpenAndCopyCurl(t *testing.T) {
	f := newModelFixture(t)

	f.press("y")
	assert.Equal(t, "No request to copy", f.model.statusMessage)
	assert.Empty(t, f.copied)

	f.press("enter", "y")
	require.Len(t, f.copied, 1)
	assert.Equal(t, "curl -X GET 'https://api.example.com/users'", f.copied[0])
	assert.Equal(t, "Copied curl command", f.model.statusMessage)

	f.copyErr = errors.New("no clipboard")
	f.press("y")
	assert.Contains(t, f.model.statusMessage, "no clipboard")
}

func TestWorkspaceModel_ToggleConsole(t *testing.T) {
	f := newModelFixture(t)

	f.press("ctrl+j")
	bottom, _ := f.host.Workspace.Dock(entity.PlacementBottom)
	assert.True(t, bottom.IsOpen())

	f.press("z")
	assert.True(t, f.host.Console.IsZoomed())
}

func TestWorkspaceModel_HelpToggle(t *testing.T) {
	f := newModelFixture(t)

	f.press("?")
	assert.True(t, f.model.help.ShowAll)
	assert.Contains(t, f.model.View(), "split up")
}

func TestWorkspaceModel_Reload(t *testing.T) {
	f := newModelFixture(t)

	f.press("ctrl+r")
	assert.Equal(t, "Reload not available", f.model.statusMessage)

	reloaded := config.DefaultConfig()
	reloaded.Workspace.EmptyStateText = "Reloaded text"
	f.model.reload = func() (*config.Config, error) { return reloaded, nil }
	f.press("ctrl+r")
	assert.Equal(t, "Config reloaded", f.model.statusMessage)
	assert.Contains(t, f.model.View(), "Reloaded text")

	f.model.reload = func() (*config.Config, error) { return nil, errors.New("bad toml") }
	f.press("ctrl+r")
	assert.Contains(t, f.model.statusMessage, "bad toml")
}

func TestWorkspaceModel_AsyncMessages(t *testing.T) {
	redraws := make(chan struct{}, 1)
	changes := make(chan *config.Config, 1)
	f := newModelFixture(t)
	f.model.redraws = redraws
	f.model.configChanges = changes

	redraws <- struct{}{}
	msg := f.model.waitForRedraw()()
	assert.IsType(t, redrawMsg{}, msg)
	assert.NotNil(t, f.send(msg))

	cfg := config.DefaultConfig()
	changes <- cfg
	msg = f.model.waitForConfig()()
	require.IsType(t, configChangedMsg{}, msg)
	assert.NotNil(t, f.send(msg))
	assert.Equal(t, "Config reloaded", f.model.statusMessage)
}

func TestWorkspaceModel_Quit(t *testing.T) {
	f := newModelFixture(t)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
