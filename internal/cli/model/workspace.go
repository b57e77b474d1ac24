// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/logging"
)

// WorkspaceModel is the Bubble Tea model for the interactive workspace.
type WorkspaceModel struct {
	// UI components
	help help.Model
	keys styles.WorkspaceKeyMap

	// State
	width         int
	height        int
	statusMessage string

	// Dependencies
	ctx           context.Context
	host          *cli.Host
	theme         *styles.Theme
	redraws       <-chan struct{}
	configChanges <-chan *config.Config
	reload        func() (*config.Config, error)
	copyText      func(string) error
}

// WorkspaceModelConfig holds the dependencies of the workspace model.
type WorkspaceModelConfig struct {
	Host *cli.Host
	// Redraws delivers asynchronous repaint requests, such as log lines
	// written from other goroutines. May be nil.
	Redraws <-chan struct{}
	// ConfigChanges delivers configurations reloaded by the file watcher. May be nil.
	ConfigChanges <-chan *config.Config
	// Reload re-reads the configuration on demand. May be nil.
	Reload func() (*config.Config, error)
	// CopyText writes to the system clipboard. Defaults to clipboard.WriteAll.
	CopyText func(string) error
}

// redrawMsg asks for a repaint.
type redrawMsg struct{}

// configChangedMsg carries a reloaded configuration.
type configChangedMsg struct {
	cfg *config.Config
	err error
}

// NewWorkspaceModel creates the interactive workspace model.
func NewWorkspaceModel(ctx context.Context, theme *styles.Theme, cfg WorkspaceModelConfig) WorkspaceModel {
	copyText := cfg.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	return WorkspaceModel{
		help:          styles.NewStyledHelp(theme),
		keys:          styles.DefaultWorkspaceKeyMap(),
		width:         80,
		height:        24,
		ctx:           logging.WithComponent(ctx, "workspace-tui"),
		host:          cfg.Host,
		theme:         theme,
		redraws:       cfg.Redraws,
		configChanges: cfg.ConfigChanges,
		reload:        cfg.Reload,
		copyText:      copyText,
	}
}

// Init implements tea.Model.
func (m WorkspaceModel) Init() tea.Cmd {
	return tea.Batch(m.waitForRedraw(), m.waitForConfig())
}

func (m WorkspaceModel) waitForRedraw() tea.Cmd {
	if m.redraws == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.redraws; !ok {
			return nil
		}
		return redrawMsg{}
	}
}

func (m WorkspaceModel) waitForConfig() tea.Cmd {
	if m.configChanges == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-m.configChanges
		if !ok {
			return nil
		}
		return configChangedMsg{cfg: cfg}
	}
}

// Update implements tea.Model.
func (m WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case redrawMsg:
		return m, m.waitForRedraw()

	case configChangedMsg:
		return m.applyConfig(msg), m.waitForConfig()
	}

	return m, nil
}

func (m WorkspaceModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var command string

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CopyCurl):
		return m.copyCurl(), nil

	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			m.statusMessage = "Reload not available"
			return m, nil
		}
		cfg, err := m.reload()
		return m.applyConfig(configChangedMsg{cfg: cfg, err: err}), nil

	case key.Matches(msg, m.keys.SplitRight):
		command = "split:right"
	case key.Matches(msg, m.keys.SplitDown):
		command = "split:down"
	case key.Matches(msg, m.keys.SplitLeft):
		command = "split:left"
	case key.Matches(msg, m.keys.SplitUp):
		command = "split:up"
	case key.Matches(msg, m.keys.FocusLeft):
		command = "focus:left"
	case key.Matches(msg, m.keys.FocusRight):
		command = "focus:right"
	case key.Matches(msg, m.keys.FocusUp):
		command = "focus:up"
	case key.Matches(msg, m.keys.FocusDown):
		command = "focus:down"
	case key.Matches(msg, m.keys.FocusNext):
		command = "focus:next"
	case key.Matches(msg, m.keys.Grow):
		command = "resize:increase"
	case key.Matches(msg, m.keys.Shrink):
		command = "resize:decrease"
	case key.Matches(msg, m.keys.ToggleLeft):
		command = "toggle:left"
	case key.Matches(msg, m.keys.ToggleBottom):
		command = "toggle:bottom"
	case key.Matches(msg, m.keys.ToggleRight):
		command = "toggle:right"
	case key.Matches(msg, m.keys.Zoom):
		command = "zoom:bottom"
	case key.Matches(msg, m.keys.SelectUp):
		command = "select:-1"
	case key.Matches(msg, m.keys.SelectDown):
		command = "select:1"
	case key.Matches(msg, m.keys.Open):
		command = "open"
	default:
		return m, nil
	}

	if err := m.host.Exec(m.ctx, command); err != nil {
		m.statusMessage = fmt.Sprintf("Error: %v", err)
	} else {
		m.statusMessage = ""
	}
	return m, nil
}

func (m WorkspaceModel) copyCurl() WorkspaceModel {
	req, ok := m.host.CurrentRequest()
	if !ok {
		m.statusMessage = "No request to copy"
		return m
	}
	if err := m.copyText(req.CurlCommand()); err != nil {
		log := logging.FromContext(m.ctx)
		log.Warn().Err(err).Msg("clipboard write failed")
		m.statusMessage = fmt.Sprintf("Error: %v", err)
		return m
	}
	m.statusMessage = "Copied curl command"
	return m
}

func (m WorkspaceModel) applyConfig(msg configChangedMsg) WorkspaceModel {
	log := logging.FromContext(m.ctx)
	if msg.err != nil || msg.cfg == nil {
		log.Warn().Err(msg.err).Msg("config reload failed")
		m.statusMessage = fmt.Sprintf("Error: config reload: %v", msg.err)
		return m
	}

	m.theme = styles.NewTheme(m.theme.Renderer(), msg.cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
	m.host.ApplySettings(m.ctx, msg.cfg, m.theme)
	m.statusMessage = "Config reloaded"
	log.Info().Msg("config reloaded")
	return m
}

// View implements tea.Model.
func (m WorkspaceModel) View() string {
	footer := m.help.View(m.keys)
	if m.statusMessage != "" {
		footer = m.theme.StatusBar.Render(m.statusMessage) + "\n" + footer
	}

	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 1 {
		return footer
	}
	return m.host.Render(m.width, bodyHeight) + "\n" + footer
}
