package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/component"
	"github.com/bnema/dockyard/internal/ui/coordinator"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// MainWorkspaceID is the handle of the workspace created by NewHost.
const MainWorkspaceID entity.WorkspaceID = "main"

// ErrUnknownCommand is returned by Exec for commands it cannot parse.
var ErrUnknownCommand = errors.New("unknown command")

// ErrNoRequest is returned when a command needs a request and none is focused.
var ErrNoRequest = errors.New("no request in the focused pane")

// HostOptions holds the inputs of NewHost.
type HostOptions struct {
	Settings *config.Config
	Theme    *styles.Theme
	Requests []component.Request
	// Console is docked at the bottom. A fresh one is created when nil.
	Console *component.ConsolePanel
	// OnRedraw is called whenever the workspace needs repainting. May be nil.
	OnRedraw func()
}

// Host assembles the HTTP client workspace: a pane tree of request editors,
// the collection on the left, the console at the bottom and the inspector
// on the right.
type Host struct {
	Registry   *coordinator.Registry
	Workspace  *coordinator.Workspace
	Collection *component.CollectionPanel
	Console    *component.ConsolePanel
	Inspector  *component.InspectorPanel

	renderer *layout.Renderer
	onRedraw func()
	nextPane int
	nextItem int
}

// NewHost builds the workspace and docks its panels.
func NewHost(ctx context.Context, opts HostOptions) (*Host, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultConfig()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(nil, settings)
	}
	console := opts.Console
	if console == nil {
		console = component.NewConsolePanel(component.DefaultConsoleLines)
	}

	h := &Host{
		Registry:   coordinator.NewRegistry(),
		Collection: component.NewCollectionPanel(opts.Requests),
		Console:    console,
		onRedraw:   opts.OnRedraw,
	}
	h.Inspector = component.NewInspectorPanel(h.CurrentRequest)
	h.renderer = layout.NewRenderer(ctx, theme.Layout(), settings.Workspace.EmptyStateText)

	h.Workspace = coordinator.NewWorkspace(ctx, coordinator.WorkspaceConfig{
		ID:         MainWorkspaceID,
		Settings:   settings,
		GenerateID: h.generatePaneID,
		OnRedraw:   h.redraw,
	})
	h.Registry.Register(h.Workspace)

	panels := []struct {
		placement entity.Placement
		panel     entity.Panel
	}{
		{entity.PlacementLeft, h.Collection},
		{entity.PlacementBottom, h.Console},
		{entity.PlacementRight, h.Inspector},
	}
	for _, p := range panels {
		if err := h.Workspace.AddPanel(ctx, p.placement, p.panel); err != nil {
			return nil, fmt.Errorf("dock %s: %w", p.panel.PanelID(), err)
		}
	}
	return h, nil
}

// Render paints the workspace into width x height cells.
func (h *Host) Render(width, height int) string {
	return h.Workspace.Render(h.renderer, width, height)
}

// ApplySettings swaps in reloaded settings and theme.
func (h *Host) ApplySettings(ctx context.Context, settings *config.Config, theme *styles.Theme) {
	if settings == nil {
		return
	}
	if theme == nil {
		theme = styles.NewTheme(nil, settings)
	}
	h.renderer = layout.NewRenderer(ctx, theme.Layout(), settings.Workspace.EmptyStateText)
	h.Workspace.UpdateSettings(settings)
}

// CurrentRequest returns the request edited in the focused pane.
func (h *Host) CurrentRequest() (component.Request, bool) {
	editor, ok := h.currentEditor()
	if !ok {
		return component.Request{}, false
	}
	return editor.Request(), true
}

// Close releases every registered workspace and its panel subscriptions.
func (h *Host) Close(ctx context.Context) {
	for _, id := range h.Registry.IDs() {
		h.Registry.Close(ctx, id)
	}
}

// Exec runs one command. Commands are "verb" or "verb:argument":
//
//	split:left|right|up|down
//	focus:left|right|up|down|next|prev
//	resize:increase|decrease|increase_left|...|decrease_down
//	dock-size:<placement>:<cells>
//	toggle:left|bottom|right
//	panel:<panel id>
//	zoom[:placement]
//	new[:url]
//	open
//	select:<delta>
//	filter:<pattern>
//	log:<text>
func (h *Host) Exec(ctx context.Context, command string) error {
	verb, arg, _ := strings.Cut(strings.TrimSpace(command), ":")
	log := logging.FromContext(ctx)
	log.Debug().Str("verb", verb).Str("arg", arg).Msg("exec command")

	switch verb {
	case "split":
		dir, err := entity.ParseSplitDirection(arg)
		if err != nil {
			return err
		}
		pane, err := h.Workspace.SplitActivePane(ctx, dir)
		if err != nil {
			return err
		}
		log.Debug().Str("pane_id", string(pane.ID)).Msg("pane split")
		return nil

	case "focus":
		switch arg {
		case "next":
			h.Workspace.CycleFocus(true)
		case "prev":
			h.Workspace.CycleFocus(false)
		case "left", "right", "up", "down":
			h.Workspace.FocusDirection(ctx, usecase.NavigateDirection(arg))
		default:
			return fmt.Errorf("focus %q: %w", arg, ErrUnknownCommand)
		}
		return nil

	case "resize":
		dir := usecase.ResizeDirection(arg)
		if !dir.Valid() {
			return fmt.Errorf("resize %q: %w", arg, ErrUnknownCommand)
		}
		err := h.Workspace.ResizeActivePane(ctx, dir)
		if errors.Is(err, usecase.ErrNothingToResize) {
			return nil
		}
		return err

	case "dock-size":
		name, value, ok := strings.Cut(arg, ":")
		if !ok {
			return fmt.Errorf("dock-size %q: %w", arg, ErrUnknownCommand)
		}
		placement, err := entity.ParsePlacement(name)
		if err != nil {
			return err
		}
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			return fmt.Errorf("dock-size %q: size must be a positive number of cells", arg)
		}
		err = h.Workspace.ResizeDock(ctx, placement, size)
		if errors.Is(err, usecase.ErrNothingToResize) {
			return nil
		}
		return err

	case "toggle":
		placement, err := entity.ParsePlacement(arg)
		if err != nil {
			return err
		}
		_, err = h.Workspace.ToggleDock(ctx, placement)
		return err

	case "panel":
		_, err := h.Workspace.TogglePanel(ctx, arg)
		return err

	case "zoom":
		placement := entity.PlacementBottom
		if arg != "" {
			p, err := entity.ParsePlacement(arg)
			if err != nil {
				return err
			}
			placement = p
		}
		h.Workspace.ToggleZoom(placement)
		return nil

	case "new":
		h.openRequest(component.Request{Method: component.MethodGet, URL: arg})
		return nil

	case "open":
		req, ok := h.Collection.Selected()
		if !ok {
			return ErrNoRequest
		}
		h.openRequest(req)
		return nil

	case "select":
		delta, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("select %q: %w", arg, err)
		}
		h.Collection.Move(delta)
		return nil

	case "filter":
		h.Collection.SetFilter(arg)
		return nil

	case "log":
		h.Console.Println(arg)
		return nil
	}
	return fmt.Errorf("%q: %w", command, ErrUnknownCommand)
}

// ExecAll runs commands in order and stops at the first failure.
func (h *Host) ExecAll(ctx context.Context, commands []string) error {
	for _, c := range commands {
		if err := h.Exec(ctx, c); err != nil {
			return fmt.Errorf("command %q: %w", c, err)
		}
	}
	return nil
}

// openRequest adds an editor for req to the focused pane.
func (h *Host) openRequest(req component.Request) {
	h.nextItem++
	editor := component.NewRequestEditor(fmt.Sprintf("req-%d", h.nextItem), req)
	editor.OnChange(h.redraw)

	pane := h.Workspace.ActivePane()
	pane.AddItem(editor)
	pane.Focus()
	h.redraw()
}

func (h *Host) currentEditor() (*component.RequestEditor, bool) {
	pane := h.Workspace.ActivePane()
	// Panels outlive the workspace; a closed one has no current request.
	if _, live := h.Registry.WorkspaceOf(pane); !live {
		return nil, false
	}
	item, ok := pane.ActiveItem()
	if !ok {
		return nil, false
	}
	editor, ok := item.(*component.RequestEditor)
	return editor, ok
}

func (h *Host) generatePaneID() string {
	h.nextPane++
	return fmt.Sprintf("pane-%d", h.nextPane)
}

func (h *Host) redraw() {
	if h.onRedraw != nil {
		h.onRedraw()
	}
}
