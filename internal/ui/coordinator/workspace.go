package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/layout"
)

var (
	// ErrNoDock is returned for placements the workspace has no dock for.
	ErrNoDock = errors.New("no dock at placement")
	// ErrWorkspaceClosed is returned by operations on a closed workspace.
	ErrWorkspaceClosed = errors.New("workspace closed")
)

// dockPlacements lists the docks a workspace owns, in paint order.
var dockPlacements = []entity.Placement{
	entity.PlacementLeft,
	entity.PlacementBottom,
	entity.PlacementRight,
}

// WorkspaceConfig holds the dependencies of a Workspace.
type WorkspaceConfig struct {
	ID         entity.WorkspaceID
	PanesUC    *usecase.ManagePanesUseCase
	DocksUC    *usecase.ManageDocksUseCase
	Settings   *config.Config
	GenerateID func() string

	// OnRedraw is called after every visible mutation. May be nil.
	OnRedraw func()
	// NewItem creates the initial item of a freshly split pane. May be nil,
	// in which case new panes start empty.
	NewItem func(paneID entity.PaneID) entity.Item
}

// Workspace hosts one pane tree and the docks around it and routes user
// commands to them. It is driven from a single UI goroutine.
type Workspace struct {
	id       entity.WorkspaceID
	group    *entity.PaneGroup
	docks    map[entity.Placement]*entity.Dock
	active   *entity.Pane
	panesUC  *usecase.ManagePanesUseCase
	docksUC  *usecase.ManageDocksUseCase
	settings *config.Config
	newItem  func(entity.PaneID) entity.Item
	onRedraw func()

	rects  []entity.PaneRect
	closed bool
}

// NewWorkspace creates a workspace with a single empty pane and closed docks
// at the left, bottom and right edges.
func NewWorkspace(ctx context.Context, cfg WorkspaceConfig) *Workspace {
	log := logging.FromContext(logging.WithWorkspaceID(ctx, string(cfg.ID)))

	settings := cfg.Settings
	if settings == nil {
		settings = config.DefaultConfig()
	}
	generateID := cfg.GenerateID
	if generateID == nil {
		generateID = sequentialIDs(string(cfg.ID) + "-pane")
	}
	panesUC := cfg.PanesUC
	if panesUC == nil {
		panesUC = usecase.NewManagePanesUseCase(generateID)
	}
	docksUC := cfg.DocksUC
	if docksUC == nil {
		docksUC = usecase.NewManageDocksUseCase()
	}

	root := entity.NewPane(entity.PaneID(generateID()), cfg.ID)

	w := &Workspace{
		id:       cfg.ID,
		group:    entity.NewPaneGroup(root),
		docks:    make(map[entity.Placement]*entity.Dock, len(dockPlacements)),
		active:   root,
		panesUC:  panesUC,
		docksUC:  docksUC,
		settings: settings,
		newItem:  cfg.NewItem,
		onRedraw: cfg.OnRedraw,
	}

	for _, placement := range dockPlacements {
		dock := entity.NewDock(placement, cfg.ID, w.requestRedraw)
		dockCfg := w.dockConfig(placement)
		dock.SetDefaultSize(dockCfg.Size)
		dock.SetOpen(dockCfg.Open)
		w.docks[placement] = dock
	}

	if w.newItem != nil {
		if item := w.newItem(root.ID); item != nil {
			root.AddItem(item)
		}
	}

	log.Debug().Str("root_pane", string(root.ID)).Msg("workspace created")
	return w
}

// ID returns the workspace lookup handle.
func (w *Workspace) ID() entity.WorkspaceID {
	return w.id
}

// Group returns the pane tree.
func (w *Workspace) Group() *entity.PaneGroup {
	return w.group
}

// ActivePane returns the focused pane.
func (w *Workspace) ActivePane() *entity.Pane {
	return w.active
}

// Dock returns the dock at placement.
func (w *Workspace) Dock(placement entity.Placement) (*entity.Dock, bool) {
	dock, ok := w.docks[placement]
	return dock, ok
}

// Closed reports whether the workspace was closed.
func (w *Workspace) Closed() bool {
	return w.closed
}

// UpdateSettings applies reloaded settings. Dock sizes change; dock
// visibility is left as the user set it.
func (w *Workspace) UpdateSettings(settings *config.Config) {
	if settings == nil {
		return
	}
	w.settings = settings
	for _, placement := range dockPlacements {
		w.docks[placement].SetDefaultSize(w.dockConfig(placement).Size)
	}
	w.requestRedraw()
}

// SplitActivePane splits the focused pane and focuses the new one.
func (w *Workspace) SplitActivePane(ctx context.Context, dir entity.SplitDirection) (*entity.Pane, error) {
	if w.closed {
		return nil, ErrWorkspaceClosed
	}
	ctx = logging.WithPaneID(ctx, string(w.active.ID))

	out, err := w.panesUC.Split(ctx, usecase.SplitPaneInput{
		Group:      w.group,
		TargetPane: w.active,
		Direction:  dir,
	})
	if err != nil {
		return nil, err
	}

	if w.newItem != nil {
		if item := w.newItem(out.NewPane.ID); item != nil {
			out.NewPane.AddItem(item)
		}
	}
	w.focus(out.NewPane)
	w.requestRedraw()
	return out.NewPane, nil
}

// ActivatePane focuses the pane with the given ID.
func (w *Workspace) ActivatePane(id entity.PaneID) error {
	pane := w.group.FindPane(id)
	if pane == nil {
		return fmt.Errorf("activate pane %s: %w", id, entity.ErrPaneNotFound)
	}
	if pane == w.active {
		return nil
	}
	w.focus(pane)
	w.requestRedraw()
	return nil
}

// CycleFocus moves focus to the next pane in tree order, or the previous one
// when forward is false, wrapping around.
func (w *Workspace) CycleFocus(forward bool) *entity.Pane {
	var panes []*entity.Pane
	current := -1
	for p := range w.group.Panes() {
		if p == w.active {
			current = len(panes)
		}
		panes = append(panes, p)
	}
	if len(panes) < 2 {
		return w.active
	}

	next := (current + 1) % len(panes)
	if !forward {
		next = (current - 1 + len(panes)) % len(panes)
	}
	w.focus(panes[next])
	w.requestRedraw()
	return w.active
}

// FocusDirection moves focus to the neighbouring pane in dir. It uses the
// geometry of the last Render and falls back to the tree structure.
func (w *Workspace) FocusDirection(ctx context.Context, dir usecase.NavigateDirection) bool {
	var target *entity.Pane

	if len(w.rects) > 0 {
		out, err := w.panesUC.NavigateFocusGeometric(ctx, usecase.GeometricNavigationInput{
			ActivePaneID: w.active.ID,
			PaneRects:    w.rects,
			Direction:    dir,
		})
		if err == nil && out.Found {
			target = w.group.FindPane(out.TargetPaneID)
		}
	}
	if target == nil {
		target = w.panesUC.AdjacentPane(w.group, w.active, dir)
	}
	if target == nil || target == w.active {
		return false
	}

	w.focus(target)
	w.requestRedraw()
	return true
}

// ResizeActivePane moves a divider next to the focused pane by the configured step.
func (w *Workspace) ResizeActivePane(ctx context.Context, dir usecase.ResizeDirection) error {
	err := w.panesUC.Resize(
		logging.WithPaneID(ctx, string(w.active.ID)),
		w.group,
		w.active,
		dir,
		w.settings.Workspace.ResizeStepPercent,
		w.settings.Workspace.MinPanePercent,
	)
	if err != nil {
		return err
	}
	w.requestRedraw()
	return nil
}

// AddPanel docks panel at placement. When the dock is configured open and has
// no active panel yet, the new panel becomes active.
func (w *Workspace) AddPanel(ctx context.Context, placement entity.Placement, panel entity.Panel) error {
	if w.closed {
		return ErrWorkspaceClosed
	}
	dock, ok := w.docks[placement]
	if !ok {
		return fmt.Errorf("add panel at %s: %w", placement, ErrNoDock)
	}

	idx, err := w.docksUC.RegisterPanel(ctx, dock, panel)
	if err != nil {
		return err
	}
	if _, hasActive := dock.ActivePanelIndex(); dock.IsOpen() && !hasActive {
		dock.ActivatePanel(idx)
	}
	return nil
}

// RemovePanel removes the panel with the given ID from whichever dock holds it.
func (w *Workspace) RemovePanel(ctx context.Context, panelID string) error {
	dock, ok := w.dockOf(panelID)
	if !ok {
		return fmt.Errorf("remove panel %s: %w", panelID, usecase.ErrPanelNotFound)
	}
	return w.docksUC.UnregisterPanel(ctx, dock, panelID)
}

// ToggleDock opens or closes the dock at placement.
func (w *Workspace) ToggleDock(ctx context.Context, placement entity.Placement) (bool, error) {
	dock, ok := w.docks[placement]
	if !ok {
		return false, fmt.Errorf("toggle dock %s: %w", placement, ErrNoDock)
	}
	return w.docksUC.ToggleDock(ctx, dock)
}

// TogglePanel shows or hides the panel with the given ID.
func (w *Workspace) TogglePanel(ctx context.Context, panelID string) (bool, error) {
	dock, ok := w.dockOf(panelID)
	if !ok {
		return false, fmt.Errorf("toggle panel %s: %w", panelID, usecase.ErrPanelNotFound)
	}
	return w.docksUC.TogglePanel(ctx, dock, panelID)
}

// FocusPanel shows the panel with the given ID.
func (w *Workspace) FocusPanel(ctx context.Context, panelID string) error {
	dock, ok := w.dockOf(panelID)
	if !ok {
		return fmt.Errorf("focus panel %s: %w", panelID, usecase.ErrPanelNotFound)
	}
	return w.docksUC.FocusPanel(ctx, dock, panelID)
}

// ResizeDock sets the preferred size, in cells, of the active panel of the
// dock at placement.
func (w *Workspace) ResizeDock(ctx context.Context, placement entity.Placement, size int) error {
	dock, ok := w.docks[placement]
	if !ok {
		return fmt.Errorf("resize dock %s: %w", placement, ErrNoDock)
	}
	return w.docksUC.ResizePanel(ctx, dock, size)
}

// ToggleZoom zooms or unzooms the visible panel of the dock at placement.
// It returns whether the panel is zoomed afterwards.
func (w *Workspace) ToggleZoom(placement entity.Placement) bool {
	dock, ok := w.docks[placement]
	if !ok {
		return false
	}
	panel, ok := dock.VisiblePanel()
	if !ok {
		return false
	}
	zoomer, ok := panel.(entity.Zoomer)
	if !ok {
		return false
	}
	zoomer.SetZoomed(!zoomer.IsZoomed())
	w.requestRedraw()
	return zoomer.IsZoomed()
}

// Describe returns the render description of the whole workspace. A zoomed
// dock panel replaces everything; otherwise the left dock, a column holding the
// pane tree above the bottom dock, and the right dock are laid out in a row.
func (w *Workspace) Describe() entity.RenderNode {
	for _, placement := range dockPlacements {
		if panel, ok := w.docks[placement].ZoomedPanel(); ok {
			return entity.RenderNode{Kind: entity.NodeLeaf, Content: panel, Focused: true}
		}
	}

	center := markFocused(w.group.Describe(), w.active.ID)
	column := entity.RenderNode{
		Kind: entity.NodeContainer,
		Axis: entity.AxisVertical,
		Children: []entity.RenderChild{
			{Fraction: 1, Node: center},
			{Node: w.docks[entity.PlacementBottom].Describe()},
		},
	}
	return entity.RenderNode{
		Kind: entity.NodeContainer,
		Axis: entity.AxisHorizontal,
		Children: []entity.RenderChild{
			{Node: w.docks[entity.PlacementLeft].Describe()},
			{Fraction: 1, Node: column},
			{Node: w.docks[entity.PlacementRight].Describe()},
		},
	}
}

// Render paints the workspace with r and remembers pane geometry for
// directional focus.
func (w *Workspace) Render(r *layout.Renderer, width, height int) string {
	node := w.Describe()
	w.rects = r.PaneRects(node, width, height)
	return r.Render(node, width, height)
}

// close removes every docked panel so their subscriptions are released.
func (w *Workspace) close(ctx context.Context) {
	if w.closed {
		return
	}
	w.closed = true
	for _, placement := range dockPlacements {
		dock := w.docks[placement]
		for _, panel := range dock.Panels() {
			dock.RemovePanel(panel.PanelID())
		}
	}
	logging.FromContext(ctx).Debug().Str("workspace_id", string(w.id)).Msg("workspace closed")
}

func (w *Workspace) focus(pane *entity.Pane) {
	w.active = pane
	pane.Focus()
}

func (w *Workspace) dockOf(panelID string) (*entity.Dock, bool) {
	for _, placement := range dockPlacements {
		if dock := w.docks[placement]; dock.PanelIndex(panelID) >= 0 {
			return dock, true
		}
	}
	return nil, false
}

func (w *Workspace) dockConfig(placement entity.Placement) config.DockConfig {
	switch placement {
	case entity.PlacementLeft:
		return w.settings.Docks.Left
	case entity.PlacementRight:
		return w.settings.Docks.Right
	default:
		return w.settings.Docks.Bottom
	}
}

func (w *Workspace) requestRedraw() {
	if w.onRedraw != nil && !w.closed {
		w.onRedraw()
	}
}

// markFocused returns a copy of node with the leaf of paneID flagged as focused.
func markFocused(node entity.RenderNode, paneID entity.PaneID) entity.RenderNode {
	if node.Kind == entity.NodeContainer {
		children := make([]entity.RenderChild, len(node.Children))
		for i, child := range node.Children {
			children[i] = entity.RenderChild{Fraction: child.Fraction, Node: markFocused(child.Node, paneID)}
		}
		node.Children = children
		return node
	}
	if node.PaneID == paneID {
		node.Focused = true
	}
	return node
}

// sequentialIDs returns a generator producing prefix-1, prefix-2, ...
func sequentialIDs(prefix string) usecase.IDGenerator {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
