package entity

import "sort"

// DefaultDockSize is the dock size, in cells, used when neither the panel nor
// the host provides one.
const DefaultDockSize = 30

type dockEntry struct {
	panel       Panel
	priority    int
	unsubscribe func()
}

// Dock is an edge container holding registered panels, at most one of which is
// shown at a time.
//
// States: closed, open with an active panel, open without one. An open dock
// without an active panel paints nothing. Operations given unknown panels or
// indexes, or redundant transitions, are no-ops.
type Dock struct {
	placement   Placement
	workspace   WorkspaceID
	entries     []dockEntry
	isOpen      bool
	active      int
	defaultSize int
	notify      Notifier
}

// NewDock creates a closed, empty dock at the given edge. notify may be nil.
func NewDock(placement Placement, workspace WorkspaceID, notify Notifier) *Dock {
	return &Dock{
		placement:   placement,
		workspace:   workspace,
		active:      -1,
		defaultSize: DefaultDockSize,
		notify:      notify,
	}
}

// Placement returns the edge the dock is attached to.
func (d *Dock) Placement() Placement {
	return d.placement
}

// Workspace returns the lookup handle of the owning workspace.
func (d *Dock) Workspace() WorkspaceID {
	return d.workspace
}

// IsOpen reports the open flag. Use VisiblePanel to know whether anything shows.
func (d *Dock) IsOpen() bool {
	return d.isOpen
}

// SetDefaultSize sets the size used for panels that do not report one.
func (d *Dock) SetDefaultSize(size int) {
	if size > 0 {
		d.defaultSize = size
	}
}

// DefaultSize returns the fallback panel size.
func (d *Dock) DefaultSize() int {
	return d.defaultSize
}

// PanelCount returns the number of docked panels.
func (d *Dock) PanelCount() int {
	return len(d.entries)
}

// Panels returns the docked panels in priority order.
func (d *Dock) Panels() []Panel {
	out := make([]Panel, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.panel
	}
	return out
}

// PanelIndex returns the position of the panel with the given ID, or -1.
func (d *Dock) PanelIndex(id string) int {
	for i, e := range d.entries {
		if e.panel.PanelID() == id {
			return i
		}
	}
	return -1
}

// ActivePanelIndex returns the active index, or false when there is none.
func (d *Dock) ActivePanelIndex() (int, bool) {
	if d.active < 0 {
		return -1, false
	}
	return d.active, true
}

// ActivePanel returns the active panel whether or not the dock is open.
func (d *Dock) ActivePanel() (Panel, bool) {
	if d.active < 0 {
		return nil, false
	}
	return d.entries[d.active].panel, true
}

// VisiblePanel returns the active panel only when the dock is open.
func (d *Dock) VisiblePanel() (Panel, bool) {
	if !d.isOpen {
		return nil, false
	}
	return d.ActivePanel()
}

// ZoomedPanel returns the visible panel when it reports being zoomed.
func (d *Dock) ZoomedPanel() (Panel, bool) {
	panel, ok := d.VisiblePanel()
	if !ok {
		return nil, false
	}
	if z, ok := panel.(Zoomer); ok && z.IsZoomed() {
		return panel, true
	}
	return nil, false
}

// AddPanel inserts panel after every panel of lower or equal priority and
// returns its index. A panel that starts open becomes active and opens the dock.
// It returns -1 when the panel refuses this placement; a panel already docked
// keeps its position and its index is returned.
func (d *Dock) AddPanel(panel Panel) int {
	if panel == nil {
		return -1
	}
	if checker, ok := panel.(PlacementChecker); ok && !checker.ValidPlacement(d.placement) {
		return -1
	}
	if idx := d.PanelIndex(panel.PanelID()); idx >= 0 {
		return idx
	}

	priority := panel.ActivationPriority()
	idx := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].priority > priority
	})

	if d.active >= 0 && idx <= d.active {
		d.active++
	}

	entry := dockEntry{panel: panel, priority: priority}
	if cn, ok := panel.(ChangeNotifier); ok {
		entry.unsubscribe = cn.OnChange(d.requestRedraw)
	}

	d.entries = append(d.entries, dockEntry{})
	copy(d.entries[idx+1:], d.entries[idx:])
	d.entries[idx] = entry

	if panel.StartsOpen() {
		// activate already told the panel it is active.
		d.activate(idx)
		d.isOpen = true
	}

	assertInvariants(d)
	d.requestRedraw()
	return idx
}

// RemovePanel drops the panel with the given ID. Removing the active panel
// clears the active index and closes the dock.
func (d *Dock) RemovePanel(id string) bool {
	idx := d.PanelIndex(id)
	if idx < 0 {
		return false
	}

	entry := d.entries[idx]
	d.entries = append(d.entries[:idx], d.entries[idx+1:]...)
	if entry.unsubscribe != nil {
		entry.unsubscribe()
	}

	switch {
	case idx < d.active:
		d.active--
	case idx == d.active:
		d.active = -1
		entry.panel.SetActive(false)
		d.isOpen = false
	}

	assertInvariants(d)
	d.requestRedraw()
	return true
}

// ActivatePanel makes the panel at index active.
func (d *Dock) ActivatePanel(index int) bool {
	if index < 0 || index >= len(d.entries) || index == d.active {
		return false
	}
	d.activate(index)
	d.requestRedraw()
	return true
}

// ActivatePanelByID makes the panel with the given ID active.
func (d *Dock) ActivatePanelByID(id string) bool {
	return d.ActivatePanel(d.PanelIndex(id))
}

// SetOpen opens or closes the dock and tells the active panel.
func (d *Dock) SetOpen(open bool) bool {
	if !d.setOpen(open) {
		return false
	}
	d.requestRedraw()
	return true
}

// TogglePanel closes the dock when the panel is already showing; otherwise it
// activates the panel and opens the dock. It returns whether the panel shows.
func (d *Dock) TogglePanel(id string) bool {
	idx := d.PanelIndex(id)
	if idx < 0 {
		return false
	}
	if d.isOpen && d.active == idx {
		d.SetOpen(false)
		return false
	}

	changed := false
	if idx != d.active {
		d.activate(idx)
		changed = true
	}
	if d.setOpen(true) {
		changed = true
	}
	if changed {
		d.requestRedraw()
	}
	return true
}

// ResizeActivePanel stores a new preferred size on the active panel.
func (d *Dock) ResizeActivePanel(size int) bool {
	panel, ok := d.ActivePanel()
	if !ok || size <= 0 {
		return false
	}
	sizer, ok := panel.(PanelSizer)
	if !ok || sizer.Size() == size {
		return false
	}
	sizer.SetSize(size)
	d.requestRedraw()
	return true
}

// Describe returns nothing when the dock is closed or has no active panel;
// otherwise a dock node sized to the panel's preferred size with a border on
// the side facing the workspace center.
func (d *Dock) Describe() RenderNode {
	panel, ok := d.VisiblePanel()
	if !ok {
		return Nothing()
	}

	size := d.defaultSize
	if sizer, ok := panel.(PanelSizer); ok && sizer.Size() > 0 {
		size = sizer.Size()
	}

	return RenderNode{
		Kind:      NodeDock,
		Content:   panel,
		Placement: d.placement,
		Size:      size,
		Border:    d.placement.Opposite(),
	}
}

func (d *Dock) activate(index int) {
	if prev, ok := d.ActivePanel(); ok {
		prev.SetActive(false)
	}
	d.active = index
	d.entries[index].panel.SetActive(true)
}

func (d *Dock) setOpen(open bool) bool {
	if d.isOpen == open {
		return false
	}
	d.isOpen = open
	if panel, ok := d.ActivePanel(); ok {
		panel.SetActive(open)
	}
	return true
}

func (d *Dock) requestRedraw() {
	if d.notify != nil {
		d.notify()
	}
}
