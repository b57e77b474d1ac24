package entity

// Panel is a unit of UI hostable inside a Dock. Implementations are shared
// handles (usually pointers): other code may keep using a panel after its dock
// dropped it.
//
// ActivationPriority must stay stable while the panel is docked. The dock keeps
// panels sorted by the priority seen at insertion; a panel whose priority
// changes keeps its old position until it is removed and added again.
type Panel interface {
	Renderable
	PanelID() string
	ActivationPriority() int
	StartsOpen() bool
	SetActive(active bool)
}

// PanelSizer is implemented by panels that remember a preferred size, in cells,
// measured along the dock placement's axis.
type PanelSizer interface {
	Size() int
	SetSize(size int)
}

// PlacementChecker is implemented by panels that can only live on some edges.
type PlacementChecker interface {
	ValidPlacement(p Placement) bool
}

// Zoomer is implemented by panels that can take over the whole workspace.
type Zoomer interface {
	IsZoomed() bool
	SetZoomed(zoomed bool)
}

// ChangeNotifier is implemented by panels that want the host to redraw when
// their content changes. OnChange returns a function cancelling the subscription.
type ChangeNotifier interface {
	OnChange(fn func()) (unsubscribe func())
}

// Notifier asks the host to repaint after a mutation.
type Notifier func()
