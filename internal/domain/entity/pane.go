// Package entity contains the workspace layout core: the pane split tree and docks.
// These types have no rendering or toolkit dependencies; hosts paint them through
// the render description returned by Describe.
package entity

// PaneID uniquely identifies a pane within a workspace.
type PaneID string

// WorkspaceID identifies the workspace a pane or dock belongs to.
// It is a lookup handle, not an owning reference: the workspace may already be gone.
type WorkspaceID string

// Renderable is anything a host can paint into a box of the given cell size.
type Renderable interface {
	View(width, height int) string
}

// Item is a content item hosted by a pane (for example a request editor).
type Item interface {
	Renderable
	ItemID() string
	Title() string
	Focus()
}

// Pane is a leaf of the split tree holding an ordered list of items,
// one of which is active.
type Pane struct {
	ID        PaneID
	Workspace WorkspaceID

	items   []Item
	current int
}

// NewPane creates an empty pane owned by the given workspace.
func NewPane(id PaneID, workspace WorkspaceID) *Pane {
	return &Pane{
		ID:        id,
		Workspace: workspace,
	}
}

func (*Pane) isMember() {}

// Items returns a copy of the pane's items in order.
func (p *Pane) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// ItemCount returns the number of items in the pane.
func (p *Pane) ItemCount() int {
	return len(p.items)
}

// ActiveIndex returns the index of the active item, or -1 when the pane is empty.
func (p *Pane) ActiveIndex() int {
	if len(p.items) == 0 {
		return -1
	}
	return p.current
}

// ActiveItem returns the active item, or false when the pane is empty.
func (p *Pane) ActiveItem() (Item, bool) {
	if len(p.items) == 0 {
		return nil, false
	}
	return p.items[p.current], true
}

// AddItem inserts an item right after the active one and activates it.
// Items already present (same ItemID) are activated instead of duplicated.
func (p *Pane) AddItem(item Item) int {
	if item == nil {
		return -1
	}
	if idx := p.indexOf(item.ItemID()); idx >= 0 {
		p.current = idx
		return idx
	}

	idx := 0
	if len(p.items) > 0 {
		idx = p.current + 1
	}
	p.items = append(p.items, nil)
	copy(p.items[idx+1:], p.items[idx:])
	p.items[idx] = item
	p.current = idx
	return idx
}

// ActivateItem makes the item at index active. Out-of-range indexes are ignored.
func (p *Pane) ActivateItem(index int) bool {
	if index < 0 || index >= len(p.items) {
		return false
	}
	p.current = index
	return true
}

// RemoveItem removes the item with the given ID.
// The active index keeps pointing at the same item when possible; removing the
// active item activates its predecessor.
func (p *Pane) RemoveItem(id string) bool {
	idx := p.indexOf(id)
	if idx < 0 {
		return false
	}

	p.items = append(p.items[:idx], p.items[idx+1:]...)

	switch {
	case len(p.items) == 0:
		p.current = 0
	case idx < p.current:
		p.current--
	case idx == p.current && p.current > 0:
		p.current--
	}
	return true
}

// Focus focuses the active item, if any.
func (p *Pane) Focus() {
	if item, ok := p.ActiveItem(); ok {
		item.Focus()
	}
}

func (p *Pane) indexOf(id string) int {
	for i, item := range p.items {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}
