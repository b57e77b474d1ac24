package entity

import (
	"iter"
	"strings"
)

// PaneGroup owns the root of the split tree for the workspace center.
// The root always contains at least one pane.
type PaneGroup struct {
	root Member
}

// NewPaneGroup creates a group holding a single pane.
func NewPaneGroup(pane *Pane) *PaneGroup {
	return &PaneGroup{root: pane}
}

// PaneGroupWithRoot creates a group around an existing tree, e.g. one rebuilt
// from a saved layout.
func PaneGroupWithRoot(root Member) *PaneGroup {
	return &PaneGroup{root: root}
}

// Root returns the root member.
func (g *PaneGroup) Root() Member {
	return g.root
}

// Split inserts newPane next to oldPane on the side named by direction.
// It returns ErrPaneNotFound, leaving the tree untouched, when oldPane is not
// part of the group.
func (g *PaneGroup) Split(oldPane, newPane *Pane, direction SplitDirection) error {
	switch root := g.root.(type) {
	case *Pane:
		if root != oldPane {
			return ErrPaneNotFound
		}
		g.root = newSplitAxis(oldPane, newPane, direction)
	case *PaneAxis:
		if !root.split(oldPane, newPane, direction) {
			return ErrPaneNotFound
		}
	default:
		return ErrPaneNotFound
	}

	assertInvariants(g)
	return nil
}

// Panes yields every pane in the group in layout order.
func (g *PaneGroup) Panes() iter.Seq[*Pane] {
	return Leaves(g.root)
}

// PaneCount returns the number of leaf panes.
func (g *PaneGroup) PaneCount() int {
	count := 0
	for range g.Panes() {
		count++
	}
	return count
}

// FindPane returns the pane with the given ID, or nil.
func (g *PaneGroup) FindPane(id PaneID) *Pane {
	for p := range g.Panes() {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Contains reports whether pane is a leaf of the group.
func (g *PaneGroup) Contains(pane *Pane) bool {
	return containsPane(g.root, pane)
}

// FirstPane returns the first pane in layout order.
func (g *PaneGroup) FirstPane() *Pane {
	for p := range g.Panes() {
		return p
	}
	return nil
}

// AxisPath returns the axis nodes enclosing pane, outermost first, together
// with the index of the child on the path at each level. It returns nil when
// pane is the root or is not in the group.
func (g *PaneGroup) AxisPath(pane *Pane) ([]*PaneAxis, []int) {
	var axes []*PaneAxis
	var indexes []int

	current := g.root
	for {
		axis, ok := current.(*PaneAxis)
		if !ok {
			break
		}
		idx := axis.indexOf(pane)
		if idx < 0 {
			return nil, nil
		}
		axes = append(axes, axis)
		indexes = append(indexes, idx)
		current = axis.Members()[idx]
	}
	if current != Member(pane) {
		return nil, nil
	}
	return axes, indexes
}

// ParentAxis returns the axis directly holding pane and its index there.
func (g *PaneGroup) ParentAxis(pane *Pane) (*PaneAxis, int, bool) {
	axes, indexes := g.AxisPath(pane)
	if len(axes) == 0 {
		return nil, -1, false
	}
	last := len(axes) - 1
	return axes[last], indexes[last], true
}

// Describe returns the render description of the whole group.
func (g *PaneGroup) Describe() RenderNode {
	return DescribeMember(g.root)
}

// String returns the compact structural form, e.g. "h[a v[b c]]".
func (g *PaneGroup) String() string {
	var sb strings.Builder
	formatMember(&sb, g.root)
	return sb.String()
}
