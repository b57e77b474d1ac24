package entity

import (
	"errors"
	"iter"
	"math"
	"strings"
	"sync"
)

// ErrPaneNotFound is returned when a split targets a pane that is not in the tree.
var ErrPaneNotFound = errors.New("pane not found")

// Member is a node of the split tree: either a *Pane leaf or a *PaneAxis.
type Member interface {
	isMember()
}

// PaneAxis is an interior node of the split tree. Its children are laid out along
// Axis, each taking ratios[i]/sum(ratios) of the available length.
//
// Members and ratios share one mutex: resize callbacks may run independently of
// structural mutation and both slices must always have the same length.
type PaneAxis struct {
	Axis Axis

	mu      sync.Mutex
	members []Member
	ratios  []float64
}

// NewPaneAxis creates an axis node with a uniform ratio of 1 per member.
func NewPaneAxis(axis Axis, members []Member) *PaneAxis {
	return &PaneAxis{
		Axis:    axis,
		members: members,
		ratios:  uniformRatios(len(members)),
	}
}

// newSplitAxis builds the two-child axis that replaces oldPane when it is split.
func newSplitAxis(oldPane, newPane *Pane, direction SplitDirection) *PaneAxis {
	members := []Member{oldPane, newPane}
	if !direction.Increasing() {
		members = []Member{newPane, oldPane}
	}
	return NewPaneAxis(direction.Axis(), members)
}

func (*PaneAxis) isMember() {}

// Members returns a snapshot of the children in order.
func (a *PaneAxis) Members() []Member {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Member, len(a.members))
	copy(out, a.members)
	return out
}

// Ratios returns a snapshot of the size ratios, one per child.
func (a *PaneAxis) Ratios() []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]float64, len(a.ratios))
	copy(out, a.ratios)
	return out
}

// SetRatios replaces the ratios. It refuses vectors whose length does not match
// the children or that contain non-positive values.
func (a *PaneAxis) SetRatios(ratios []float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(ratios) != len(a.members) {
		return false
	}
	for _, r := range ratios {
		if r <= 0 {
			return false
		}
	}
	a.ratios = append(a.ratios[:0], ratios...)
	return true
}

// Resize moves the divider between child index and index+1 by delta, expressed
// as a fraction of the axis length. Both neighbours keep at least minFraction of
// the total; the ratio sum never changes. Returns false when nothing moved.
func (a *PaneAxis) Resize(index int, delta, minFraction float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index+1 >= len(a.ratios) || delta == 0 {
		return false
	}

	total := 0.0
	for _, r := range a.ratios {
		total += r
	}
	minRatio := minFraction * total
	pair := a.ratios[index] + a.ratios[index+1]
	if minRatio*2 > pair {
		return false
	}

	first := a.ratios[index] + delta*total
	first = max(first, minRatio)
	first = min(first, pair-minRatio)
	if math.Abs(first-a.ratios[index]) < 1e-9 {
		return false
	}

	a.ratios[index] = first
	a.ratios[index+1] = pair - first
	return true
}

// split inserts newPane next to oldPane somewhere below this node.
// Same-axis splits add a sibling and reset ratios; cross-axis splits wrap
// the matched leaf in a fresh two-child axis.
func (a *PaneAxis) split(oldPane, newPane *Pane, direction SplitDirection) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for index, member := range a.members {
		switch m := member.(type) {
		case *PaneAxis:
			if m.split(oldPane, newPane, direction) {
				return true
			}
		case *Pane:
			if m != oldPane {
				continue
			}
			if direction.Axis() == a.Axis {
				if direction.Increasing() {
					index++
				}
				a.insertPaneLocked(index, newPane)
			} else {
				a.members[index] = newSplitAxis(oldPane, newPane, direction)
			}
			return true
		}
	}
	return false
}

func (a *PaneAxis) insertPaneLocked(index int, pane *Pane) {
	a.members = append(a.members, nil)
	copy(a.members[index+1:], a.members[index:])
	a.members[index] = pane

	// Manual resize ratios are discarded on structural change.
	a.ratios = uniformRatios(len(a.members))
}

// indexOf returns the position of the direct child containing pane, or -1.
func (a *PaneAxis) indexOf(pane *Pane) int {
	for i, member := range a.Members() {
		if containsPane(member, pane) {
			return i
		}
	}
	return -1
}

func uniformRatios(n int) []float64 {
	ratios := make([]float64, n)
	for i := range ratios {
		ratios[i] = 1
	}
	return ratios
}

// Leaves yields every pane reachable from m, in child order.
func Leaves(m Member) iter.Seq[*Pane] {
	return func(yield func(*Pane) bool) {
		walkLeaves(m, yield)
	}
}

func walkLeaves(m Member, yield func(*Pane) bool) bool {
	switch node := m.(type) {
	case *Pane:
		return yield(node)
	case *PaneAxis:
		for _, child := range node.Members() {
			if !walkLeaves(child, yield) {
				return false
			}
		}
	}
	return true
}

func containsPane(m Member, pane *Pane) bool {
	for p := range Leaves(m) {
		if p == pane {
			return true
		}
	}
	return false
}

// DescribeMember returns the render description of a subtree. Axis nodes become
// containers whose children get ratio[i]/sum(ratios) of the length; panes become
// their active item, or an empty-state node when they hold no items.
func DescribeMember(m Member) RenderNode {
	switch node := m.(type) {
	case *Pane:
		item, ok := node.ActiveItem()
		if !ok {
			return RenderNode{Kind: NodeEmpty, PaneID: node.ID}
		}
		return RenderNode{Kind: NodeLeaf, Content: item, PaneID: node.ID}
	case *PaneAxis:
		node.mu.Lock()
		members := make([]Member, len(node.members))
		copy(members, node.members)
		ratios := make([]float64, len(node.ratios))
		copy(ratios, node.ratios)
		node.mu.Unlock()

		total := 0.0
		for _, r := range ratios {
			total += r
		}

		children := make([]RenderChild, len(members))
		for i, child := range members {
			children[i] = RenderChild{
				Fraction: ratios[i] / total,
				Node:     DescribeMember(child),
			}
		}
		return RenderNode{Kind: NodeContainer, Axis: node.Axis, Children: children}
	}
	return Nothing()
}

// formatMember writes the compact structural form: pane IDs for leaves,
// h[...] or v[...] for axes.
func formatMember(sb *strings.Builder, m Member) {
	switch node := m.(type) {
	case *Pane:
		sb.WriteString(string(node.ID))
	case *PaneAxis:
		if node.Axis == AxisHorizontal {
			sb.WriteString("h[")
		} else {
			sb.WriteString("v[")
		}
		for i, child := range node.Members() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			formatMember(sb, child)
		}
		sb.WriteByte(']')
	}
}
