package entity

import "iter"

// NodeKind tells a host how to paint a RenderNode.
type NodeKind int

const (
	NodeNothing   NodeKind = iota // Zero-size, paints nothing
	NodeContainer                 // Lays children out along Axis by Fraction
	NodeLeaf                      // Paints Content
	NodeEmpty                     // Pane without items: paints the empty-state message
	NodeDock                      // Fixed-size dock area wrapping Content
)

func (k NodeKind) String() string {
	switch k {
	case NodeNothing:
		return "nothing"
	case NodeContainer:
		return "container"
	case NodeLeaf:
		return "leaf"
	case NodeEmpty:
		return "empty"
	case NodeDock:
		return "dock"
	default:
		return "unknown"
	}
}

// RenderNode describes what to paint without painting it.
type RenderNode struct {
	Kind     NodeKind
	Axis     Axis
	Children []RenderChild

	// Leaf, empty and dock nodes.
	Content Renderable
	PaneID  PaneID
	Focused bool

	// Dock nodes. Size is measured along Placement.Axis() (width for side docks,
	// height for top/bottom docks). Border names the edge that gets a separator.
	Placement Placement
	Size      int
	Border    Placement
}

// RenderChild is a container child with its share of the container's length.
// Fractions of a container's children sum to 1. Fixed-size children (docks and
// nothing nodes) carry a zero fraction.
type RenderChild struct {
	Fraction float64
	Node     RenderNode
}

// Nothing returns the zero-size description.
func Nothing() RenderNode {
	return RenderNode{Kind: NodeNothing}
}

// IsNothing reports whether the node paints nothing.
func (n RenderNode) IsNothing() bool {
	return n.Kind == NodeNothing
}

// Walk yields the node and its descendants depth first, in child order.
func (n RenderNode) Walk() iter.Seq[RenderNode] {
	return func(yield func(RenderNode) bool) {
		n.walk(yield)
	}
}

func (n RenderNode) walk(yield func(RenderNode) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Node.walk(yield) {
			return false
		}
	}
	return true
}
