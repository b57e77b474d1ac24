package entity

// PaneRect is the cell rectangle a pane occupies after layout.
// Used for geometric navigation to find adjacent panes by position.
type PaneRect struct {
	PaneID PaneID
	X, Y   int // Top-left position relative to the workspace origin
	W, H   int
}

// Center returns the center point of the rectangle.
func (r PaneRect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// OverlapsVertically reports whether both rectangles share at least one row.
func (r PaneRect) OverlapsVertically(other PaneRect) bool {
	return r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// OverlapsHorizontally reports whether both rectangles share at least one column.
func (r PaneRect) OverlapsHorizontally(other PaneRect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W
}
