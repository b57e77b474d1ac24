package entity

import (
	"fmt"
	"strings"
)

// Axis is the orientation along which a container lays out its children.
type Axis int

const (
	AxisHorizontal Axis = iota // Children side by side (left to right)
	AxisVertical               // Children stacked (top to bottom)
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Placement names one of the four edges of the workspace.
type Placement int

const (
	PlacementLeft Placement = iota
	PlacementRight
	PlacementTop
	PlacementBottom
)

// Opposite returns the edge facing this one.
func (p Placement) Opposite() Placement {
	switch p {
	case PlacementLeft:
		return PlacementRight
	case PlacementRight:
		return PlacementLeft
	case PlacementTop:
		return PlacementBottom
	default:
		return PlacementTop
	}
}

// Axis returns Horizontal for Left/Right and Vertical for Top/Bottom.
func (p Placement) Axis() Axis {
	switch p {
	case PlacementLeft, PlacementRight:
		return AxisHorizontal
	default:
		return AxisVertical
	}
}

func (p Placement) String() string {
	switch p {
	case PlacementLeft:
		return "left"
	case PlacementRight:
		return "right"
	case PlacementTop:
		return "top"
	case PlacementBottom:
		return "bottom"
	default:
		return fmt.Sprintf("placement(%d)", int(p))
	}
}

// ParsePlacement converts "left", "right", "top" or "bottom" to a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return PlacementLeft, nil
	case "right":
		return PlacementRight, nil
	case "top":
		return PlacementTop, nil
	case "bottom":
		return PlacementBottom, nil
	}
	return 0, fmt.Errorf("unknown placement %q", s)
}

// SplitDirection indicates on which side of the target pane a new pane is inserted.
type SplitDirection int

const (
	SplitUp SplitDirection = iota
	SplitDown
	SplitLeft
	SplitRight
)

// AllSplitDirections returns every split direction.
func AllSplitDirections() []SplitDirection {
	return []SplitDirection{SplitUp, SplitDown, SplitLeft, SplitRight}
}

// Axis returns Vertical for Up/Down and Horizontal for Left/Right.
func (d SplitDirection) Axis() Axis {
	switch d {
	case SplitUp, SplitDown:
		return AxisVertical
	default:
		return AxisHorizontal
	}
}

// Increasing reports whether the new pane goes after the target in child order.
func (d SplitDirection) Increasing() bool {
	return d == SplitDown || d == SplitRight
}

func (d SplitDirection) String() string {
	switch d {
	case SplitUp:
		return "up"
	case SplitDown:
		return "down"
	case SplitLeft:
		return "left"
	case SplitRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseSplitDirection converts "up", "down", "left" or "right" to a SplitDirection.
func ParseSplitDirection(s string) (SplitDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return SplitUp, nil
	case "down":
		return SplitDown, nil
	case "left":
		return SplitLeft, nil
	case "right":
		return SplitRight, nil
	}
	return 0, fmt.Errorf("unknown split direction %q", s)
}
