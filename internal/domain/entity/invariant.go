package entity

import (
	"errors"
	"fmt"
)

// ErrInvariant wraps every structural invariant violation.
var ErrInvariant = errors.New("layout invariant violated")

type validator interface {
	Validate() error
}

// assertInvariants panics on a violation when built with the dockyarddebug tag.
// A violation is a caller bug; release builds do not try to repair it.
func assertInvariants(v validator) {
	if !debugAssertions {
		return
	}
	if err := v.Validate(); err != nil {
		panic(err)
	}
}

// Validate checks the split tree: every axis has at least two children, one
// positive ratio per child, and no pane appears twice.
func (g *PaneGroup) Validate() error {
	if g.root == nil {
		return fmt.Errorf("%w: pane group has no root", ErrInvariant)
	}
	seen := make(map[*Pane]struct{})
	return validateMember(g.root, seen)
}

func validateMember(m Member, seen map[*Pane]struct{}) error {
	switch node := m.(type) {
	case *Pane:
		if _, dup := seen[node]; dup {
			return fmt.Errorf("%w: pane %q appears twice", ErrInvariant, node.ID)
		}
		seen[node] = struct{}{}
		if n := len(node.items); n > 0 && (node.current < 0 || node.current >= n) {
			return fmt.Errorf("%w: pane %q current %d out of %d items", ErrInvariant, node.ID, node.current, n)
		}
	case *PaneAxis:
		members := node.Members()
		ratios := node.Ratios()
		if len(members) < 2 {
			return fmt.Errorf("%w: axis with %d children", ErrInvariant, len(members))
		}
		if len(members) != len(ratios) {
			return fmt.Errorf("%w: %d children but %d ratios", ErrInvariant, len(members), len(ratios))
		}
		for i, r := range ratios {
			if r <= 0 {
				return fmt.Errorf("%w: ratio %d is %v", ErrInvariant, i, r)
			}
		}
		for _, child := range members {
			if err := validateMember(child, seen); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown member %T", ErrInvariant, m)
	}
	return nil
}

// Validate checks the dock bookkeeping: the active index points at a panel, and
// an empty dock has no active panel.
func (d *Dock) Validate() error {
	n := len(d.entries)
	if d.active >= n || d.active < -1 {
		return fmt.Errorf("%w: dock %s active index %d with %d panels", ErrInvariant, d.placement, d.active, n)
	}
	for i := 1; i < n; i++ {
		if d.entries[i-1].priority > d.entries[i].priority {
			return fmt.Errorf("%w: dock %s panels out of priority order at %d", ErrInvariant, d.placement, i)
		}
	}
	return nil
}
