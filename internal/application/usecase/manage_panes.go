package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// ResizeDirection indicates the direction for pane resizing.
type ResizeDirection string

const (
	ResizeIncreaseLeft  ResizeDirection = "increase_left"
	ResizeIncreaseRight ResizeDirection = "increase_right"
	ResizeIncreaseUp    ResizeDirection = "increase_up"
	ResizeIncreaseDown  ResizeDirection = "increase_down"

	ResizeDecreaseLeft  ResizeDirection = "decrease_left"
	ResizeDecreaseRight ResizeDirection = "decrease_right"
	ResizeDecreaseUp    ResizeDirection = "decrease_up"
	ResizeDecreaseDown  ResizeDirection = "decrease_down"

	// ResizeIncrease and ResizeDecrease grow or shrink the target pane along
	// its nearest enclosing axis, whatever the orientation.
	ResizeIncrease ResizeDirection = "increase"
	ResizeDecrease ResizeDirection = "decrease"
)

// Valid reports whether d is one of the resize directions above.
func (d ResizeDirection) Valid() bool {
	switch d {
	case ResizeIncreaseLeft, ResizeIncreaseRight, ResizeIncreaseUp, ResizeIncreaseDown,
		ResizeDecreaseLeft, ResizeDecreaseRight, ResizeDecreaseUp, ResizeDecreaseDown,
		ResizeIncrease, ResizeDecrease:
		return true
	}
	return false
}

var ErrNothingToResize = errors.New("nothing to resize")

// ManagePanesUseCase handles pane tree operations.
type ManagePanesUseCase struct {
	idGenerator IDGenerator
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(idGenerator IDGenerator) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		idGenerator: idGenerator,
	}
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	Group      *entity.PaneGroup
	TargetPane *entity.Pane
	Direction  entity.SplitDirection
	NewPane    *entity.Pane // Optional: existing pane to insert
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPane *entity.Pane
	Parent  *entity.PaneAxis // Axis now holding the new pane
	Index   int              // Position of the new pane in Parent
}

// Split inserts a new pane adjacent to the target pane.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("manage panes use case is nil")
	}
	if input.Group == nil {
		return nil, fmt.Errorf("pane group is required")
	}
	if input.TargetPane == nil {
		return nil, fmt.Errorf("target pane is required")
	}

	log.Debug().
		Str("direction", input.Direction.String()).
		Str("target_id", string(input.TargetPane.ID)).
		Msg("splitting pane")

	newPane := input.NewPane
	if newPane == nil {
		if uc.idGenerator == nil {
			return nil, fmt.Errorf("id generator is required")
		}
		newPane = entity.NewPane(entity.PaneID(uc.idGenerator()), input.TargetPane.Workspace)
	}

	if err := input.Group.Split(input.TargetPane, newPane, input.Direction); err != nil {
		return nil, fmt.Errorf("split pane %s: %w", input.TargetPane.ID, err)
	}

	parent, index, _ := input.Group.ParentAxis(newPane)

	log.Info().
		Str("new_pane_id", string(newPane.ID)).
		Str("target_id", string(input.TargetPane.ID)).
		Str("direction", input.Direction.String()).
		Int("panes", input.Group.PaneCount()).
		Msg("pane split")

	return &SplitPaneOutput{
		NewPane: newPane,
		Parent:  parent,
		Index:   index,
	}, nil
}

// Resize moves the divider next to pane inside the nearest enclosing axis of
// the direction's orientation. Directional values move the divider that way;
// ResizeIncrease/ResizeDecrease grow or shrink the pane itself.
// stepPercent is the divider move and minPanePercent the smallest share either
// neighbour keeps, both in percent of the axis length.
func (uc *ManagePanesUseCase) Resize(
	ctx context.Context,
	group *entity.PaneGroup,
	pane *entity.Pane,
	dir ResizeDirection,
	stepPercent float64,
	minPanePercent float64,
) error {
	log := logging.FromContext(ctx)
	if uc == nil {
		return fmt.Errorf("manage panes use case is nil")
	}
	if group == nil {
		return fmt.Errorf("pane group is required")
	}
	if pane == nil {
		return fmt.Errorf("pane is required")
	}

	target, ok := resolveResize(group, pane, dir)
	if !ok {
		return ErrNothingToResize
	}

	if stepPercent < 0 {
		stepPercent = -stepPercent
	}
	delta := target.sign * stepPercent / 100.0

	oldRatios := target.axis.Ratios()
	if !target.axis.Resize(target.divider, delta, minPanePercent/100.0) {
		log.Debug().
			Str("direction", string(dir)).
			Str("pane_id", string(pane.ID)).
			Msg("resize clamped")
		return nil
	}

	log.Debug().
		Str("direction", string(dir)).
		Int("divider", target.divider).
		Floats64("old_ratios", oldRatios).
		Floats64("new_ratios", target.axis.Ratios()).
		Msg("pane resized")

	return nil
}

type resizeTarget struct {
	axis    *entity.PaneAxis
	divider int
	sign    float64
}

// resolveResize picks the axis and divider a resize applies to. The divider is
// the one after the pane's branch, or the one before it when the branch is last.
func resolveResize(group *entity.PaneGroup, pane *entity.Pane, dir ResizeDirection) (resizeTarget, bool) {
	axes, indexes := group.AxisPath(pane)
	if len(axes) == 0 {
		return resizeTarget{}, false
	}

	if dir == ResizeIncrease || dir == ResizeDecrease {
		last := len(axes) - 1
		t := dividerFor(axes[last], indexes[last])
		// Growing the branch before the divider means moving it forward.
		grow := 1.0
		if t.divider < indexes[last] {
			grow = -1
		}
		t.sign = grow
		if dir == ResizeDecrease {
			t.sign = -grow
		}
		return t, true
	}

	axis, ok := axisForResizeDirection(dir)
	if !ok {
		return resizeTarget{}, false
	}
	for i := len(axes) - 1; i >= 0; i-- {
		if axes[i].Axis != axis {
			continue
		}
		t := dividerFor(axes[i], indexes[i])
		t.sign = signForDividerMove(dir)
		return t, true
	}
	return resizeTarget{}, false
}

func dividerFor(axis *entity.PaneAxis, index int) resizeTarget {
	divider := index
	if index >= len(axis.Members())-1 {
		divider = index - 1
	}
	return resizeTarget{axis: axis, divider: divider}
}

func axisForResizeDirection(dir ResizeDirection) (entity.Axis, bool) {
	switch dir {
	case ResizeIncreaseLeft, ResizeIncreaseRight, ResizeDecreaseLeft, ResizeDecreaseRight:
		return entity.AxisHorizontal, true
	case ResizeIncreaseUp, ResizeIncreaseDown, ResizeDecreaseUp, ResizeDecreaseDown:
		return entity.AxisVertical, true
	default:
		return entity.AxisHorizontal, false
	}
}

// signForDividerMove returns +1 when the divider moves right/down.
func signForDividerMove(dir ResizeDirection) float64 {
	switch dir {
	case ResizeIncreaseRight, ResizeIncreaseDown, ResizeDecreaseLeft, ResizeDecreaseUp:
		return 1
	case ResizeIncreaseLeft, ResizeIncreaseUp, ResizeDecreaseRight, ResizeDecreaseDown:
		return -1
	default:
		return 0
	}
}

// AdjacentPane finds the pane next to pane in the given direction using the
// tree structure alone. It is the fallback when no geometry is known.
func (uc *ManagePanesUseCase) AdjacentPane(
	group *entity.PaneGroup,
	pane *entity.Pane,
	direction NavigateDirection,
) *entity.Pane {
	if group == nil || pane == nil {
		return nil
	}

	wantAxis := entity.AxisHorizontal
	if direction == NavUp || direction == NavDown {
		wantAxis = entity.AxisVertical
	}
	forward := direction == NavRight || direction == NavDown

	axes, indexes := group.AxisPath(pane)
	for i := len(axes) - 1; i >= 0; i-- {
		if axes[i].Axis != wantAxis {
			continue
		}
		members := axes[i].Members()
		next := indexes[i] - 1
		if forward {
			next = indexes[i] + 1
		}
		if next < 0 || next >= len(members) {
			continue
		}
		return nearestLeaf(members[next], forward)
	}
	return nil
}

// nearestLeaf returns the first leaf of m when entering it forward, the last otherwise.
func nearestLeaf(m entity.Member, forward bool) *entity.Pane {
	var found *entity.Pane
	for p := range entity.Leaves(m) {
		found = p
		if forward {
			break
		}
	}
	return found
}

// GeometricNavigationInput contains data for geometric focus navigation.
type GeometricNavigationInput struct {
	ActivePaneID entity.PaneID
	PaneRects    []entity.PaneRect // All visible panes with their positions
	Direction    NavigateDirection
}

// GeometricNavigationOutput contains the result.
type GeometricNavigationOutput struct {
	TargetPaneID entity.PaneID
	Found        bool
}

// NavigateFocusGeometric finds the nearest pane in the given direction using geometry.
// Algorithm:
//  1. Get active pane rectangle
//  2. Filter candidates that are in the direction (dx < 0 for Left, etc.)
//  3. Prioritize panes with perpendicular overlap (same row for left/right, same column for up/down)
//  4. Score by: overlap_penalty + primary_distance * 1000 + perpendicular_distance
//  5. Return lowest scoring candidate
func (uc *ManagePanesUseCase) NavigateFocusGeometric(
	ctx context.Context,
	input GeometricNavigationInput,
) (*GeometricNavigationOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("manage panes use case is nil")
	}
	log.Debug().
		Str("direction", string(input.Direction)).
		Str("active", string(input.ActivePaneID)).
		Int("candidates", len(input.PaneRects)).
		Msg("geometric navigation")

	var activeRect *entity.PaneRect
	for i := range input.PaneRects {
		if input.PaneRects[i].PaneID == input.ActivePaneID {
			activeRect = &input.PaneRects[i]
			break
		}
	}
	if activeRect == nil {
		log.Debug().Msg("active pane rect not found")
		return &GeometricNavigationOutput{Found: false}, nil
	}

	candidates := scoreNavigationCandidates(*activeRect, input.PaneRects, input.Direction)
	if len(candidates) == 0 {
		log.Debug().Msg("no candidates in direction")
		return &GeometricNavigationOutput{Found: false}, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	log.Debug().
		Str("target", string(candidates[0].paneID)).
		Int("score", candidates[0].score).
		Msg("geometric navigation found target")

	return &GeometricNavigationOutput{
		TargetPaneID: candidates[0].paneID,
		Found:        true,
	}, nil
}

type navCandidate struct {
	paneID entity.PaneID
	score  int
}

// scoreNavigationCandidates scores all panes in the given direction from activeRect.
func scoreNavigationCandidates(
	activeRect entity.PaneRect,
	paneRects []entity.PaneRect,
	direction NavigateDirection,
) []navCandidate {
	// Panes at the same level always win over panes without perpendicular overlap.
	const noOverlapPenalty = 10_000_000

	acx, acy := activeRect.Center()
	var candidates []navCandidate

	for _, rect := range paneRects {
		if rect.PaneID == activeRect.PaneID {
			continue
		}

		cx, cy := rect.Center()
		dx := cx - acx
		dy := cy - acy

		inDirection, primaryDist, perpDist, hasOverlap := evalDirection(activeRect, rect, dx, dy, direction)
		if !inDirection {
			continue
		}
		score := primaryDist*1000 + perpDist
		if !hasOverlap {
			score += noOverlapPenalty
		}
		candidates = append(candidates, navCandidate{rect.PaneID, score})
	}

	return candidates
}

// evalDirection returns inDirection, primaryDist, perpDist, hasOverlap.
func evalDirection(
	activeRect, rect entity.PaneRect,
	dx, dy int,
	direction NavigateDirection,
) (inDirection bool, primaryDist, perpDist int, hasOverlap bool) {
	switch direction {
	case NavLeft:
		return dx < 0, abs(dx), abs(dy), activeRect.OverlapsVertically(rect)
	case NavRight:
		return dx > 0, abs(dx), abs(dy), activeRect.OverlapsVertically(rect)
	case NavUp:
		return dy < 0, abs(dy), abs(dx), activeRect.OverlapsHorizontally(rect)
	case NavDown:
		return dy > 0, abs(dy), abs(dx), activeRect.OverlapsHorizontally(rect)
	default:
		return false, 0, 0, false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
