package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func ratiosNear(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func splitGroup(t *testing.T, g *entity.PaneGroup, target, added *entity.Pane, dir entity.SplitDirection) {
	t.Helper()
	if err := g.Split(target, added, dir); err != nil {
		t.Fatalf("split %s: %v", added.ID, err)
	}
}

func TestManagePanesUseCase_Resize_Errors(t *testing.T) {
	uc := NewManagePanesUseCase(func() string { return "id" })
	ctx := context.Background()

	err := uc.Resize(ctx, nil, nil, ResizeIncreaseDown, 5, 10)
	if err == nil {
		t.Fatalf("expected error when group is nil")
	}

	single := entity.NewPane("p1", "ws")
	g := entity.NewPaneGroup(single)
	err = uc.Resize(ctx, g, nil, ResizeIncreaseDown, 5, 10)
	if err == nil {
		t.Fatalf("expected error when pane is nil")
	}

	// A lone root pane has no divider.
	err = uc.Resize(ctx, g, single, ResizeIncreaseDown, 5, 10)
	if !errors.Is(err, ErrNothingToResize) {
		t.Fatalf("expected ErrNothingToResize, got %v", err)
	}
}

func TestManagePanesUseCase_Resize_VerticalDividerMove(t *testing.T) {
	uc := NewManagePanesUseCase(func() string { return "id" })
	ctx := context.Background()

	top := entity.NewPane("top", "ws")
	bottom := entity.NewPane("bottom", "ws")
	g := entity.NewPaneGroup(top)
	splitGroup(t, g, top, bottom, entity.SplitDown)
	axis, _, _ := g.ParentAxis(bottom)

	// Moving the divider down grows the first child.
	if err := uc.Resize(ctx, g, bottom, ResizeIncreaseDown, 5.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := axis.Ratios(), []float64{1.1, 0.9}; !ratiosNear(got, want) {
		t.Fatalf("ratios = %v, want %v", got, want)
	}

	// Moving the divider up shrinks it again.
	if err := uc.Resize(ctx, g, top, ResizeIncreaseUp, 5.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := axis.Ratios(), []float64{1, 1}; !ratiosNear(got, want) {
		t.Fatalf("ratios = %v, want %v", got, want)
	}

	// No horizontal axis encloses the panes.
	err := uc.Resize(ctx, g, top, ResizeIncreaseLeft, 5.0, 10.0)
	if !errors.Is(err, ErrNothingToResize) {
		t.Fatalf("expected ErrNothingToResize, got %v", err)
	}
}

func TestManagePanesUseCase_Resize_NearestMatchingAxis(t *testing.T) {
	uc := NewManagePanesUseCase(nil)
	ctx := context.Background()

	a, b, c := entity.NewPane("a", "ws"), entity.NewPane("b", "ws"), entity.NewPane("c", "ws")
	g := entity.NewPaneGroup(a)
	splitGroup(t, g, a, b, entity.SplitRight)
	splitGroup(t, g, b, c, entity.SplitDown)

	outer, _, _ := g.ParentAxis(a)
	inner, _, _ := g.ParentAxis(c)

	// c sits in a vertical axis; the horizontal resize reaches the outer one.
	if err := uc.Resize(ctx, g, c, ResizeIncreaseRight, 5.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := outer.Ratios(), []float64{1.1, 0.9}; !ratiosNear(got, want) {
		t.Fatalf("outer ratios = %v, want %v", got, want)
	}
	if got, want := inner.Ratios(), []float64{1, 1}; !ratiosNear(got, want) {
		t.Fatalf("inner ratios = %v, want %v", got, want)
	}

	if err := uc.Resize(ctx, g, c, ResizeDecreaseUp, 5.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := inner.Ratios(), []float64{1.1, 0.9}; !ratiosNear(got, want) {
		t.Fatalf("inner ratios = %v, want %v", got, want)
	}
}

func TestManagePanesUseCase_Resize_ClampsToMinimum(t *testing.T) {
	uc := NewManagePanesUseCase(nil)
	ctx := context.Background()

	top, bottom := entity.NewPane("top", "ws"), entity.NewPane("bottom", "ws")
	g := entity.NewPaneGroup(top)
	splitGroup(t, g, top, bottom, entity.SplitDown)
	axis, _, _ := g.ParentAxis(top)

	if err := uc.Resize(ctx, g, top, ResizeIncreaseDown, 50.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := axis.Ratios(), []float64{1.8, 0.2}; !ratiosNear(got, want) {
		t.Fatalf("ratios = %v, want %v", got, want)
	}

	// Already at the limit: not an error, nothing moves.
	if err := uc.Resize(ctx, g, top, ResizeIncreaseDown, 50.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := axis.Ratios(), []float64{1.8, 0.2}; !ratiosNear(got, want) {
		t.Fatalf("ratios = %v, want %v", got, want)
	}
}

func TestManagePanesUseCase_Resize_SmartGrowShrink(t *testing.T) {
	uc := NewManagePanesUseCase(nil)
	ctx := context.Background()

	a, b, c := entity.NewPane("a", "ws"), entity.NewPane("b", "ws"), entity.NewPane("c", "ws")
	g := entity.NewPaneGroup(a)
	splitGroup(t, g, a, b, entity.SplitRight)
	splitGroup(t, g, b, c, entity.SplitRight)
	axis, _, _ := g.ParentAxis(a)

	if err := uc.Resize(ctx, g, b, ResizeIncrease, 5.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := axis.Ratios(), []float64{1, 1.15, 0.85}; !ratiosNear(got, want) {
		t.Fatalf("ratios = %v, want %v", got, want)
	}

	// The last child grows through the divider before it.
	if err := uc.Resize(ctx, g, c, ResizeIncrease, 5.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := axis.Ratios(), []float64{1, 1, 1}; !ratiosNear(got, want) {
		t.Fatalf("ratios = %v, want %v", got, want)
	}

	if err := uc.Resize(ctx, g, a, ResizeDecrease, 5.0, 10.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := axis.Ratios(), []float64{0.85, 1.15, 1}; !ratiosNear(got, want) {
		t.Fatalf("ratios = %v, want %v", got, want)
	}
}

func TestResizeDirection_Valid(t *testing.T) {
	for _, d := range []ResizeDirection{ResizeIncrease, ResizeDecrease, ResizeIncreaseLeft, ResizeDecreaseDown} {
		if !d.Valid() {
			t.Fatalf("expected %q to be valid", d)
		}
	}
	for _, d := range []ResizeDirection{"", "bogus", "increase_sideways"} {
		if d.Valid() {
			t.Fatalf("expected %q to be rejected", d)
		}
	}
}
