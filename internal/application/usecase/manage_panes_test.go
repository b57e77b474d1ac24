package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestManagePanesUseCase_Split(t *testing.T) {
	uc := NewManagePanesUseCase(func() string { return "p2" })
	ctx := context.Background()
	root := entity.NewPane("p1", "ws-1")
	g := entity.NewPaneGroup(root)

	out, err := uc.Split(ctx, SplitPaneInput{Group: g, TargetPane: root, Direction: entity.SplitRight})
	require.NoError(t, err)

	assert.Equal(t, entity.PaneID("p2"), out.NewPane.ID)
	assert.Equal(t, entity.WorkspaceID("ws-1"), out.NewPane.Workspace)
	require.NotNil(t, out.Parent)
	assert.Equal(t, entity.AxisHorizontal, out.Parent.Axis)
	assert.Equal(t, 1, out.Index)
	assert.Equal(t, "h[p1 p2]", g.String())
}

func TestManagePanesUseCase_SplitWithExistingPane(t *testing.T) {
	uc := NewManagePanesUseCase(nil)
	root := entity.NewPane("p1", "ws")
	added := entity.NewPane("given", "ws")
	g := entity.NewPaneGroup(root)

	out, err := uc.Split(context.Background(), SplitPaneInput{
		Group: g, TargetPane: root, Direction: entity.SplitUp, NewPane: added,
	})
	require.NoError(t, err)

	assert.Same(t, added, out.NewPane)
	assert.Equal(t, 0, out.Index)
	assert.Equal(t, "v[given p1]", g.String())
}

func TestManagePanesUseCase_SplitErrors(t *testing.T) {
	uc := NewManagePanesUseCase(func() string { return "new" })
	ctx := context.Background()
	root := entity.NewPane("p1", "ws")
	g := entity.NewPaneGroup(root)

	_, err := uc.Split(ctx, SplitPaneInput{TargetPane: root})
	assert.Error(t, err)

	_, err = uc.Split(ctx, SplitPaneInput{Group: g})
	assert.Error(t, err)

	_, err = uc.Split(ctx, SplitPaneInput{Group: g, TargetPane: entity.NewPane("ghost", "ws")})
	assert.ErrorIs(t, err, entity.ErrPaneNotFound)
	assert.Equal(t, "p1", g.String())

	_, err = NewManagePanesUseCase(nil).Split(ctx, SplitPaneInput{Group: g, TargetPane: root})
	assert.Error(t, err)
}

func TestManagePanesUseCase_AdjacentPane(t *testing.T) {
	uc := NewManagePanesUseCase(nil)
	a, b, c := entity.NewPane("a", "ws"), entity.NewPane("b", "ws"), entity.NewPane("c", "ws")
	g := entity.NewPaneGroup(a)
	require.NoError(t, g.Split(a, b, entity.SplitRight))
	require.NoError(t, g.Split(b, c, entity.SplitDown))

	tests := []struct {
		name string
		from *entity.Pane
		dir  NavigateDirection
		want *entity.Pane
	}{
		{"into nested axis", a, NavRight, b},
		{"out of nested axis", c, NavLeft, a},
		{"within nested axis", b, NavDown, c},
		{"edge", c, NavDown, nil},
		{"edge left", a, NavLeft, nil},
		{"up", c, NavUp, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, uc.AdjacentPane(g, tt.from, tt.dir))
		})
	}
}

func TestManagePanesUseCase_NavigateFocusGeometric(t *testing.T) {
	uc := NewManagePanesUseCase(nil)
	ctx := context.Background()
	rects := []entity.PaneRect{
		{PaneID: "a", X: 0, Y: 0, W: 10, H: 20},
		{PaneID: "b", X: 10, Y: 0, W: 10, H: 10},
		{PaneID: "c", X: 10, Y: 10, W: 10, H: 10},
	}

	tests := []struct {
		active entity.PaneID
		dir    NavigateDirection
		want   entity.PaneID
		found  bool
	}{
		{"a", NavRight, "b", true},
		{"c", NavUp, "b", true},
		{"b", NavLeft, "a", true},
		{"c", NavLeft, "a", true},
		{"a", NavLeft, "", false},
		{"zz", NavRight, "", false},
	}
	for _, tt := range tests {
		out, err := uc.NavigateFocusGeometric(ctx, GeometricNavigationInput{
			ActivePaneID: tt.active,
			PaneRects:    rects,
			Direction:    tt.dir,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.found, out.Found, "%s %s", tt.active, tt.dir)
		assert.Equal(t, tt.want, out.TargetPaneID, "%s %s", tt.active, tt.dir)
	}
}

func TestScoreNavigationCandidates_PrefersOverlap(t *testing.T) {
	active := entity.PaneRect{PaneID: "a", X: 0, Y: 0, W: 10, H: 10}
	rects := []entity.PaneRect{
		active,
		{PaneID: "near-diagonal", X: 10, Y: 12, W: 4, H: 4},
		{PaneID: "far-aligned", X: 40, Y: 0, W: 10, H: 10},
	}

	candidates := scoreNavigationCandidates(active, rects, NavRight)
	require.Len(t, candidates, 2)

	scores := map[entity.PaneID]int{}
	for _, c := range candidates {
		scores[c.paneID] = c.score
	}
	assert.Less(t, scores["far-aligned"], scores["near-diagonal"])
}
