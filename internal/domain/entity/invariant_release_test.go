//go:build !dockyarddebug

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestSplit_ReleaseSkipsInvariantChecks(t *testing.T) {
	a := pane("a")
	g := entity.PaneGroupWithRoot(entity.NewPaneAxis(entity.AxisHorizontal, []entity.Member{a, a}))

	assert.NotPanics(t, func() {
		require.NoError(t, g.Split(a, pane("b"), entity.SplitRight))
	})
	assert.ErrorIs(t, g.Validate(), entity.ErrInvariant)
}
