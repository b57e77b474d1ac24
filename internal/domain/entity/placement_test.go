package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestPlacement_OppositeAndAxis(t *testing.T) {
	tests := []struct {
		placement entity.Placement
		opposite  entity.Placement
		axis      entity.Axis
	}{
		{entity.PlacementLeft, entity.PlacementRight, entity.AxisHorizontal},
		{entity.PlacementRight, entity.PlacementLeft, entity.AxisHorizontal},
		{entity.PlacementTop, entity.PlacementBottom, entity.AxisVertical},
		{entity.PlacementBottom, entity.PlacementTop, entity.AxisVertical},
	}

	for _, tt := range tests {
		t.Run(tt.placement.String(), func(t *testing.T) {
			assert.Equal(t, tt.opposite, tt.placement.Opposite())
			assert.Equal(t, tt.axis, tt.placement.Axis())
			assert.Equal(t, tt.placement, tt.placement.Opposite().Opposite())
		})
	}
}

func TestSplitDirection_AxisAndIncreasing(t *testing.T) {
	assert.Equal(t, entity.AxisVertical, entity.SplitUp.Axis())
	assert.Equal(t, entity.AxisVertical, entity.SplitDown.Axis())
	assert.Equal(t, entity.AxisHorizontal, entity.SplitLeft.Axis())
	assert.Equal(t, entity.AxisHorizontal, entity.SplitRight.Axis())

	assert.False(t, entity.SplitUp.Increasing())
	assert.False(t, entity.SplitLeft.Increasing())
	assert.True(t, entity.SplitDown.Increasing())
	assert.True(t, entity.SplitRight.Increasing())
}

func TestParseHelpers(t *testing.T) {
	for _, d := range entity.AllSplitDirections() {
		got, err := entity.ParseSplitDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	p, err := entity.ParsePlacement(" Bottom ")
	require.NoError(t, err)
	assert.Equal(t, entity.PlacementBottom, p)

	_, err = entity.ParsePlacement("center")
	assert.Error(t, err)
	_, err = entity.ParseSplitDirection("diagonal")
	assert.Error(t, err)
}
