package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPane_EmptyHasNoActiveItem(t *testing.T) {
	p := pane("p1")

	_, ok := p.ActiveItem()
	assert.False(t, ok)
	assert.Equal(t, -1, p.ActiveIndex())
	assert.False(t, p.ActivateItem(0))
	p.Focus() // must not panic
}

func TestPane_AddItemInsertsAfterCurrent(t *testing.T) {
	p := pane("p1")
	a, b, c := &fakeItem{id: "a"}, &fakeItem{id: "b"}, &fakeItem{id: "c"}

	assert.Equal(t, 0, p.AddItem(a))
	assert.Equal(t, 1, p.AddItem(b))
	require.True(t, p.ActivateItem(0))
	assert.Equal(t, 1, p.AddItem(c))

	items := p.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ItemID())
	assert.Equal(t, "c", items[1].ItemID())
	assert.Equal(t, "b", items[2].ItemID())
	assert.Equal(t, 1, p.ActiveIndex())

	// Re-adding activates instead of duplicating.
	assert.Equal(t, 2, p.AddItem(b))
	assert.Equal(t, 3, p.ItemCount())
}

func TestPane_RemoveItemRepairsCurrent(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     string
		wantActive string
	}{
		{name: "remove before active", active: 2, remove: "a", wantActive: "c"},
		{name: "remove active", active: 1, remove: "b", wantActive: "a"},
		{name: "remove first while active", active: 0, remove: "a", wantActive: "b"},
		{name: "remove after active", active: 0, remove: "c", wantActive: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pane("p1")
			p.AddItem(&fakeItem{id: "a"})
			p.AddItem(&fakeItem{id: "b"})
			p.AddItem(&fakeItem{id: "c"})
			require.True(t, p.ActivateItem(tt.active))

			require.True(t, p.RemoveItem(tt.remove))

			item, ok := p.ActiveItem()
			require.True(t, ok)
			assert.Equal(t, tt.wantActive, item.ItemID())
		})
	}
}

func TestPane_RemoveLastItemEmptiesPane(t *testing.T) {
	p := pane("p1")
	p.AddItem(&fakeItem{id: "a"})

	assert.False(t, p.RemoveItem("missing"))
	assert.True(t, p.RemoveItem("a"))

	_, ok := p.ActiveItem()
	assert.False(t, ok)
}

func TestPane_FocusForwardsToActiveItem(t *testing.T) {
	p := pane("p1")
	a := &fakeItem{id: "a"}
	p.AddItem(a)

	p.Focus()
	assert.Equal(t, 1, a.focused)
}
