package entity_test

import (
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
)

type fakeItem struct {
	id      string
	focused int
}

func (i *fakeItem) ItemID() string { return i.id }
func (i *fakeItem) Title() string  { return i.id }
func (i *fakeItem) Focus()         { i.focused++ }

func (i *fakeItem) View(width, height int) string {
	return fmt.Sprintf("%s %dx%d", i.id, width, height)
}

type fakePanel struct {
	id         string
	priority   int
	startsOpen bool
	active     bool
	calls      []bool
	size       int
}

func newFakePanel(id string, priority int) *fakePanel {
	return &fakePanel{id: id, priority: priority}
}

func (p *fakePanel) PanelID() string         { return p.id }
func (p *fakePanel) ActivationPriority() int { return p.priority }
func (p *fakePanel) StartsOpen() bool        { return p.startsOpen }
func (p *fakePanel) View(int, int) string    { return p.id }
func (p *fakePanel) Size() int               { return p.size }
func (p *fakePanel) SetSize(size int)        { p.size = size }

func (p *fakePanel) SetActive(active bool) {
	p.active = active
	p.calls = append(p.calls, active)
}

func panelIDs(d *entity.Dock) []string {
	var ids []string
	for _, p := range d.Panels() {
		ids = append(ids, p.PanelID())
	}
	return ids
}

func pane(id string) *entity.Pane {
	return entity.NewPane(entity.PaneID(id), "ws")
}
