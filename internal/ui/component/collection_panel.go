package component

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	collectionPanelID       = "collections"
	collectionPanelPriority = 0
)

var _ entity.Panel = (*CollectionPanel)(nil)

// CollectionPanel lists saved requests, optionally narrowed by a fuzzy filter.
type CollectionPanel struct {
	changeNotifier

	requests []Request
	filter   string
	matches  []int // indexes into requests, in display order
	selected int   // index into matches, -1 when nothing matches
	size     int
	active   bool
}

// NewCollectionPanel creates a panel listing requests.
func NewCollectionPanel(requests []Request) *CollectionPanel {
	p := &CollectionPanel{}
	p.setRequests(requests)
	return p
}

func (p *CollectionPanel) PanelID() string         { return collectionPanelID }
func (p *CollectionPanel) ActivationPriority() int { return collectionPanelPriority }
func (p *CollectionPanel) StartsOpen() bool        { return false }
func (p *CollectionPanel) SetActive(active bool)   { p.active = active }
func (p *CollectionPanel) Active() bool            { return p.active }
func (p *CollectionPanel) Title() string           { return "Collections" }
func (p *CollectionPanel) Size() int               { return p.size }
func (p *CollectionPanel) SetSize(size int)        { p.size = size }

// ValidPlacement keeps the collection on a side dock.
func (p *CollectionPanel) ValidPlacement(placement entity.Placement) bool {
	return placement == entity.PlacementLeft || placement == entity.PlacementRight
}

// SetRequests replaces the listed requests and reapplies the filter.
func (p *CollectionPanel) SetRequests(requests []Request) {
	p.setRequests(requests)
	p.notify()
}

func (p *CollectionPanel) setRequests(requests []Request) {
	p.requests = append([]Request(nil), requests...)
	p.applyFilter()
}

// Add appends one request.
func (p *CollectionPanel) Add(req Request) {
	p.SetRequests(append(p.requests, req))
}

// SetFilter narrows the list to requests whose title fuzzy-matches pattern.
func (p *CollectionPanel) SetFilter(pattern string) {
	if pattern == p.filter {
		return
	}
	p.filter = pattern
	p.applyFilter()
	p.notify()
}

// Filter returns the current filter pattern.
func (p *CollectionPanel) Filter() string { return p.filter }

// Visible returns the requests shown, best match first when filtering.
func (p *CollectionPanel) Visible() []Request {
	out := make([]Request, len(p.matches))
	for i, idx := range p.matches {
		out[i] = p.requests[idx]
	}
	return out
}

// Move shifts the selection by delta, clamped to the visible list.
func (p *CollectionPanel) Move(delta int) bool {
	if len(p.matches) == 0 {
		return false
	}
	next := min(max(p.selected+delta, 0), len(p.matches)-1)
	if next == p.selected {
		return false
	}
	p.selected = next
	p.notify()
	return true
}

// Selected returns the highlighted request.
func (p *CollectionPanel) Selected() (Request, bool) {
	if p.selected < 0 || p.selected >= len(p.matches) {
		return Request{}, false
	}
	return p.requests[p.matches[p.selected]], true
}

func (p *CollectionPanel) applyFilter() {
	p.matches = p.matches[:0]
	if strings.TrimSpace(p.filter) == "" {
		for i := range p.requests {
			p.matches = append(p.matches, i)
		}
	} else {
		titles := make([]string, len(p.requests))
		for i, r := range p.requests {
			titles[i] = r.Title()
		}
		for _, m := range fuzzy.Find(p.filter, titles) {
			p.matches = append(p.matches, m.Index)
		}
	}

	switch {
	case len(p.matches) == 0:
		p.selected = -1
	case p.selected < 0:
		p.selected = 0
	case p.selected >= len(p.matches):
		p.selected = len(p.matches) - 1
	}
}

// View lists the visible requests with the selection marked.
func (p *CollectionPanel) View(width, height int) string {
	header := fmt.Sprintf("Collections (%d)", len(p.requests))
	if p.filter != "" {
		header = fmt.Sprintf("Collections (%d/%d) /%s", len(p.matches), len(p.requests), p.filter)
	}
	lines := []string{header}

	if len(p.matches) == 0 {
		lines = append(lines, "  no requests")
	}
	for i, idx := range p.matches {
		marker := "  "
		if i == p.selected {
			marker = "> "
		}
		req := p.requests[idx]
		lines = append(lines, fmt.Sprintf("%s%-7s %s", marker, req.methodOrDefault(), req.Title()))
	}

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
