package component

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	inspectorPanelID       = "inspector"
	inspectorPanelPriority = 5
)

var _ entity.Panel = (*InspectorPanel)(nil)

// InspectorPanel summarizes the request being edited in the focused pane.
type InspectorPanel struct {
	source func() (Request, bool)
	size   int
	active bool
}

// NewInspectorPanel creates an inspector reading the current request from source.
func NewInspectorPanel(source func() (Request, bool)) *InspectorPanel {
	return &InspectorPanel{source: source}
}

func (p *InspectorPanel) PanelID() string         { return inspectorPanelID }
func (p *InspectorPanel) ActivationPriority() int { return inspectorPanelPriority }
func (p *InspectorPanel) StartsOpen() bool        { return false }
func (p *InspectorPanel) SetActive(active bool)   { p.active = active }
func (p *InspectorPanel) Active() bool            { return p.active }
func (p *InspectorPanel) Title() string           { return "Inspector" }
func (p *InspectorPanel) Size() int               { return p.size }
func (p *InspectorPanel) SetSize(size int)        { p.size = size }

func (p *InspectorPanel) View(width, height int) string {
	req, ok := Request{}, false
	if p.source != nil {
		req, ok = p.source()
	}
	if !ok {
		return "No request selected."
	}

	enabled := 0
	for _, h := range req.Headers {
		if h.Enabled {
			enabled++
		}
	}
	lines := []string{
		req.Title(),
		"",
		"Method:  " + string(req.methodOrDefault()),
		"URL:     " + req.URL,
		fmt.Sprintf("Headers: %d (%d enabled)", len(req.Headers), enabled),
		fmt.Sprintf("Body:    %d bytes", len(req.Body)),
		"",
		req.CurlCommand(),
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
