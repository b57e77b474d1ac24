package component

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func sampleRequests() []Request {
	return []Request{
		{Name: "List users", Method: MethodGet, URL: "https://api.example.com/users"},
		{Name: "Get user", Method: MethodGet, URL: "https://api.example.com/users/1"},
		{Name: "Delete order", Method: MethodDelete, URL: "https://api.example.com/orders/9"},
	}
}

func TestRequestEditor_MutationsNotify(t *testing.T) {
	e := NewRequestEditor("req-1", Request{URL: "http://localhost"})
	changes := 0
	unsubscribe := e.OnChange(func() { changes++ })

	e.SetMethod(MethodPost)
	e.SetURL("http://localhost/users")
	e.AddHeader("Accept", "application/json")
	e.SetBody("{}")
	assert.True(t, e.RemoveHeader(0))
	assert.False(t, e.RemoveHeader(3))
	assert.Equal(t, 5, changes)

	unsubscribe()
	e.SetBody("")
	assert.Equal(t, 5, changes)
	assert.Zero(t, e.subscribers())

	req := e.Request()
	assert.Equal(t, MethodPost, req.Method)
	assert.Empty(t, req.Headers)
}

func TestRequestEditor_View(t *testing.T) {
	e := NewRequestEditor("req-1", Request{URL: "http://localhost"})
	e.AddHeader("Accept", "*/*")

	view := e.View(40, 10)

	lines := strings.Split(view, "\n")
	assert.Equal(t, "GET http://localhost", lines[0])
	assert.Contains(t, view, "  Accept: */*")
	assert.Contains(t, view, "  (empty)")

	assert.Len(t, strings.Split(e.View(40, 2), "\n"), 2)

	e.Focus()
	assert.True(t, e.Focused())
	e.Blur()
	assert.False(t, e.Focused())
}

func TestCollectionPanel_Filter(t *testing.T) {
	p := NewCollectionPanel(sampleRequests())
	changes := 0
	p.OnChange(func() { changes++ })

	assert.Len(t, p.Visible(), 3)
	selected, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, "List users", selected.Name)

	p.SetFilter("usr")
	var names []string
	for _, r := range p.Visible() {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{"List users", "Get user"}, names)
	assert.Equal(t, 1, changes)

	p.SetFilter("usr")
	assert.Equal(t, 1, changes)

	p.SetFilter("zzz")
	assert.Empty(t, p.Visible())
	_, ok = p.Selected()
	assert.False(t, ok)
	assert.Contains(t, p.View(30, 10), "no requests")

	p.SetFilter("")
	assert.Len(t, p.Visible(), 3)
	_, ok = p.Selected()
	assert.True(t, ok)
}

func TestCollectionPanel_Move(t *testing.T) {
	p := NewCollectionPanel(sampleRequests())

	assert.False(t, p.Move(-1))
	assert.True(t, p.Move(1))
	assert.True(t, p.Move(5))
	selected, _ := p.Selected()
	assert.Equal(t, "Delete order", selected.Name)
	assert.False(t, p.Move(1))

	view := p.View(40, 10)
	assert.Contains(t, view, "> DELETE  Delete order")
	assert.Contains(t, view, "  GET     List users")
}

func TestCollectionPanel_Dock(t *testing.T) {
	p := NewCollectionPanel(nil)
	redraws := 0
	left := entity.NewDock(entity.PlacementLeft, "ws", func() { redraws++ })
	bottom := entity.NewDock(entity.PlacementBottom, "ws", nil)

	assert.Equal(t, -1, bottom.AddPanel(p))
	require.Equal(t, 0, left.AddPanel(p))
	redraws = 0

	p.Add(Request{Name: "Ping", URL: "http://localhost/ping"})
	assert.Equal(t, 1, redraws)

	require.True(t, left.RemovePanel(p.PanelID()))
	assert.Zero(t, p.subscribers())
}

func TestConsolePanel_Write(t *testing.T) {
	p := NewConsolePanel(3)
	changes := 0
	p.OnChange(func() { changes++ })

	assert.Equal(t, "Console is empty.", p.View(20, 5))

	n, err := p.Write([]byte("one\ntw"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []string{"one"}, p.Lines())
	assert.Equal(t, 1, changes)

	_, _ = p.Write([]byte("o\r\n"))
	assert.Equal(t, []string{"one", "two"}, p.Lines())

	for i := range 4 {
		p.Println(fmt.Sprintf("line %d", i))
	}
	assert.Equal(t, []string{"line 1", "line 2", "line 3"}, p.Lines())
	assert.Equal(t, "line 2\nline 3", p.View(20, 2))

	p.Clear()
	assert.Empty(t, p.Lines())
}

func TestConsolePanel_BottomOnlyAndZoom(t *testing.T) {
	p := NewConsolePanel(0)

	assert.True(t, p.ValidPlacement(entity.PlacementBottom))
	assert.False(t, p.ValidPlacement(entity.PlacementLeft))

	d := entity.NewDock(entity.PlacementBottom, "ws", nil)
	d.AddPanel(p)
	require.True(t, d.TogglePanel(p.PanelID()))
	assert.True(t, p.Active())

	p.SetZoomed(true)
	zoomed, ok := d.ZoomedPanel()
	require.True(t, ok)
	assert.Same(t, p, zoomed)
}

func TestInspectorPanel_View(t *testing.T) {
	var current *RequestEditor
	p := NewInspectorPanel(func() (Request, bool) {
		if current == nil {
			return Request{}, false
		}
		return current.Request(), true
	})

	assert.Equal(t, "No request selected.", p.View(40, 10))

	current = NewRequestEditor("r", Request{Name: "Create", Method: MethodPost, URL: "http://x", Body: "abc"})
	current.AddHeader("A", "1")

	view := p.View(60, 20)
	assert.Contains(t, view, "Method:  POST")
	assert.Contains(t, view, "Headers: 1 (1 enabled)")
	assert.Contains(t, view, "Body:    3 bytes")
	assert.Contains(t, view, "curl -X POST")
}
