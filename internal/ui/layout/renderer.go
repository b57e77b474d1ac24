// Package layout paints workspace render descriptions into terminal cells.
package layout

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	focusMarker   = "▸ "
	unfocusMarker = "  "
	ellipsis      = "…"
)

// Styles holds the lipgloss styles used to paint a layout.
type Styles struct {
	Border       lipgloss.Style // dock edge facing the center
	Header       lipgloss.Style // pane title line
	ActiveHeader lipgloss.Style // title line of the focused pane
	Empty        lipgloss.Style // empty-state message
}

// DefaultStyles returns uncolored styles bound to re.
func DefaultStyles(re *lipgloss.Renderer) Styles {
	return Styles{
		Border:       re.NewStyle(),
		Header:       re.NewStyle(),
		ActiveHeader: re.NewStyle().Bold(true),
		Empty:        re.NewStyle().Faint(true),
	}
}

// Renderer paints an entity.RenderNode into a block of exactly width x height
// cells. Content views must return plain text; the renderer pads and
// truncates each line to its box.
type Renderer struct {
	styles    Styles
	emptyText string
	logger    zerolog.Logger
}

// NewRenderer creates a renderer. emptyText is shown centered in panes
// that hold no items.
func NewRenderer(ctx context.Context, styles Styles, emptyText string) *Renderer {
	log := logging.FromContext(ctx)
	return &Renderer{
		styles:    styles,
		emptyText: emptyText,
		logger:    log.With().Str("component", "layout-renderer").Logger(),
	}
}

// Render paints node into width x height cells.
func (r *Renderer) Render(node entity.RenderNode, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	r.logger.Trace().
		Str("kind", node.Kind.String()).
		Int("width", width).
		Int("height", height).
		Msg("render")
	return r.paint(node, width, height)
}

// PaneRects returns the cell rectangle of every pane in node, in tree order,
// as laid out in a width x height box.
func (r *Renderer) PaneRects(node entity.RenderNode, width, height int) []entity.PaneRect {
	var rects []entity.PaneRect
	arrange(node, box{w: width, h: height}, func(n entity.RenderNode, b box) {
		if n.PaneID == "" || (n.Kind != entity.NodeLeaf && n.Kind != entity.NodeEmpty) {
			return
		}
		rects = append(rects, entity.PaneRect{PaneID: n.PaneID, X: b.x, Y: b.y, W: b.w, H: b.h})
	})
	return rects
}

func (r *Renderer) paint(node entity.RenderNode, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	switch node.Kind {
	case entity.NodeContainer:
		return r.paintContainer(node, w, h)
	case entity.NodeLeaf:
		return r.paintLeaf(node, w, h)
	case entity.NodeEmpty:
		return r.paintEmpty(w, h)
	case entity.NodeDock:
		return r.paintDock(node, w, h)
	default:
		return blank(w, h)
	}
}

func (r *Renderer) paintContainer(node entity.RenderNode, w, h int) string {
	length := w
	if node.Axis == entity.AxisVertical {
		length = h
	}
	sizes := childSizes(node.Children, length)

	parts := make([]string, 0, len(node.Children))
	for i, child := range node.Children {
		if sizes[i] <= 0 {
			continue
		}
		if node.Axis == entity.AxisHorizontal {
			parts = append(parts, r.paint(child.Node, sizes[i], h))
		} else {
			parts = append(parts, r.paint(child.Node, w, sizes[i]))
		}
	}

	switch {
	case len(parts) == 0:
		return blank(w, h)
	case node.Axis == entity.AxisHorizontal:
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
}

func (r *Renderer) paintLeaf(node entity.RenderNode, w, h int) string {
	title := string(node.PaneID)
	if titled, ok := node.Content.(interface{ Title() string }); ok {
		title = titled.Title()
	}

	marker, style := unfocusMarker, r.styles.Header
	if node.Focused {
		marker, style = focusMarker, r.styles.ActiveHeader
	}
	header := style.Render(fitLine(marker+title, w))
	if h == 1 {
		return header
	}

	body := ""
	if node.Content != nil {
		body = node.Content.View(w, h-1)
	}
	return header + "\n" + fit(body, w, h-1)
}

func (r *Renderer) paintEmpty(w, h int) string {
	text := r.styles.Empty.Render(runewidth.Truncate(r.emptyText, w, ellipsis))
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, text)
}

func (r *Renderer) paintDock(node entity.RenderNode, w, h int) string {
	innerW, innerH := w, h
	var top, right, bottom, left bool
	switch node.Border {
	case entity.PlacementLeft:
		left, innerW = true, w-1
	case entity.PlacementRight:
		right, innerW = true, w-1
	case entity.PlacementTop:
		top, innerH = true, h-1
	case entity.PlacementBottom:
		bottom, innerH = true, h-1
	}
	if innerW <= 0 || innerH <= 0 {
		return blank(w, h)
	}

	body := ""
	if node.Content != nil {
		body = node.Content.View(innerW, innerH)
	}
	return r.styles.Border.
		Border(lipgloss.NormalBorder(), top, right, bottom, left).
		Render(fit(body, innerW, innerH))
}

type box struct {
	x, y, w, h int
}

// arrange calls visit for node and every descendant with the box it occupies.
func arrange(node entity.RenderNode, b box, visit func(entity.RenderNode, box)) {
	if b.w <= 0 || b.h <= 0 || node.IsNothing() {
		return
	}
	visit(node, b)
	if node.Kind != entity.NodeContainer {
		return
	}

	length := b.w
	if node.Axis == entity.AxisVertical {
		length = b.h
	}
	offset := 0
	for i, size := range childSizes(node.Children, length) {
		if size <= 0 {
			continue
		}
		cb := box{x: b.x + offset, y: b.y, w: size, h: b.h}
		if node.Axis == entity.AxisVertical {
			cb = box{x: b.x, y: b.y + offset, w: b.w, h: size}
		}
		arrange(node.Children[i].Node, cb, visit)
		offset += size
	}
}

// childSizes distributes length among children. Dock children take their fixed
// size first, nothing children take zero, and the rest is split by fraction
// with the rounding remainder going to the last flexible child.
func childSizes(children []entity.RenderChild, length int) []int {
	sizes := make([]int, len(children))
	remaining := length

	lastVisible := -1
	for i, child := range children {
		if child.Node.IsNothing() {
			continue
		}
		lastVisible = i
		if child.Node.Kind == entity.NodeDock {
			size := min(max(child.Node.Size, 0), remaining)
			sizes[i] = size
			remaining -= size
		}
	}

	total := 0.0
	lastFlex := -1
	for i, child := range children {
		if child.Node.IsNothing() || child.Node.Kind == entity.NodeDock {
			continue
		}
		total += max(child.Fraction, 0)
		lastFlex = i
	}

	if lastFlex < 0 {
		// Only docks: stretch the last one over what is left.
		if lastVisible >= 0 {
			sizes[lastVisible] += remaining
		}
		return sizes
	}

	flexLen := remaining
	used := 0
	flexCount := 0
	for _, child := range children {
		if !child.Node.IsNothing() && child.Node.Kind != entity.NodeDock {
			flexCount++
		}
	}
	for i, child := range children {
		if child.Node.IsNothing() || child.Node.Kind == entity.NodeDock {
			continue
		}
		if i == lastFlex {
			sizes[i] = flexLen - used
			break
		}
		share := 1.0 / float64(flexCount)
		if total > 0 {
			share = max(child.Fraction, 0) / total
		}
		size := int(float64(flexLen) * share)
		sizes[i] = size
		used += size
	}
	return sizes
}

// fit pads or truncates s to exactly w columns and h lines.
func fit(s string, w, h int) string {
	lines := strings.Split(s, "\n")
	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fitLine(line, w)
	}
	return strings.Join(out, "\n")
}

func fitLine(line string, w int) string {
	line = strings.ReplaceAll(line, "\t", "    ")
	return runewidth.FillRight(runewidth.Truncate(line, w, ellipsis), w)
}

func blank(w, h int) string {
	return fit("", w, h)
}
