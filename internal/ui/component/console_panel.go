package component

import (
	"bytes"
	"strings"
	"sync"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	consolePanelID       = "console"
	consolePanelPriority = 10

	// DefaultConsoleLines bounds the scrollback kept by the console.
	DefaultConsoleLines = 500
)

var _ entity.Panel = (*ConsolePanel)(nil)

// ConsolePanel shows log output at the bottom of the workspace. It implements
// io.Writer so a logger can write straight into it.
type ConsolePanel struct {
	changeNotifier

	mu       sync.Mutex
	lines    []string
	partial  []byte
	maxLines int
	size     int
	active   bool
	zoomed   bool
}

// NewConsolePanel creates a console keeping at most maxLines lines.
func NewConsolePanel(maxLines int) *ConsolePanel {
	if maxLines <= 0 {
		maxLines = DefaultConsoleLines
	}
	return &ConsolePanel{maxLines: maxLines}
}

func (p *ConsolePanel) PanelID() string         { return consolePanelID }
func (p *ConsolePanel) ActivationPriority() int { return consolePanelPriority }
func (p *ConsolePanel) StartsOpen() bool        { return false }
func (p *ConsolePanel) SetActive(active bool)   { p.active = active }
func (p *ConsolePanel) Active() bool            { return p.active }
func (p *ConsolePanel) Title() string           { return "Console" }
func (p *ConsolePanel) Size() int               { return p.size }
func (p *ConsolePanel) SetSize(size int)        { p.size = size }
func (p *ConsolePanel) IsZoomed() bool          { return p.zoomed }
func (p *ConsolePanel) SetZoomed(zoomed bool)   { p.zoomed = zoomed }

// ValidPlacement keeps the console in the bottom dock.
func (p *ConsolePanel) ValidPlacement(placement entity.Placement) bool {
	return placement == entity.PlacementBottom
}

// Write appends complete lines from b. A trailing partial line is held until
// its newline arrives.
func (p *ConsolePanel) Write(b []byte) (int, error) {
	p.mu.Lock()
	p.partial = append(p.partial, b...)
	added := false
	for {
		i := bytes.IndexByte(p.partial, '\n')
		if i < 0 {
			break
		}
		p.lines = append(p.lines, strings.TrimRight(string(p.partial[:i]), "\r"))
		p.partial = p.partial[i+1:]
		added = true
	}
	if over := len(p.lines) - p.maxLines; over > 0 {
		p.lines = append(p.lines[:0], p.lines[over:]...)
	}
	p.mu.Unlock()

	if added {
		p.notify()
	}
	return len(b), nil
}

// Println appends one line.
func (p *ConsolePanel) Println(line string) {
	_, _ = p.Write([]byte(line + "\n"))
}

// Lines returns a copy of the scrollback.
func (p *ConsolePanel) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}

// Clear drops the scrollback.
func (p *ConsolePanel) Clear() {
	p.mu.Lock()
	p.lines = nil
	p.partial = nil
	p.mu.Unlock()
	p.notify()
}

// View shows the most recent lines that fit.
func (p *ConsolePanel) View(width, height int) string {
	lines := p.Lines()
	if len(lines) == 0 {
		return "Console is empty."
	}
	if height > 0 && len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}
