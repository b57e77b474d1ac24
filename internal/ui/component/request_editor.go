package component

import (
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var _ entity.Item = (*RequestEditor)(nil)

// RequestEditor is the pane item editing one HTTP request.
type RequestEditor struct {
	changeNotifier

	id      string
	request Request
	focused bool
}

// NewRequestEditor creates an editor for req.
func NewRequestEditor(id string, req Request) *RequestEditor {
	if req.Method == "" {
		req.Method = MethodGet
	}
	return &RequestEditor{id: id, request: req}
}

func (e *RequestEditor) ItemID() string { return e.id }
func (e *RequestEditor) Title() string  { return e.request.Title() }

// Focus marks the editor as the focused item.
func (e *RequestEditor) Focus() { e.focused = true }

// Blur clears the focus mark.
func (e *RequestEditor) Blur() { e.focused = false }

// Focused reports whether the editor was focused last.
func (e *RequestEditor) Focused() bool { return e.focused }

// Request returns a copy of the edited request.
func (e *RequestEditor) Request() Request {
	req := e.request
	req.Headers = append([]Header(nil), e.request.Headers...)
	return req
}

func (e *RequestEditor) SetMethod(method HTTPMethod) {
	e.request.Method = method
	e.notify()
}

func (e *RequestEditor) SetURL(url string) {
	e.request.URL = url
	e.notify()
}

func (e *RequestEditor) SetBody(body string) {
	e.request.Body = body
	e.notify()
}

// AddHeader appends an enabled header.
func (e *RequestEditor) AddHeader(key, value string) {
	e.request.Headers = append(e.request.Headers, Header{Key: key, Value: value, Enabled: true})
	e.notify()
}

// RemoveHeader drops the header at index. Out of range is a no-op.
func (e *RequestEditor) RemoveHeader(index int) bool {
	if index < 0 || index >= len(e.request.Headers) {
		return false
	}
	e.request.Headers = append(e.request.Headers[:index], e.request.Headers[index+1:]...)
	e.notify()
	return true
}

// View renders the method line, the headers and the body.
func (e *RequestEditor) View(width, height int) string {
	lines := []string{string(e.request.Method) + " " + e.request.URL, ""}

	lines = append(lines, "Headers")
	if len(e.request.Headers) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, h := range e.request.Headers {
		prefix := "  "
		if !h.Enabled {
			prefix = "  # "
		}
		lines = append(lines, prefix+h.Key+": "+h.Value)
	}

	lines = append(lines, "", "Body")
	if e.request.Body == "" {
		lines = append(lines, "  (empty)")
	} else {
		for _, l := range strings.Split(e.request.Body, "\n") {
			lines = append(lines, "  "+l)
		}
	}

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
