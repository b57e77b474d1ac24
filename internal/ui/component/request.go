// Package component provides the items and panels of the HTTP client workspace.
// Views return plain text; styling is applied by the layout renderer.
package component

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// HTTPMethod is an HTTP request method.
type HTTPMethod string

const (
	MethodGet     HTTPMethod = "GET"
	MethodPost    HTTPMethod = "POST"
	MethodPut     HTTPMethod = "PUT"
	MethodPatch   HTTPMethod = "PATCH"
	MethodDelete  HTTPMethod = "DELETE"
	MethodHead    HTTPMethod = "HEAD"
	MethodOptions HTTPMethod = "OPTIONS"
)

// ParseMethod normalizes s to a known method. Empty input means GET.
func ParseMethod(s string) (HTTPMethod, error) {
	m := HTTPMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case "":
		return MethodGet, nil
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead, MethodOptions:
		return m, nil
	}
	return "", fmt.Errorf("unknown http method %q", s)
}

// Header is a single request header. Disabled headers are kept but not sent.
type Header struct {
	Key     string `yaml:"key" json:"key"`
	Value   string `yaml:"value" json:"value"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

// Request is an editable HTTP request.
type Request struct {
	Name    string     `yaml:"name,omitempty" json:"name,omitempty"`
	Method  HTTPMethod `yaml:"method" json:"method"`
	URL     string     `yaml:"url" json:"url"`
	Headers []Header   `yaml:"headers,omitempty" json:"headers,omitempty"`
	Body    string     `yaml:"body,omitempty" json:"body,omitempty"`
}

// Title returns the request name, or its method and URL when unnamed.
func (r Request) Title() string {
	if r.Name != "" {
		return r.Name
	}
	if r.URL == "" {
		return "New Request"
	}
	return string(r.methodOrDefault()) + " " + r.URL
}

// CurlCommand renders the request as a shell command line.
func (r Request) CurlCommand() string {
	var sb strings.Builder
	sb.WriteString("curl -X ")
	sb.WriteString(string(r.methodOrDefault()))
	for _, h := range r.Headers {
		if !h.Enabled {
			continue
		}
		sb.WriteString(" -H ")
		sb.WriteString(shellQuote(h.Key + ": " + h.Value))
	}
	if r.Body != "" {
		sb.WriteString(" --data ")
		sb.WriteString(shellQuote(r.Body))
	}
	sb.WriteByte(' ')
	sb.WriteString(shellQuote(r.URL))
	return sb.String()
}

func (r Request) methodOrDefault() HTTPMethod {
	if r.Method == "" {
		return MethodGet
	}
	return r.Method
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// collectionFile is the on-disk shape of a collection: either a bare list of
// requests or a mapping with a requests key.
type collectionFile struct {
	Requests []Request `yaml:"requests"`
}

// LoadCollection reads requests from a YAML (or JSON) file.
func LoadCollection(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}
	requests, err := ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return requests, nil
}

// ParseCollection decodes a collection document.
func ParseCollection(data []byte) ([]Request, error) {
	var requests []Request
	if err := yaml.Unmarshal(data, &requests); err != nil {
		var file collectionFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse collection: %w", err)
		}
		requests = file.Requests
	}

	for i := range requests {
		method, err := ParseMethod(string(requests[i].Method))
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		requests[i].Method = method
	}
	return requests, nil
}
