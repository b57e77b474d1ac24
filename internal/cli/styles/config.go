package styles

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the path of the config file in use. An empty path
// means no file was found and defaults apply.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := r.theme.Highlight
	pathStyle := r.theme.Subtle

	if path == "" {
		return fmt.Sprintf(
			"\n  %s Config %s\n",
			iconStyle.Render(IconConfig),
			pathStyle.Render("(defaults, no config file found)"),
		)
	}
	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
	)
}

// RenderSettings renders flattened settings, one "key = value" per line,
// sorted by key.
func (r *ConfigRenderer) RenderSettings(settings map[string]any) string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	iconStyle := r.theme.Subtle
	keyStyle := r.theme.Highlight
	valueStyle := r.theme.Normal

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(
			"    %s %s = %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render(k),
			valueStyle.Render(fmt.Sprintf("%v", settings[k])),
		))
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		r.theme.ErrorStyle.Render(IconX),
		err,
	)
}
