package cli

import (
	"fmt"
	"strings"
)

// CommandHelp describes one verb understood by Host.Exec.
type CommandHelp struct {
	Usage   string
	Summary string
}

// Commands lists the workspace command grammar in the order it is documented.
var Commands = []CommandHelp{
	{"split:left|right|up|down", "split the focused pane"},
	{"focus:left|right|up|down|next|prev", "move focus"},
	{"resize:increase|decrease", "grow or shrink the focused pane"},
	{"resize:increase_right ...", "move a divider in a direction"},
	{"dock-size:<placement>:<cells>", "set the size of a dock's active panel"},
	{"toggle:left|bottom|right", "open or close a dock"},
	{"panel:collections|console|inspector", "show or hide a panel"},
	{"zoom[:placement]", "zoom the visible panel of a dock (default bottom)"},
	{"new[:url]", "open a new request in the focused pane"},
	{"open", "open the selected collection request"},
	{"select:<delta>", "move the collection cursor"},
	{"filter:<pattern>", "fuzzy filter the collection"},
	{"log:<text>", "write a line to the console"},
}

// FormatCommands renders Commands as an aligned two-column list, each line
// starting with indent.
func FormatCommands(indent string) string {
	width := 0
	for _, c := range Commands {
		width = max(width, len(c.Usage))
	}

	var sb strings.Builder
	for _, c := range Commands {
		fmt.Fprintf(&sb, "%s%-*s  %s\n", indent, width, c.Usage, c.Summary)
	}
	return sb.String()
}
