package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCommands(t *testing.T) {
	out := FormatCommands("  ")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, len(Commands))
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "+Commands[i].Usage))
		assert.True(t, strings.HasSuffix(line, Commands[i].Summary))
	}
	// Summaries start in the same column.
	col := strings.Index(lines[0], Commands[0].Summary)
	assert.Equal(t, col, strings.Index(lines[len(lines)-1], Commands[len(Commands)-1].Summary))
}
