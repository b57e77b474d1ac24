package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocs_Markdown(t *testing.T) {
	dir := t.TempDir()

	pages, err := writeDocs(rootCmd, dir, formatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, pages, "dockyard.md")
	assert.Contains(t, pages, "dockyard_render.md")
	assert.Contains(t, pages, "dockyard_config.md")

	render, err := os.ReadFile(filepath.Join(dir, "dockyard_render.md"))
	require.NoError(t, err)
	assert.Contains(t, string(render), "dock-size:<placement>:<cells>")

	reference, err := os.ReadFile(filepath.Join(dir, "dockyard_config.md"))
	require.NoError(t, err)
	assert.Contains(t, string(reference), "**docks.left.size**\n: default `30`, environment `DOCKYARD_DOCKS_LEFT_SIZE`")
	assert.Contains(t, string(reference), "environment `DOCKYARD_LOG_LEVEL`")
	assert.Contains(t, string(reference), "**split:left|right|up|down**")
}

func TestWriteDocs_Man(t *testing.T) {
	dir := t.TempDir()

	pages, err := writeDocs(rootCmd, dir, formatMan)
	require.NoError(t, err)

	assert.Contains(t, pages, "dockyard-render.1")
	assert.Contains(t, pages, "dockyard-config.5")

	reference, err := os.ReadFile(filepath.Join(dir, "dockyard-config.5"))
	require.NoError(t, err)
	assert.Contains(t, string(reference), ".TH")
	assert.Contains(t, string(reference), "docks.left.size")
}

func TestWriteDocs_UnknownFormat(t *testing.T) {
	_, err := writeDocs(rootCmd, t.TempDir(), "pdf")
	assert.ErrorContains(t, err, "unsupported format")

	_, err = docsDir("pdf", "")
	assert.Error(t, err)
	dir, err := docsDir(formatMarkdown, "")
	require.NoError(t, err)
	assert.Equal(t, "docs", dir)
}

func TestGenDocsCommand(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { genDocsOutputDir, genDocsFormat = "", formatMan })

	out, err := runRoot(t, "gen-docs", "--format", "markdown", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "dockyard_config.md")
	assert.FileExists(t, filepath.Join(dir, "dockyard_tui.md"))
}
