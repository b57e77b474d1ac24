package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	formatMan      = "man"
	formatMarkdown = "markdown"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for dockyard",
	Long: `Generate one page per command plus a dockyard-config reference listing
every configuration key, its default, its environment variable and the
workspace command grammar shared by 'render' and the key bindings of 'tui'.

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is given; markdown
goes to ./docs.

Examples:
  dockyard gen-docs
  dockyard gen-docs --format markdown --output ./site/cli`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", formatMan, "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	log := logging.NewFromEnv()

	outputDir, err := docsDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	pages, err := writeDocs(rootCmd, outputDir, genDocsFormat)
	if err != nil {
		return err
	}

	log.Debug().Str("dir", outputDir).Int("pages", len(pages)).Msg("docs generated")
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d pages to %s\n", len(pages), outputDir)
	for _, p := range pages {
		fmt.Fprintf(out, "  - %s\n", p)
	}
	if genDocsFormat == formatMan && genDocsOutputDir == "" {
		fmt.Fprintln(out, "Run 'mandb' if 'man dockyard' does not find them.")
	}
	return nil
}

func docsDir(format, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	switch format {
	case formatMan:
		dir, err := config.GetManDir()
		if err != nil {
			return "", fmt.Errorf("resolve man directory: %w", err)
		}
		return dir, nil
	case formatMarkdown:
		return "docs", nil
	}
	return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
}

// writeDocs generates the command pages and the config reference into dir
// and returns the generated file names, sorted.
func writeDocs(root *cobra.Command, dir, format string) ([]string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	root.DisableAutoGenTag = true

	reference := configReference()
	var refName string
	switch format {
	case formatMan:
		now := time.Now()
		err := doc.GenManTreeFromOpts(root, doc.GenManTreeOptions{
			Header: &doc.GenManHeader{
				Section: "1",
				Source:  "dockyard " + buildInfo.Version,
				Manual:  "Dockyard Manual",
				Date:    &now,
			},
			Path:             dir,
			CommandSeparator: "-",
		})
		if err != nil {
			return nil, fmt.Errorf("generate man pages: %w", err)
		}
		refName = "dockyard-config.5"
		reference = md2man.Render(append([]byte("% DOCKYARD-CONFIG 5\n\n"), reference...))
	case formatMarkdown:
		if err := doc.GenMarkdownTree(root, dir); err != nil {
			return nil, fmt.Errorf("generate markdown docs: %w", err)
		}
		refName = "dockyard_config.md"
	default:
		return nil, fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}

	if err := os.WriteFile(filepath.Join(dir, refName), reference, filePerm); err != nil {
		return nil, fmt.Errorf("write %s: %w", refName, err)
	}
	return listPages(dir, format)
}

// configReference renders the config keys and the command grammar as markdown.
func configReference() []byte {
	settings := config.DefaultSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.WriteString("# NAME\n\ndockyard-config - dockyard configuration and workspace commands\n\n")
	buf.WriteString("# DESCRIPTION\n\nSettings are read from config.toml in the dockyard XDG config directory, ")
	buf.WriteString("or from the file given with --config. Environment variables override the file.\n\n")

	buf.WriteString("# KEYS\n\n")
	for _, k := range keys {
		fmt.Fprintf(&buf, "**%s**\n: default `%v`, environment `%s`\n\n", k, settings[k], config.EnvVar(k))
	}

	buf.WriteString("# COMMANDS\n\nAccepted by `dockyard render` and bound to keys in `dockyard tui`.\n\n")
	for _, c := range cli.Commands {
		fmt.Fprintf(&buf, "**%s**\n: %s\n\n", c.Usage, c.Summary)
	}
	return []byte(strings.TrimRight(buf.String(), "\n") + "\n")
}

func listPages(dir, format string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var pages []string
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if (format == formatMarkdown && ext == ".md") || (format == formatMan && (ext == ".1" || ext == ".5")) {
			pages = append(pages, e.Name())
		}
	}
	slices.Sort(pages)
	return pages, nil
}
