package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/ui/component"
)

const (
	fallbackWidth  = 100
	fallbackHeight = 30
)

var (
	renderWidth      int
	renderHeight     int
	renderCollection string
	renderTree       bool
)

var renderCmd = &cobra.Command{
	Use:   "render [command...]",
	Short: "Print a workspace layout built from commands",
	Long: `Build a workspace, apply each command in order and print the result.

Commands:
` + cli.FormatCommands("  ") + `
Examples:
  dockyard render split:right new:https://example.com toggle:bottom
  dockyard render --collection api.yaml open split:down --width 120`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().IntVarP(&renderWidth, "width", "W", 0, "output width in cells (default: terminal width)")
	renderCmd.Flags().IntVarP(&renderHeight, "height", "H", 0, "output height in cells (default: terminal height)")
	renderCmd.Flags().StringVarP(&renderCollection, "collection", "c", "", "YAML or JSON file of requests")
	renderCmd.Flags().BoolVar(&renderTree, "tree", false, "also print the pane tree structure")
}

func runRender(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	requests, err := loadRequests(renderCollection)
	if err != nil {
		return err
	}

	host, err := cli.NewHost(ctx, cli.HostOptions{
		Settings: app.Config,
		Theme:    app.Theme,
		Requests: requests,
	})
	if err != nil {
		return err
	}
	defer host.Close(ctx)

	if err := host.ExecAll(ctx, args); err != nil {
		return err
	}

	width, height := outputSize(renderWidth, renderHeight)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, host.Render(width, height))
	if renderTree {
		fmt.Fprintln(out, host.Workspace.Group().String())
	}
	return nil
}

func loadRequests(path string) ([]component.Request, error) {
	if path == "" {
		return nil, nil
	}
	return component.LoadCollection(path)
}

// outputSize fills unset dimensions from the terminal, or fixed fallbacks
// when stdout is not a terminal.
func outputSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = fallbackWidth, fallbackHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
