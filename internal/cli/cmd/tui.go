package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/ui/mainloop"
)

var (
	tuiCollection string
	tuiWatch      bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive workspace",
	Long: `Start the interactive workspace in the terminal.

Logs go to the configured log file and to the console dock. With --watch,
edits to the config file are applied while the workspace runs.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVarP(&tuiCollection, "collection", "c", "", "YAML or JSON file of requests")
	tuiCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", true, "reload the config file when it changes")
}

func runTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := app.Logger()

	requests, err := loadRequests(tuiCollection)
	if err != nil {
		return err
	}

	redraws := mainloop.NewCoalescer[struct{}]()
	defer redraws.Destroy()
	changes := mainloop.NewCoalescer[*config.Config]()
	defer changes.Destroy()

	host, err := cli.NewHost(ctx, cli.HostOptions{
		Settings: app.Config,
		Theme:    app.Theme,
		Requests: requests,
		Console:  app.Console,
		OnRedraw: func() { redraws.Post(struct{}{}) },
	})
	if err != nil {
		return err
	}
	defer host.Close(ctx)

	if tuiWatch && app.Manager.ConfigFileUsed() != "" {
		app.Manager.OnConfigChange(changes.Post)
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	m := model.NewWorkspaceModel(ctx, app.Theme, model.WorkspaceModelConfig{
		Host:          host,
		Redraws:       redraws.C(),
		ConfigChanges: changes.C(),
		Reload: func() (*config.Config, error) {
			if err := app.Manager.Load(); err != nil {
				return nil, err
			}
			return app.Manager.Get(), nil
		},
	})

	log.Info().Int("requests", len(requests)).Msg("starting workspace")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run workspace: %w", err)
	}
	return nil
}
