// Package cli wires configuration, logging and the workspace host for the
// dockyard commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/component"
)

// Options controls how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config location when set.
	ConfigFile string
	// Interactive sends logs to a file and to the console panel instead of
	// stderr, which belongs to the terminal UI.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme
	// Console receives log output in interactive mode. Nil otherwise.
	Console *component.ConsolePanel

	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		File:       cfg.Logging.File,
	}

	var console *component.ConsolePanel
	var extra []io.Writer
	if opts.Interactive {
		if logCfg.File == "" {
			logCfg.File = config.DefaultLogFile()
		}
		console = component.NewConsolePanel(component.DefaultConsoleLines)
		extra = append(extra, console)
	}

	logger, closer, err := logging.Open(logCfg, extra...)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	mgr.SetLogger(logger)

	logger.Debug().
		Str("config_file", mgr.ConfigFileUsed()).
		Str("log_level", cfg.Logging.Level).
		Msg("app initialized")

	return &App{
		Config:    cfg,
		Manager:   mgr,
		Theme:     styles.NewTheme(nil, cfg),
		Console:   console,
		ctx:       logging.WithContext(context.Background(), logger),
		logCloser: closer,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}
