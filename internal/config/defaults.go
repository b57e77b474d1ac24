package config

// Default configuration constants
const (
	// Workspace defaults
	defaultResizeStepPercent = 5.0
	defaultMinPanePercent    = 10.0
	defaultEmptyStateText    = "Create a new request to get started."

	// Dock defaults
	defaultSideDockSize   = 30 // columns
	defaultBottomDockSize = 10 // rows

	// Appearance defaults
	defaultTextColor         = "#E0E0E0"
	defaultMutedColor        = "#7A7A7A"
	defaultBorderColor       = "#3C3C3C"
	defaultActiveBorderColor = "#4A90E2"
)

// DefaultConfig returns the default configuration values for dockyard.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Workspace: WorkspaceConfig{
			ResizeStepPercent: defaultResizeStepPercent,
			MinPanePercent:    defaultMinPanePercent,
			EmptyStateText:    defaultEmptyStateText,
		},
		Docks: DocksConfig{
			Left:   DockConfig{Size: defaultSideDockSize, Open: true},
			Bottom: DockConfig{Size: defaultBottomDockSize},
			Right:  DockConfig{Size: defaultSideDockSize},
		},
		Appearance: AppearanceConfig{
			TextColor:         defaultTextColor,
			MutedColor:        defaultMutedColor,
			BorderColor:       defaultBorderColor,
			ActiveBorderColor: defaultActiveBorderColor,
		},
	}
}
