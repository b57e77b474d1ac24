// Package config provides configuration management for dockyard with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for dockyard.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
	Workspace  WorkspaceConfig  `mapstructure:"workspace" yaml:"workspace" json:"workspace"`
	Docks      DocksConfig      `mapstructure:"docks" yaml:"docks" json:"docks"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" json:"appearance"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives the log when set. The interactive UI always logs to a file.
	File string `mapstructure:"file" yaml:"file" json:"file,omitempty"`
}

// WorkspaceConfig holds pane tree behaviour.
type WorkspaceConfig struct {
	// ResizeStepPercent is how far one resize command moves a divider.
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" yaml:"resize_step_percent" json:"resize_step_percent" jsonschema:"minimum=1,maximum=50"`
	// MinPanePercent is the smallest share a pane may be resized to.
	MinPanePercent float64 `mapstructure:"min_pane_percent" yaml:"min_pane_percent" json:"min_pane_percent" jsonschema:"minimum=1,maximum=45"`
	// EmptyStateText is shown in panes without items.
	EmptyStateText string `mapstructure:"empty_state_text" yaml:"empty_state_text" json:"empty_state_text"`
}

// DocksConfig holds per-edge dock settings.
type DocksConfig struct {
	Left   DockConfig `mapstructure:"left" yaml:"left" json:"left"`
	Bottom DockConfig `mapstructure:"bottom" yaml:"bottom" json:"bottom"`
	Right  DockConfig `mapstructure:"right" yaml:"right" json:"right"`
}

// DockConfig holds the fallback size and initial visibility of one dock.
type DockConfig struct {
	// Size in cells: columns for side docks, rows for the bottom dock.
	Size int  `mapstructure:"size" yaml:"size" json:"size" jsonschema:"minimum=1"`
	Open bool `mapstructure:"open" yaml:"open" json:"open"`
}

// AppearanceConfig holds colors used by the terminal renderer.
type AppearanceConfig struct {
	TextColor         string `mapstructure:"text_color" yaml:"text_color" json:"text_color"`
	MutedColor        string `mapstructure:"muted_color" yaml:"muted_color" json:"muted_color"`
	BorderColor       string `mapstructure:"border_color" yaml:"border_color" json:"border_color"`
	ActiveBorderColor string `mapstructure:"active_border_color" yaml:"active_border_color" json:"active_border_color"`
}
