package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json (got: %s)", config.Logging.Format))
	}

	if config.Workspace.ResizeStepPercent <= 0 || config.Workspace.ResizeStepPercent > 50 {
		validationErrors = append(validationErrors, "workspace.resize_step_percent must be in (0, 50]")
	}
	if config.Workspace.MinPanePercent <= 0 || config.Workspace.MinPanePercent >= 50 {
		validationErrors = append(validationErrors, "workspace.min_pane_percent must be in (0, 50)")
	}

	docks := map[string]DockConfig{
		"left":   config.Docks.Left,
		"bottom": config.Docks.Bottom,
		"right":  config.Docks.Right,
	}
	for _, name := range []string{"left", "bottom", "right"} {
		if docks[name].Size < 1 {
			validationErrors = append(validationErrors, fmt.Sprintf("docks.%s.size must be positive", name))
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// normalizeConfig fills in values that may be blank in a user file.
func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaults.Logging.Format
	}
	if strings.TrimSpace(config.Workspace.EmptyStateText) == "" {
		config.Workspace.EmptyStateText = defaults.Workspace.EmptyStateText
	}
	if config.Appearance.BorderColor == "" {
		config.Appearance.BorderColor = defaults.Appearance.BorderColor
	}
	if config.Appearance.ActiveBorderColor == "" {
		config.Appearance.ActiveBorderColor = defaults.Appearance.ActiveBorderColor
	}
}
