package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrPanelRejected is returned when a panel refuses the dock's placement.
	ErrPanelRejected = errors.New("panel rejected by dock")
	// ErrPanelNotFound is returned when no docked panel has the requested ID.
	ErrPanelNotFound = errors.New("panel not found")
)

// ManageDocksUseCase handles panel registration and visibility on docks.
// Dock operations themselves never fail; this layer turns their no-op results
// into errors callers can report and logs the transitions.
type ManageDocksUseCase struct{}

// NewManageDocksUseCase creates a new dock management use case.
func NewManageDocksUseCase() *ManageDocksUseCase {
	return &ManageDocksUseCase{}
}

// RegisterPanel adds panel to dock and returns its index.
func (uc *ManageDocksUseCase) RegisterPanel(ctx context.Context, dock *entity.Dock, panel entity.Panel) (int, error) {
	if dock == nil {
		return -1, fmt.Errorf("dock is required")
	}
	if panel == nil {
		return -1, fmt.Errorf("panel is required")
	}
	log := logging.FromContext(logging.WithPanelID(ctx, panel.PanelID()))

	idx := dock.AddPanel(panel)
	if idx < 0 {
		log.Debug().
			Str("placement", dock.Placement().String()).
			Msg("panel rejected placement")
		return -1, fmt.Errorf("register %s on %s dock: %w", panel.PanelID(), dock.Placement(), ErrPanelRejected)
	}

	log.Info().
		Str("placement", dock.Placement().String()).
		Int("index", idx).
		Int("priority", panel.ActivationPriority()).
		Bool("open", dock.IsOpen()).
		Msg("panel registered")
	return idx, nil
}

// UnregisterPanel removes the panel with the given ID from dock.
func (uc *ManageDocksUseCase) UnregisterPanel(ctx context.Context, dock *entity.Dock, panelID string) error {
	if dock == nil {
		return fmt.Errorf("dock is required")
	}
	log := logging.FromContext(logging.WithPanelID(ctx, panelID))

	if !dock.RemovePanel(panelID) {
		log.Debug().Msg("unregister ignored, panel not docked")
		return fmt.Errorf("unregister %s: %w", panelID, ErrPanelNotFound)
	}

	log.Info().
		Str("placement", dock.Placement().String()).
		Bool("open", dock.IsOpen()).
		Msg("panel unregistered")
	return nil
}

// TogglePanel shows the panel, or closes the dock when it is already showing.
// It returns whether the panel is visible afterwards.
func (uc *ManageDocksUseCase) TogglePanel(ctx context.Context, dock *entity.Dock, panelID string) (bool, error) {
	if dock == nil {
		return false, fmt.Errorf("dock is required")
	}
	if dock.PanelIndex(panelID) < 0 {
		return false, fmt.Errorf("toggle %s: %w", panelID, ErrPanelNotFound)
	}

	visible := dock.TogglePanel(panelID)
	logging.FromContext(logging.WithPanelID(ctx, panelID)).Debug().
		Str("placement", dock.Placement().String()).
		Bool("visible", visible).
		Msg("panel toggled")
	return visible, nil
}

// FocusPanel activates the panel and opens its dock.
func (uc *ManageDocksUseCase) FocusPanel(ctx context.Context, dock *entity.Dock, panelID string) error {
	if dock == nil {
		return fmt.Errorf("dock is required")
	}
	if dock.PanelIndex(panelID) < 0 {
		return fmt.Errorf("focus %s: %w", panelID, ErrPanelNotFound)
	}

	dock.ActivatePanelByID(panelID)
	dock.SetOpen(true)

	logging.FromContext(logging.WithPanelID(ctx, panelID)).Debug().
		Str("placement", dock.Placement().String()).
		Msg("panel focused")
	return nil
}

// ToggleDock opens or closes the dock, keeping its active panel.
// It returns whether the dock is open afterwards.
func (uc *ManageDocksUseCase) ToggleDock(ctx context.Context, dock *entity.Dock) (bool, error) {
	if dock == nil {
		return false, fmt.Errorf("dock is required")
	}
	open := !dock.IsOpen()
	if open && dock.PanelCount() > 0 {
		if _, ok := dock.ActivePanelIndex(); !ok {
			dock.ActivatePanel(0)
		}
	}
	dock.SetOpen(open)

	logging.FromContext(ctx).Debug().
		Str("placement", dock.Placement().String()).
		Bool("open", open).
		Msg("dock toggled")
	return open, nil
}

// ResizePanel stores a new preferred size on the dock's active panel.
func (uc *ManageDocksUseCase) ResizePanel(ctx context.Context, dock *entity.Dock, size int) error {
	if dock == nil {
		return fmt.Errorf("dock is required")
	}
	if !dock.ResizeActivePanel(size) {
		return ErrNothingToResize
	}
	logging.FromContext(ctx).Debug().
		Str("placement", dock.Placement().String()).
		Int("size", size).
		Msg("dock panel resized")
	return nil
}
