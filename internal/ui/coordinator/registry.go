package coordinator

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Registry resolves WorkspaceID handles held by panes and docks.
// A handle resolves to nothing once its workspace is closed.
type Registry struct {
	mu         sync.RWMutex
	workspaces map[entity.WorkspaceID]*Workspace
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{workspaces: make(map[entity.WorkspaceID]*Workspace)}
}

// Register makes w resolvable by its ID, replacing any previous entry.
func (r *Registry) Register(w *Workspace) {
	if w == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workspaces[w.ID()] = w
}

// Lookup returns the live workspace for id.
func (r *Registry) Lookup(id entity.WorkspaceID) (*Workspace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workspaces[id]
	return w, ok
}

// WorkspaceOf resolves the owning workspace of a pane.
func (r *Registry) WorkspaceOf(pane *entity.Pane) (*Workspace, bool) {
	if pane == nil {
		return nil, false
	}
	return r.Lookup(pane.Workspace)
}

// Close closes the workspace and forgets it. Later lookups return false.
func (r *Registry) Close(ctx context.Context, id entity.WorkspaceID) bool {
	r.mu.Lock()
	w, ok := r.workspaces[id]
	delete(r.workspaces, id)
	r.mu.Unlock()

	if !ok {
		return false
	}
	w.close(ctx)
	return true
}

// IDs returns the registered workspace IDs, sorted.
func (r *Registry) IDs() []entity.WorkspaceID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]entity.WorkspaceID, 0, len(r.workspaces))
	for id := range r.workspaces {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
