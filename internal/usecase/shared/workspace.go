package shared

import (
	"sync"

	"meeting-scheduler/internal/domain/schedule"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/pkg/history"

	"github.com/google/uuid"
)

// Session is what a workspace callback sees while it holds the lock.
type Session struct {
	ActiveID uuid.UUID
	History  *history.Tracker[*schedule.Schedule]
}

// Workspace owns the active project and its undo/redo history. Every history push
// and the mutation it belongs to run inside one Write call.
type Workspace struct {
	mu       sync.RWMutex
	activeID uuid.UUID
	history  *history.Tracker[*schedule.Schedule]
}

func NewWorkspace(cfg config.Config) *Workspace {
	return &Workspace{
		history: history.NewTracker[*schedule.Schedule](cfg.Scheduler.HistoryLimit),
	}
}

// Open makes id the active project and discards the previous project's history.
func (w *Workspace) Open(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.activeID = id
	w.history.Clear()
}

func (w *Workspace) Active() (uuid.UUID, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.activeID, w.activeID != uuid.Nil
}

func (w *Workspace) Write(fn func(Session) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.activeID == uuid.Nil {
		return errs.ErrNoActiveProject
	}
	return fn(Session{ActiveID: w.activeID, History: w.history})
}

// Read must not mutate the session history.
func (w *Workspace) Read(fn func(Session) error) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.activeID == uuid.Nil {
		return errs.ErrNoActiveProject
	}
	return fn(Session{ActiveID: w.activeID, History: w.history})
}

// ReadAll runs fn under the read lock whether or not a project is active.
func (w *Workspace) ReadAll(fn func(activeID uuid.UUID) error) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return fn(w.activeID)
}
