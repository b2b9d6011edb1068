// Package memstore keeps projects in process memory.
package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"meeting-scheduler/internal/domain/project"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type projectRepository struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]*project.Project
	order    []uuid.UUID
	logger   *slog.Logger
}

func NewProjectRepository(logger *slog.Logger) shared.ProjectRepository {
	return &projectRepository{
		projects: make(map[uuid.UUID]*project.Project),
		logger:   logger,
	}
}

func (r *projectRepository) Save(_ context.Context, p *project.Project) error {
	if p == nil {
		return infra.WrapRepoErr(r.logger, infra.KindInvalidInput, "project is nil", errs.ErrInvalidProject)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.projects[p.ID()]; !exists {
		r.order = append(r.order, p.ID())
	}
	r.projects[p.ID()] = p
	return nil
}

func (r *projectRepository) FindByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "project not found", errs.ErrProjectNotFound)
	}
	return p, nil
}

// List returns projects in creation order.
func (r *projectRepository) List(_ context.Context) ([]*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*project.Project, 0, len(r.order))
	for _, id := range slices.Clone(r.order) {
		out = append(out, r.projects[id])
	}
	return out, nil
}
