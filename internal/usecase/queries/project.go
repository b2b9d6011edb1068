package queries

//go:generate mockgen -source=project.go -destination=../../../tests/mock/queries/project_mock.go -package=queriesmock

import (
	"context"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProjectQueries interface {
	List(ctx context.Context) ([]*ProjectView, error)
}

type projectQueriesImpl struct {
	repo      shared.ProjectRepository
	workspace *shared.Workspace
}

func NewProjectQueries(repo shared.ProjectRepository, workspace *shared.Workspace) ProjectQueries {
	return &projectQueriesImpl{repo: repo, workspace: workspace}
}

// List returns every project in creation order and flags the active one.
func (q *projectQueriesImpl) List(ctx context.Context) ([]*ProjectView, error) {
	var views []*ProjectView
	err := q.workspace.ReadAll(func(activeID uuid.UUID) error {
		projects, err := q.repo.List(ctx)
		if err != nil {
			return err
		}
		views = make([]*ProjectView, 0, len(projects))
		for _, p := range projects {
			cfg := p.Config()
			views = append(views, &ProjectView{
				ID:            p.ID(),
				Name:          p.Name(),
				Active:        p.ID() == activeID,
				StartDate:     cfg.StartDate.Format(grid.DateLayout),
				EndDate:       cfg.EndDate.Format(grid.DateLayout),
				SupplierCount: len(p.Directory().Suppliers()),
				BuyerCount:    len(p.Directory().Buyers()),
				MeetingCount:  p.Schedule().MeetingCount(),
				CreatedAt:     p.CreatedAt(),
				UpdatedAt:     p.UpdatedAt(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
