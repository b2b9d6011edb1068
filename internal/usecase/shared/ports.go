package shared

import (
	"context"

	"meeting-scheduler/internal/domain/assignment"
	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Save(ctx context.Context, p *project.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error)
	List(ctx context.Context) ([]*project.Project, error)
}

// GenerationJob carries copies of everything the assignment needs, so the worker
// never touches live project state.
type GenerationJob struct {
	ID        uuid.UUID
	Config    grid.EventConfig
	Suppliers []*participant.Supplier
	Buyers    []*participant.Buyer
	Options   assignment.Options
}

// ScheduleGenerator runs assignment off the request goroutine and hands back a complete result.
type ScheduleGenerator interface {
	Generate(ctx context.Context, job GenerationJob) (assignment.Result, error)
}
