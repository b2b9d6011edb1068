package commands

//go:generate mockgen -source=project.go -destination=../../../tests/mock/commands/project_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"meeting-scheduler/internal/domain/project"
	reqdto "meeting-scheduler/internal/handler/dto/request"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProjectCommands interface {
	CreateProject(ctx context.Context, req reqdto.CreateProjectRequest) (uuid.UUID, error)
	OpenProject(ctx context.Context, id uuid.UUID) error
	UpdateSupplier(ctx context.Context, supplierID uuid.UUID, req reqdto.UpdateSupplierRequest) error
}

type projectCommandsImpl struct {
	repo      shared.ProjectRepository
	workspace *shared.Workspace
	clock     clock.Clock
	cfg       config.Config
	logger    *slog.Logger
}

func NewProjectCommands(
	repo shared.ProjectRepository,
	workspace *shared.Workspace,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ProjectCommands {
	return &projectCommandsImpl{
		repo:      repo,
		workspace: workspace,
		clock:     clock,
		cfg:       cfg,
		logger:    logger,
	}
}

// CreateProject stores the project and makes it the active one.
func (c *projectCommandsImpl) CreateProject(ctx context.Context, req reqdto.CreateProjectRequest) (uuid.UUID, error) {
	cfg, err := req.Event.ToDomain(c.cfg.Scheduler.Location())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	suppliers, buyers, err := req.Participants()
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	p, err := project.NewProject(req.Name, cfg, suppliers, buyers, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Save(ctx, p); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrRepositoryOperation)
	}

	c.workspace.Open(p.ID())
	c.logger.InfoContext(ctx, "project created",
		slog.String("project_id", p.ID().String()),
		slog.Int("suppliers", len(suppliers)),
		slog.Int("buyers", len(buyers)),
		slog.Int("slots", p.Schedule().SlotCount()))
	return p.ID(), nil
}

// OpenProject switches the active project. Undo/redo history does not carry over.
func (c *projectCommandsImpl) OpenProject(ctx context.Context, id uuid.UUID) error {
	if _, err := c.repo.FindByID(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrProjectNotFound)
	}
	c.workspace.Open(id)
	c.logger.InfoContext(ctx, "project opened", slog.String("project_id", id.String()))
	return nil
}

func (c *projectCommandsImpl) UpdateSupplier(ctx context.Context, supplierID uuid.UUID, req reqdto.UpdateSupplierRequest) error {
	return c.workspace.Write(func(sess shared.Session) error {
		p, err := c.repo.FindByID(ctx, sess.ActiveID)
		if err != nil {
			return errs.Mark(err, errs.ErrProjectNotFound)
		}
		existing, ok := p.Directory().Supplier(supplierID)
		if !ok {
			return errs.ErrSupplierNotFound
		}
		name, duration, pref, err := req.ToDomain(existing)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if _, err := p.UpdateSupplier(supplierID, name, duration, pref, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := c.repo.Save(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrRepositoryOperation)
		}
		c.logger.InfoContext(ctx, "supplier updated",
			slog.String("supplier_id", supplierID.String()),
			slog.String("preference_mode", string(pref.Mode())))
		return nil
	})
}
