package commands

//go:generate mockgen -source=schedule.go -destination=../../../tests/mock/commands/schedule_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"meeting-scheduler/internal/domain/assignment"
	"meeting-scheduler/internal/domain/conflict"
	"meeting-scheduler/internal/domain/meeting"
	"meeting-scheduler/internal/domain/project"
	"meeting-scheduler/internal/domain/schedule"
	reqdto "meeting-scheduler/internal/handler/dto/request"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/pkg/metrics"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleCommands interface {
	Generate(ctx context.Context, req reqdto.GenerateScheduleRequest) (*GenerateResult, error)
	AddMeeting(ctx context.Context, req reqdto.AddMeetingRequest) (*MutationResult, error)
	MoveMeeting(ctx context.Context, meetingID uuid.UUID, req reqdto.MoveMeetingRequest) (*MutationResult, error)
	SwapMeetings(ctx context.Context, req reqdto.SwapMeetingsRequest) (*MutationResult, error)
	CancelMeeting(ctx context.Context, meetingID uuid.UUID) (*MutationResult, error)
	BumpMeeting(ctx context.Context, meetingID uuid.UUID) (*MutationResult, error)
	AutoFillGaps(ctx context.Context) (*MutationResult, error)
	ChangeStatus(ctx context.Context, meetingID uuid.UUID, req reqdto.ChangeStatusRequest) (*MutationResult, error)
	Undo(ctx context.Context) (*HistoryResult, error)
	Redo(ctx context.Context) (*HistoryResult, error)
}

type scheduleCommandsImpl struct {
	repo      shared.ProjectRepository
	workspace *shared.Workspace
	generator shared.ScheduleGenerator
	clock     clock.Clock
	cfg       config.SchedulerConfig
	logger    *slog.Logger
}

func NewScheduleCommands(
	repo shared.ProjectRepository,
	workspace *shared.Workspace,
	generator shared.ScheduleGenerator,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		repo:      repo,
		workspace: workspace,
		generator: generator,
		clock:     clock,
		cfg:       cfg.Scheduler,
		logger:    logger,
	}
}

// Generate runs assignment for the active project on the worker and replaces the
// schedule with the result. The previous schedule goes onto the undo stack.
func (c *scheduleCommandsImpl) Generate(ctx context.Context, req reqdto.GenerateScheduleRequest) (*GenerateResult, error) {
	name := req.Strategy
	if name == "" {
		name = c.cfg.DefaultStrategy
	}
	strategy, err := assignment.ParseStrategy(name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStrategy)
	}
	opts := assignment.Options{Strategy: strategy}
	switch {
	case req.Seed != nil:
		opts.Rand = rand.New(rand.NewPCG(*req.Seed, *req.Seed))
	case c.cfg.ShuffleTies:
		seed := uint64(c.clock.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}

	var (
		job      shared.GenerationJob
		activeID uuid.UUID
	)
	err = c.workspace.Read(func(sess shared.Session) error {
		p, err := c.repo.FindByID(ctx, sess.ActiveID)
		if err != nil {
			return errs.Mark(err, errs.ErrProjectNotFound)
		}
		dir := p.Directory().Snapshot()
		activeID = sess.ActiveID
		job = shared.GenerationJob{
			ID:        uuid.New(),
			Config:    p.Config(),
			Suppliers: dir.Suppliers(),
			Buyers:    dir.Buyers(),
			Options:   opts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, c.cfg.GenerationTimeout)
	defer cancel()
	result, err := c.generator.Generate(genCtx, job)
	if err != nil {
		metrics.RecordOperation("generate", metrics.OutcomeError)
		c.logger.ErrorContext(ctx, "schedule generation failed", slog.Any("error", err))
		return nil, err
	}

	err = c.workspace.Write(func(sess shared.Session) error {
		if sess.ActiveID != activeID {
			return errs.ErrProjectChanged
		}
		p, err := c.repo.FindByID(ctx, sess.ActiveID)
		if err != nil {
			return errs.Mark(err, errs.ErrProjectNotFound)
		}
		sess.History.Push(p.Schedule())
		p.ReplaceSchedule(result.Schedule(), c.clock.Now())
		return c.save(ctx, p)
	})
	if err != nil {
		metrics.RecordOperation("generate", metrics.OutcomeError)
		return nil, err
	}

	metrics.RecordOperation("generate", metrics.OutcomeSuccess)
	metrics.UnscheduledPairs.Set(float64(result.Stats.Unscheduled))
	c.logger.InfoContext(ctx, "schedule generated",
		slog.String("strategy", string(strategy)),
		slog.Int("placed", result.Stats.Placed),
		slog.Int("unscheduled", result.Stats.Unscheduled))

	return &GenerateResult{
		Strategy:    strategy,
		Desired:     result.Stats.Desired,
		Placed:      result.Stats.Placed,
		Unscheduled: result.Stats.Unscheduled,
		Days:        result.Stats.Days,
	}, nil
}

// AddMeeting refuses when the conflict check finds an error and reports any warnings.
func (c *scheduleCommandsImpl) AddMeeting(ctx context.Context, req reqdto.AddMeetingRequest) (*MutationResult, error) {
	return c.mutate(ctx, "add", func(p *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info) {
		check, err := conflict.NewEngine(p.Directory()).CheckAdd(working, req.SupplierID, req.BuyerID, req.SlotID)
		if err != nil {
			return checkFailure(err), nil
		}
		if check.HasErrors() {
			return schedule.Fail(schedule.FailureConflict, "%s", check.Errors()[0].Description), check.Conflicts
		}
		return working.AddMeeting(req.SupplierID, req.BuyerID, req.SlotID), check.Conflicts
	})
}

func (c *scheduleCommandsImpl) MoveMeeting(ctx context.Context, meetingID uuid.UUID, req reqdto.MoveMeetingRequest) (*MutationResult, error) {
	return c.mutate(ctx, "move", func(p *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info) {
		check, err := conflict.NewEngine(p.Directory()).CheckMove(working, meetingID, req.SlotID)
		if err != nil {
			return checkFailure(err), nil
		}
		if check.HasErrors() {
			return schedule.Fail(schedule.FailureConflict, "%s", check.Errors()[0].Description), check.Conflicts
		}
		return working.MoveMeeting(meetingID, req.SlotID), check.Conflicts
	})
}

func (c *scheduleCommandsImpl) SwapMeetings(ctx context.Context, req reqdto.SwapMeetingsRequest) (*MutationResult, error) {
	return c.mutate(ctx, "swap", func(_ *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info) {
		return working.SwapMeetings(req.FirstID, req.SecondID), nil
	})
}

func (c *scheduleCommandsImpl) CancelMeeting(ctx context.Context, meetingID uuid.UUID) (*MutationResult, error) {
	return c.mutate(ctx, "cancel", func(_ *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info) {
		return working.CancelMeeting(meetingID), nil
	})
}

func (c *scheduleCommandsImpl) BumpMeeting(ctx context.Context, meetingID uuid.UUID) (*MutationResult, error) {
	return c.mutate(ctx, "bump", func(_ *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info) {
		return working.BumpMeeting(meetingID), nil
	})
}

func (c *scheduleCommandsImpl) AutoFillGaps(ctx context.Context) (*MutationResult, error) {
	return c.mutate(ctx, "auto_fill", func(p *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info) {
		return working.AutoFillGaps(p.Directory()), nil
	})
}

func (c *scheduleCommandsImpl) ChangeStatus(ctx context.Context, meetingID uuid.UUID, req reqdto.ChangeStatusRequest) (*MutationResult, error) {
	return c.mutate(ctx, "change_status", func(_ *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info) {
		return working.ChangeStatus(meetingID, meeting.Status(req.Status), req.Reason, c.clock.Now()), nil
	})
}

func (c *scheduleCommandsImpl) Undo(ctx context.Context) (*HistoryResult, error) {
	return c.travel(ctx, "undo", func(sess shared.Session, current *schedule.Schedule) (*schedule.Schedule, bool) {
		return sess.History.Undo(current)
	}, errs.ErrNothingToUndo)
}

func (c *scheduleCommandsImpl) Redo(ctx context.Context) (*HistoryResult, error) {
	return c.travel(ctx, "redo", func(sess shared.Session, current *schedule.Schedule) (*schedule.Schedule, bool) {
		return sess.History.Redo(current)
	}, errs.ErrNothingToRedo)
}

type applyFunc func(p *project.Project, working *schedule.Schedule) (schedule.OperationResult, []conflict.Info)

// mutate applies fn to a copy of the active schedule. Only a successful change is
// committed, and the previous schedule is pushed under the same lock.
func (c *scheduleCommandsImpl) mutate(ctx context.Context, op string, fn applyFunc) (*MutationResult, error) {
	var out *MutationResult
	err := c.workspace.Write(func(sess shared.Session) error {
		p, err := c.repo.FindByID(ctx, sess.ActiveID)
		if err != nil {
			return errs.Mark(err, errs.ErrProjectNotFound)
		}

		working := p.Schedule().Clone()
		res, conflicts := fn(p, working)
		if res.Changed() {
			sess.History.Push(p.Schedule())
			p.ReplaceSchedule(working, c.clock.Now())
			if err := c.save(ctx, p); err != nil {
				return err
			}
		}
		out = &MutationResult{OperationResult: res, Conflicts: conflicts}
		return nil
	})
	if err != nil {
		metrics.RecordOperation(op, metrics.OutcomeError)
		c.logger.ErrorContext(ctx, "schedule operation error", slog.String("operation", op), slog.Any("error", err))
		return nil, err
	}

	attrs := []any{
		slog.String("operation", op),
		slog.Bool("success", out.Success),
		slog.Bool("changed", out.Changed()),
	}
	if out.MeetingID != uuid.Nil {
		attrs = append(attrs, slog.String("meeting_id", out.MeetingID.String()))
	}
	if out.Success {
		metrics.RecordOperation(op, metrics.OutcomeSuccess)
		c.logger.InfoContext(ctx, out.Message, attrs...)
	} else {
		metrics.RecordOperation(op, metrics.OutcomeFailure)
		attrs = append(attrs, slog.String("failure", string(out.Failure)))
		c.logger.WarnContext(ctx, out.Message, attrs...)
	}
	return out, nil
}

func (c *scheduleCommandsImpl) travel(
	ctx context.Context,
	op string,
	step func(shared.Session, *schedule.Schedule) (*schedule.Schedule, bool),
	empty error,
) (*HistoryResult, error) {
	var out *HistoryResult
	err := c.workspace.Write(func(sess shared.Session) error {
		p, err := c.repo.FindByID(ctx, sess.ActiveID)
		if err != nil {
			return errs.Mark(err, errs.ErrProjectNotFound)
		}
		restored, ok := step(sess, p.Schedule())
		if !ok {
			return empty
		}
		p.ReplaceSchedule(restored, c.clock.Now())
		if err := c.save(ctx, p); err != nil {
			return err
		}
		out = &HistoryResult{
			CanUndo:   sess.History.CanUndo(),
			CanRedo:   sess.History.CanRedo(),
			UndoDepth: sess.History.UndoDepth(),
			RedoDepth: sess.History.RedoDepth(),
		}
		return nil
	})
	if err != nil {
		metrics.RecordOperation(op, metrics.OutcomeFailure)
		return nil, err
	}
	metrics.RecordOperation(op, metrics.OutcomeSuccess)
	c.logger.InfoContext(ctx, "history "+op, slog.Int("undo_depth", out.UndoDepth), slog.Int("redo_depth", out.RedoDepth))
	return out, nil
}

func (c *scheduleCommandsImpl) save(ctx context.Context, p *project.Project) error {
	if err := c.repo.Save(ctx, p); err != nil {
		return errs.Mark(err, errs.ErrRepositoryOperation)
	}
	return nil
}

func checkFailure(err error) schedule.OperationResult {
	switch {
	case errors.Is(err, conflict.ErrBreakSlot):
		return schedule.Fail(schedule.FailureInvalidInput, "%v", err)
	default:
		return schedule.Fail(schedule.FailureNotFound, "%v", err)
	}
}
