package queries

//go:generate mockgen -source=schedule.go -destination=../../../tests/mock/queries/schedule_mock.go -package=queriesmock

import (
	"context"
	"errors"

	"meeting-scheduler/internal/domain/conflict"
	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/meeting"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/project"
	"meeting-scheduler/internal/domain/schedule"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/pkg/ptr"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	GetSchedule(ctx context.Context) (*ScheduleView, error)
	ListSlots(ctx context.Context, date string) ([]SlotView, error)
	CheckAdd(ctx context.Context, supplierID, buyerID, slotID uuid.UUID) (*ConflictCheckView, error)
	CheckMove(ctx context.Context, meetingID, slotID uuid.UUID) (*ConflictCheckView, error)
	MeetingConflicts(ctx context.Context, meetingID uuid.UUID) (*ConflictCheckView, error)
	Summary(ctx context.Context) (*ConflictSummaryView, error)
	History(ctx context.Context) (*HistoryView, error)
}

type scheduleQueriesImpl struct {
	repo      shared.ProjectRepository
	workspace *shared.Workspace
}

func NewScheduleQueries(repo shared.ProjectRepository, workspace *shared.Workspace) ScheduleQueries {
	return &scheduleQueriesImpl{repo: repo, workspace: workspace}
}

func (q *scheduleQueriesImpl) GetSchedule(ctx context.Context) (*ScheduleView, error) {
	var view *ScheduleView
	err := q.withActive(ctx, func(p *project.Project) error {
		s := p.Schedule()
		dir := p.Directory()
		flagged := conflictingMeetings(conflict.NewEngine(dir).Summarize(s))

		view = &ScheduleView{
			ProjectID:   p.ID(),
			ProjectName: p.Name(),
			Suppliers:   make([]SupplierView, 0, len(dir.Suppliers())),
			Buyers:      make([]BuyerView, 0, len(dir.Buyers())),
			Slots:       toSlotViews(s.Slots(), ""),
			Meetings:    make([]MeetingView, 0, s.MeetingCount()),
			Unscheduled: make([]UnscheduledView, 0, s.UnscheduledCount()),
		}
		for _, sup := range dir.Suppliers() {
			view.Suppliers = append(view.Suppliers, toSupplierView(sup))
		}
		for _, b := range dir.Buyers() {
			view.Buyers = append(view.Buyers, BuyerView{ID: b.ID(), Name: b.Name(), Company: b.Company()})
		}
		for _, m := range s.Meetings() {
			mv := toMeetingView(m, s, dir)
			_, mv.HasConflict = flagged[m.ID()]
			view.Meetings = append(view.Meetings, mv)
		}
		for _, u := range s.Unscheduled() {
			view.Unscheduled = append(view.Unscheduled, UnscheduledView{
				SupplierID:   u.SupplierID,
				SupplierName: dir.SupplierName(u.SupplierID),
				BuyerID:      u.BuyerID,
				BuyerName:    dir.BuyerName(u.BuyerID),
				Reason:       u.Reason,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListSlots returns the grid, or one date of it when date is set (YYYY-MM-DD).
func (q *scheduleQueriesImpl) ListSlots(ctx context.Context, date string) ([]SlotView, error) {
	var slots []SlotView
	err := q.withActive(ctx, func(p *project.Project) error {
		slots = toSlotViews(p.Schedule().Slots(), date)
		return nil
	})
	return slots, err
}

func (q *scheduleQueriesImpl) CheckAdd(ctx context.Context, supplierID, buyerID, slotID uuid.UUID) (*ConflictCheckView, error) {
	return q.check(ctx, func(e *conflict.Engine, s *schedule.Schedule) (conflict.Result, error) {
		return e.CheckAdd(s, supplierID, buyerID, slotID)
	})
}

func (q *scheduleQueriesImpl) CheckMove(ctx context.Context, meetingID, slotID uuid.UUID) (*ConflictCheckView, error) {
	return q.check(ctx, func(e *conflict.Engine, s *schedule.Schedule) (conflict.Result, error) {
		return e.CheckMove(s, meetingID, slotID)
	})
}

func (q *scheduleQueriesImpl) MeetingConflicts(ctx context.Context, meetingID uuid.UUID) (*ConflictCheckView, error) {
	return q.check(ctx, func(e *conflict.Engine, s *schedule.Schedule) (conflict.Result, error) {
		return e.ForMeeting(s, meetingID)
	})
}

func (q *scheduleQueriesImpl) Summary(ctx context.Context) (*ConflictSummaryView, error) {
	var view *ConflictSummaryView
	err := q.withActive(ctx, func(p *project.Project) error {
		dir := p.Directory()
		summary := conflict.NewEngine(dir).Summarize(p.Schedule())
		view = &ConflictSummaryView{
			Total:                summary.Total(),
			DoubleBookings:       make([]DoubleBookingView, 0, len(summary.DoubleBookings)),
			PreferenceViolations: make([]PreferenceViolationView, 0, len(summary.PreferenceViolations)),
		}
		for _, d := range summary.DoubleBookings {
			view.DoubleBookings = append(view.DoubleBookings, DoubleBookingView{
				BuyerID:    d.BuyerID,
				BuyerName:  dir.BuyerName(d.BuyerID),
				SlotID:     d.SlotID,
				MeetingIDs: d.MeetingIDs,
			})
		}
		for _, v := range summary.PreferenceViolations {
			view.PreferenceViolations = append(view.PreferenceViolations, PreferenceViolationView(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *scheduleQueriesImpl) History(_ context.Context) (*HistoryView, error) {
	var view *HistoryView
	err := q.workspace.Read(func(sess shared.Session) error {
		view = &HistoryView{
			CanUndo:   sess.History.CanUndo(),
			CanRedo:   sess.History.CanRedo(),
			UndoDepth: sess.History.UndoDepth(),
			RedoDepth: sess.History.RedoDepth(),
			Limit:     sess.History.Limit(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *scheduleQueriesImpl) withActive(ctx context.Context, fn func(*project.Project) error) error {
	return q.workspace.Read(func(sess shared.Session) error {
		p, err := q.repo.FindByID(ctx, sess.ActiveID)
		if err != nil {
			return errs.Mark(err, errs.ErrProjectNotFound)
		}
		return fn(p)
	})
}

func (q *scheduleQueriesImpl) check(ctx context.Context, fn func(*conflict.Engine, *schedule.Schedule) (conflict.Result, error)) (*ConflictCheckView, error) {
	var view *ConflictCheckView
	err := q.withActive(ctx, func(p *project.Project) error {
		res, err := fn(conflict.NewEngine(p.Directory()), p.Schedule())
		if err != nil {
			return classifyConflictErr(err)
		}
		view = toConflictCheckView(res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func classifyConflictErr(err error) error {
	switch {
	case errors.Is(err, conflict.ErrMeetingNotFound):
		return errs.Mark(err, errs.ErrMeetingNotFound)
	case errors.Is(err, conflict.ErrSlotNotFound):
		return errs.Mark(err, errs.ErrSlotNotFound)
	case errors.Is(err, conflict.ErrUnknownSupplier):
		return errs.Mark(err, errs.ErrSupplierNotFound)
	case errors.Is(err, conflict.ErrUnknownBuyer):
		return errs.Mark(err, errs.ErrBuyerNotFound)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func conflictingMeetings(summary conflict.Summary) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{})
	for _, d := range summary.DoubleBookings {
		for _, id := range d.MeetingIDs {
			out[id] = struct{}{}
		}
	}
	for _, v := range summary.PreferenceViolations {
		out[v.MeetingID] = struct{}{}
	}
	return out
}

func toSlotViews(slots []grid.TimeSlot, date string) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, ts := range slots {
		if date != "" && ts.DateKey() != date {
			continue
		}
		out = append(out, SlotView{
			ID:         ts.ID(),
			Date:       ts.DateKey(),
			Start:      ts.Start(),
			End:        ts.End(),
			IsBreak:    ts.IsBreak(),
			BreakLabel: ts.BreakLabel(),
		})
	}
	return out
}

func toSupplierView(s *participant.Supplier) SupplierView {
	pref := s.Preference()
	return SupplierView{
		ID:              s.ID(),
		Name:            s.Name(),
		Company:         s.Company(),
		MeetingDuration: s.MeetingDuration(),
		PreferenceMode:  pref.Mode().String(),
		BuyerIDs:        pref.BuyerIDs(),
	}
}

func toMeetingView(m meeting.Meeting, s *schedule.Schedule, dir *participant.Directory) MeetingView {
	mv := MeetingView{
		ID:           m.ID(),
		SupplierID:   m.SupplierID(),
		SupplierName: dir.SupplierName(m.SupplierID()),
		BuyerID:      m.BuyerID(),
		BuyerName:    dir.BuyerName(m.BuyerID()),
		TimeSlotID:   m.TimeSlotID(),
		Status:       m.Status().String(),
		DelayReason:  m.DelayReason(),
	}
	if ts, ok := s.Slot(m.TimeSlotID()); ok {
		mv.Start, mv.End = ts.Start(), ts.End()
	}
	if id, ok := m.OriginalTimeSlotID(); ok {
		mv.OriginalTimeSlotID = ptr.UUID(id)
	}
	if id, ok := m.BumpedFrom(); ok {
		mv.BumpedFrom = ptr.UUID(id)
	}
	if at, ok := m.DelayedAt(); ok {
		mv.DelayedAt = ptr.To(at)
	}
	return mv
}

func toConflictCheckView(res conflict.Result) *ConflictCheckView {
	view := &ConflictCheckView{
		HasConflicts: res.HasConflicts(),
		HasErrors:    res.HasErrors(),
		HasWarnings:  res.HasWarnings(),
		Conflicts:    make([]ConflictView, 0, len(res.Conflicts)),
	}
	for _, c := range res.Conflicts {
		view.Conflicts = append(view.Conflicts, ConflictView{
			Type:                 string(c.Type),
			Severity:             string(c.Severity),
			Description:          c.Description,
			ConflictingMeetingID: ptr.UUID(c.ConflictingMeetingID),
		})
	}
	return view
}
