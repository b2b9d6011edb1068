//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/project"
	"meeting-scheduler/internal/infra/memstore"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/queries"
	"meeting-scheduler/internal/usecase/shared"
	"meeting-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryFixture struct {
	repo      shared.ProjectRepository
	workspace *shared.Workspace
	project   *project.Project
	suppliers []*participant.Supplier
	buyers    []*participant.Buyer
}

// newQueryFixture opens a two-day project: 09:00-11:00 with a 10:00-10:30 break, S2 excludes B1.
func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memstore.NewProjectRepository(logger)
	ws := shared.NewWorkspace(config.NewTestConfig())

	buyers := builder.Buyers(2)
	suppliers := []*participant.Supplier{
		builder.NewSupplierBuilder().Named("S1").BuildDomain(),
		builder.NewSupplierBuilder().Named("S2").Excluding(buyers[0].ID()).BuildDomain(),
	}
	event := builder.NewEventBuilder().
		WithHours("09:00", "11:00").
		WithBreak("Coffee", "10:00", "10:30").
		WithDays(2).
		Build()
	p, err := project.NewProject("Expo", event, suppliers, buyers, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	ws.Open(p.ID())

	return &queryFixture{repo: repo, workspace: ws, project: p, suppliers: suppliers, buyers: buyers}
}

func (f *queryFixture) slotID(i int) uuid.UUID {
	return f.project.Schedule().Slots()[i].ID()
}

func (f *queryFixture) add(t *testing.T, s, b, slot int) uuid.UUID {
	t.Helper()
	working := f.project.Schedule().Clone()
	res := working.AddMeeting(f.suppliers[s].ID(), f.buyers[b].ID(), f.slotID(slot))
	require.True(t, res.Success, res.Message)
	f.project.ReplaceSchedule(working, time.Now())
	return res.MeetingID
}

func TestScheduleQueries_GetSchedule(t *testing.T) {
	f := newQueryFixture(t)
	clean := f.add(t, 0, 1, 0)
	doubled := f.add(t, 0, 0, 1)
	other := f.add(t, 1, 0, 1) // B1と重複、かつS2の除外対象
	q := queries.NewScheduleQueries(f.repo, f.workspace)

	view, err := q.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Expo", view.ProjectName)
	assert.Len(t, view.Slots, 8)
	assert.Len(t, view.Suppliers, 2)
	assert.Equal(t, "exclude", view.Suppliers[1].PreferenceMode)
	require.Len(t, view.Meetings, 3)

	byID := map[uuid.UUID]queries.MeetingView{}
	for _, m := range view.Meetings {
		byID[m.ID] = m
	}
	assert.False(t, byID[clean].HasConflict)
	assert.True(t, byID[doubled].HasConflict)
	assert.True(t, byID[other].HasConflict)
	assert.Equal(t, "S1", byID[clean].SupplierName)
	assert.Equal(t, "B2", byID[clean].BuyerName)
	assert.Equal(t, "scheduled", byID[clean].Status)
	assert.Equal(t, 9, byID[clean].Start.Hour())
	assert.Nil(t, byID[clean].BumpedFrom)
}

func TestScheduleQueries_ListSlots(t *testing.T) {
	f := newQueryFixture(t)
	q := queries.NewScheduleQueries(f.repo, f.workspace)

	t.Run("日付で絞り込む", func(t *testing.T) {
		slots, err := q.ListSlots(context.Background(), "2025-06-03")
		require.NoError(t, err)
		require.Len(t, slots, 4)
		for _, s := range slots {
			assert.Equal(t, "2025-06-03", s.Date)
		}
		assert.True(t, slots[2].IsBreak)
		assert.Equal(t, "Coffee", slots[2].BreakLabel)
	})

	t.Run("no filter", func(t *testing.T) {
		slots, err := q.ListSlots(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, slots, 8)
	})
}

func TestScheduleQueries_Checks(t *testing.T) {
	f := newQueryFixture(t)
	id := f.add(t, 0, 0, 0)
	q := queries.NewScheduleQueries(f.repo, f.workspace)
	ctx := context.Background()

	t.Run("supplierの重複はエラー扱い", func(t *testing.T) {
		view, err := q.CheckAdd(ctx, f.suppliers[0].ID(), f.buyers[1].ID(), f.slotID(0))
		require.NoError(t, err)
		assert.True(t, view.HasErrors)
		assert.False(t, view.HasWarnings)
		require.Len(t, view.Conflicts, 1)
		assert.Equal(t, "supplier_busy", view.Conflicts[0].Type)
		require.NotNil(t, view.Conflicts[0].ConflictingMeetingID)
		assert.Equal(t, id, *view.Conflicts[0].ConflictingMeetingID)
	})

	t.Run("除外された組み合わせは警告のみ", func(t *testing.T) {
		view, err := q.CheckAdd(ctx, f.suppliers[1].ID(), f.buyers[0].ID(), f.slotID(1))
		require.NoError(t, err)
		assert.True(t, view.HasConflicts)
		assert.False(t, view.HasErrors)
		assert.True(t, view.HasWarnings)
		assert.Equal(t, "preference_violation", view.Conflicts[0].Type)
	})

	t.Run("move ignores the meeting itself", func(t *testing.T) {
		view, err := q.CheckMove(ctx, id, f.slotID(0))
		require.NoError(t, err)
		assert.False(t, view.HasConflicts)
		assert.False(t, view.HasWarnings)
		assert.Empty(t, view.Conflicts)
	})

	t.Run("lookup errors are classified", func(t *testing.T) {
		_, err := q.CheckAdd(ctx, uuid.New(), f.buyers[0].ID(), f.slotID(0))
		assert.True(t, errs.Is(err, errs.ErrSupplierNotFound))
		_, err = q.CheckAdd(ctx, f.suppliers[0].ID(), uuid.New(), f.slotID(0))
		assert.True(t, errs.Is(err, errs.ErrBuyerNotFound))
		_, err = q.CheckAdd(ctx, f.suppliers[0].ID(), f.buyers[0].ID(), f.slotID(2))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		_, err = q.CheckMove(ctx, uuid.New(), f.slotID(0))
		assert.True(t, errs.Is(err, errs.ErrMeetingNotFound))
		_, err = q.MeetingConflicts(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrMeetingNotFound))
	})
}

func TestScheduleQueries_Summary(t *testing.T) {
	f := newQueryFixture(t)
	f.add(t, 0, 0, 1)
	f.add(t, 1, 0, 1)
	q := queries.NewScheduleQueries(f.repo, f.workspace)

	view, err := q.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)
	require.Len(t, view.DoubleBookings, 1)
	assert.Equal(t, "B1", view.DoubleBookings[0].BuyerName)
	assert.Len(t, view.DoubleBookings[0].MeetingIDs, 2)
	require.Len(t, view.PreferenceViolations, 1)
	assert.Equal(t, f.suppliers[1].ID(), view.PreferenceViolations[0].SupplierID)
}

func TestScheduleQueries_History(t *testing.T) {
	t.Run("no active project", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		q := queries.NewScheduleQueries(memstore.NewProjectRepository(logger), shared.NewWorkspace(config.NewTestConfig()))
		_, err := q.History(context.Background())
		assert.ErrorIs(t, err, errs.ErrNoActiveProject)
		_, err = q.GetSchedule(context.Background())
		assert.ErrorIs(t, err, errs.ErrNoActiveProject)
	})

	t.Run("reports depths and limit", func(t *testing.T) {
		f := newQueryFixture(t)
		require.NoError(t, f.workspace.Write(func(sess shared.Session) error {
			sess.History.Push(f.project.Schedule())
			return nil
		}))
		q := queries.NewScheduleQueries(f.repo, f.workspace)

		view, err := q.History(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &queries.HistoryView{CanUndo: true, UndoDepth: 1, Limit: 20}, view)
	})
}
