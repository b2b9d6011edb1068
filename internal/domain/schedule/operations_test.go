//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/meeting"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/schedule"
	"meeting-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	slots     []grid.TimeSlot
	suppliers []*participant.Supplier
	buyers    []*participant.Buyer
	dir       *participant.Directory
	sched     *schedule.Schedule
}

// 09:00-11:00 with a 10:00-10:30 coffee break: slots 0,1 meeting, 2 break, 3 meeting.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	slots := builder.NewEventBuilder().
		WithHours("09:00", "11:00").
		WithBreak("Coffee", "10:00", "10:30").
		BuildSlots()
	require.Len(t, slots, 4)
	require.True(t, slots[2].IsBreak())

	suppliers := builder.Suppliers(2)
	buyers := builder.Buyers(3)
	return &fixture{
		slots:     slots,
		suppliers: suppliers,
		buyers:    buyers,
		dir:       builder.Directory(suppliers, buyers),
		sched:     schedule.Empty(slots),
	}
}

func (f *fixture) add(t *testing.T, s, b, slot int) uuid.UUID {
	t.Helper()
	res := f.sched.AddMeeting(f.suppliers[s].ID(), f.buyers[b].ID(), f.slots[slot].ID())
	require.True(t, res.Success, res.Message)
	return res.MeetingID
}

func (f *fixture) meeting(t *testing.T, id uuid.UUID) meeting.Meeting {
	t.Helper()
	m, ok := f.sched.Meeting(id)
	require.True(t, ok)
	return m
}

func TestAddMeeting(t *testing.T) {
	t.Run("creates a scheduled meeting", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)

		m := f.meeting(t, id)
		assert.Equal(t, meeting.StatusScheduled, m.Status())
		assert.Equal(t, f.slots[0].ID(), m.TimeSlotID())
	})

	t.Run("refuses supplier double-booking without changing the schedule", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, 0, 0, 0)
		before := f.sched.Meetings()

		res := f.sched.AddMeeting(f.suppliers[0].ID(), f.buyers[1].ID(), f.slots[0].ID())

		assert.False(t, res.Success)
		assert.Equal(t, schedule.FailureConflict, res.Failure)
		assert.Equal(t, before, f.sched.Meetings())
	})

	t.Run("allows buyer double-booking", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, 0, 0, 0)
		res := f.sched.AddMeeting(f.suppliers[1].ID(), f.buyers[0].ID(), f.slots[0].ID())
		assert.True(t, res.Success)
	})

	t.Run("cancelled meetings do not block the slot", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		require.True(t, f.sched.CancelMeeting(id).Success)

		res := f.sched.AddMeeting(f.suppliers[0].ID(), f.buyers[1].ID(), f.slots[0].ID())
		assert.True(t, res.Success)
	})

	t.Run("rejects break and unknown slots", func(t *testing.T) {
		f := newFixture(t)
		res := f.sched.AddMeeting(f.suppliers[0].ID(), f.buyers[0].ID(), f.slots[2].ID())
		assert.Equal(t, schedule.FailureInvalidInput, res.Failure)

		res = f.sched.AddMeeting(f.suppliers[0].ID(), f.buyers[0].ID(), uuid.New())
		assert.Equal(t, schedule.FailureNotFound, res.Failure)
		assert.Zero(t, f.sched.MeetingCount())
	})
}

func TestMoveMeeting(t *testing.T) {
	t.Run("keeps the meeting identity", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)

		res := f.sched.MoveMeeting(id, f.slots[3].ID())

		require.True(t, res.Success)
		assert.True(t, res.Changed())
		assert.Equal(t, 1, f.sched.MeetingCount())
		assert.Equal(t, f.slots[3].ID(), f.meeting(t, id).TimeSlotID())
	})

	t.Run("refuses to double-book the supplier", func(t *testing.T) {
		f := newFixture(t)
		first := f.add(t, 0, 0, 0)
		f.add(t, 0, 1, 1)
		before := f.sched.Meetings()

		res := f.sched.MoveMeeting(first, f.slots[1].ID())

		assert.Equal(t, schedule.FailureConflict, res.Failure)
		assert.Equal(t, before, f.sched.Meetings())
	})

	t.Run("moving into its own slot changes nothing", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		res := f.sched.MoveMeeting(id, f.slots[0].ID())
		assert.True(t, res.Success)
		assert.False(t, res.Changed())
	})

	t.Run("terminal meetings cannot move", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		f.sched.CancelMeeting(id)
		res := f.sched.MoveMeeting(id, f.slots[1].ID())
		assert.Equal(t, schedule.FailureInvalidTransition, res.Failure)
	})
}

func TestSwapMeetings(t *testing.T) {
	t.Run("exchanges slots", func(t *testing.T) {
		f := newFixture(t)
		a := f.add(t, 0, 0, 0)
		b := f.add(t, 1, 1, 1)

		res := f.sched.SwapMeetings(a, b)

		require.True(t, res.Success)
		assert.Equal(t, f.slots[1].ID(), f.meeting(t, a).TimeSlotID())
		assert.Equal(t, f.slots[0].ID(), f.meeting(t, b).TimeSlotID())
	})

	t.Run("same supplier swaps freely", func(t *testing.T) {
		f := newFixture(t)
		a := f.add(t, 0, 0, 0)
		b := f.add(t, 0, 1, 1)
		assert.True(t, f.sched.SwapMeetings(a, b).Success)
	})

	t.Run("refuses when a third meeting would collide", func(t *testing.T) {
		f := newFixture(t)
		a := f.add(t, 0, 0, 0)
		b := f.add(t, 1, 1, 1)
		f.add(t, 0, 2, 1)

		res := f.sched.SwapMeetings(a, b)
		assert.Equal(t, schedule.FailureConflict, res.Failure)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		f := newFixture(t)
		a := f.add(t, 0, 0, 0)
		assert.Equal(t, schedule.FailureNotFound, f.sched.SwapMeetings(a, uuid.New()).Failure)
		assert.Equal(t, schedule.FailureInvalidInput, f.sched.SwapMeetings(a, a).Failure)
	})
}

func TestCancelMeeting(t *testing.T) {
	f := newFixture(t)
	id := f.add(t, 0, 0, 0)

	res := f.sched.CancelMeeting(id)
	require.True(t, res.Success)
	assert.True(t, res.Changed())
	assert.Equal(t, meeting.StatusCancelled, f.meeting(t, id).Status())

	res = f.sched.CancelMeeting(id)
	assert.True(t, res.Success)
	assert.False(t, res.Changed())

	assert.Equal(t, schedule.FailureNotFound, f.sched.CancelMeeting(uuid.New()).Failure)
}

func TestBumpMeeting(t *testing.T) {
	t.Run("round trip links the successor to the original", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)

		res := f.sched.BumpMeeting(id)
		require.True(t, res.Success, res.Message)

		original := f.meeting(t, id)
		next := f.meeting(t, res.NewMeetingID)
		assert.Equal(t, meeting.StatusBumped, original.Status())
		assert.Equal(t, meeting.StatusScheduled, next.Status())
		assert.Equal(t, f.slots[1].ID(), next.TimeSlotID())

		orig, ok := next.OriginalTimeSlotID()
		require.True(t, ok)
		assert.Equal(t, original.TimeSlotID(), orig)
		from, ok := next.BumpedFrom()
		require.True(t, ok)
		assert.Equal(t, id, from)
	})

	t.Run("skips slots where the buyer is busy and the break", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		f.add(t, 1, 0, 1)

		res := f.sched.BumpMeeting(id)
		require.True(t, res.Success)
		assert.Equal(t, f.slots[3].ID(), f.meeting(t, res.NewMeetingID).TimeSlotID())
	})

	t.Run("fails without change when the day has no free slot", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 3)
		before := f.sched.Meetings()

		res := f.sched.BumpMeeting(id)

		assert.Equal(t, schedule.FailureNoAvailableSlot, res.Failure)
		assert.Equal(t, before, f.sched.Meetings())
	})

	t.Run("stays within the same date", func(t *testing.T) {
		slots := builder.NewEventBuilder().WithHours("09:00", "10:00").WithDays(2).BuildSlots()
		require.Len(t, slots, 4)
		s, b := builder.Suppliers(1)[0], builder.Buyers(1)[0]
		sched := schedule.Empty(slots)
		id := sched.AddMeeting(s.ID(), b.ID(), slots[1].ID()).MeetingID

		res := sched.BumpMeeting(id)
		assert.Equal(t, schedule.FailureNoAvailableSlot, res.Failure)
	})

	t.Run("in-progress meetings cannot be bumped", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		require.True(t, f.sched.ChangeStatus(id, meeting.StatusInProgress, "", time.Time{}).Success)
		assert.Equal(t, schedule.FailureInvalidTransition, f.sched.BumpMeeting(id).Failure)
	})
}

func TestAutoFillGaps(t *testing.T) {
	t.Run("reuses the cancelled record for a compatible buyer", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		f.add(t, 0, 1, 1)
		f.add(t, 1, 1, 0)
		f.sched.CancelMeeting(id)
		count := f.sched.MeetingCount()

		res := f.sched.AutoFillGaps(f.dir)

		require.True(t, res.Success)
		assert.Equal(t, []uuid.UUID{id}, res.Filled)
		assert.Equal(t, count, f.sched.MeetingCount())
		m := f.meeting(t, id)
		assert.Equal(t, meeting.StatusScheduled, m.Status())
		// B1 was the original buyer and B2 already meets S1
		assert.Equal(t, f.buyers[2].ID(), m.BuyerID())
	})

	t.Run("respects supplier preferences", func(t *testing.T) {
		f := newFixture(t)
		suppliers := []*participant.Supplier{
			builder.NewSupplierBuilder().Excluding(f.buyers[1].ID(), f.buyers[2].ID()).BuildDomain(),
		}
		dir := builder.Directory(suppliers, f.buyers)
		sched := schedule.Empty(f.slots)
		id := sched.AddMeeting(suppliers[0].ID(), f.buyers[0].ID(), f.slots[0].ID()).MeetingID
		sched.CancelMeeting(id)

		res := sched.AutoFillGaps(dir)
		assert.True(t, res.Success)
		assert.False(t, res.Changed())
		assert.Empty(t, res.Filled)
	})

	t.Run("second run changes nothing", func(t *testing.T) {
		f := newFixture(t)
		for slot, buyer := range []int{0, 1} {
			id := f.add(t, 0, buyer, slot)
			f.sched.CancelMeeting(id)
		}
		f.sched.AutoFillGaps(f.dir)
		before := f.sched.Meetings()

		res := f.sched.AutoFillGaps(f.dir)

		assert.False(t, res.Changed())
		assert.Equal(t, before, f.sched.Meetings())
	})
}

func TestChangeStatus(t *testing.T) {
	at := time.Date(2025, 6, 2, 9, 5, 0, 0, time.UTC)

	t.Run("happy path", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		for _, to := range []meeting.Status{meeting.StatusInProgress, meeting.StatusRunningLate, meeting.StatusCompleted} {
			res := f.sched.ChangeStatus(id, to, "", at)
			require.True(t, res.Success, res.Message)
		}
		assert.Equal(t, meeting.StatusCompleted, f.meeting(t, id).Status())
	})

	t.Run("delay records the reason and reset clears it", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)

		require.True(t, f.sched.ChangeStatus(id, meeting.StatusDelayed, "late train", at).Success)
		assert.Equal(t, "late train", f.meeting(t, id).DelayReason())

		require.True(t, f.sched.ChangeStatus(id, meeting.StatusScheduled, "", at).Success)
		assert.Empty(t, f.meeting(t, id).DelayReason())
	})

	t.Run("no way back from cancelled", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		f.sched.CancelMeeting(id)
		res := f.sched.ChangeStatus(id, meeting.StatusScheduled, "", at)
		assert.Equal(t, schedule.FailureInvalidTransition, res.Failure)
	})

	t.Run("bumped status routes through bump", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		res := f.sched.ChangeStatus(id, meeting.StatusBumped, "", at)
		require.True(t, res.Success)
		assert.NotEqual(t, uuid.Nil, res.NewMeetingID)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		id := f.add(t, 0, 0, 0)
		assert.Equal(t, schedule.FailureInvalidInput, f.sched.ChangeStatus(id, "paused", "", at).Failure)
	})
}

func TestClone_IsIndependent(t *testing.T) {
	f := newFixture(t)
	id := f.add(t, 0, 0, 0)
	snapshot := f.sched.Clone()

	f.sched.CancelMeeting(id)

	m, ok := snapshot.Meeting(id)
	require.True(t, ok)
	assert.Equal(t, meeting.StatusScheduled, m.Status())
	assert.True(t, snapshot.Index().SupplierBusy(f.suppliers[0].ID(), f.slots[0].ID()))
}
