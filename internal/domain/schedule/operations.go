package schedule

import (
	"errors"
	"time"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/meeting"
	"meeting-scheduler/internal/domain/participant"

	"github.com/google/uuid"
)

func (s *Schedule) meetingSlot(slotID uuid.UUID) (grid.TimeSlot, OperationResult, bool) {
	slot, found := s.Slot(slotID)
	if !found {
		return grid.TimeSlot{}, Fail(FailureNotFound, "time slot %s not found", slotID), false
	}
	if slot.IsBreak() {
		return grid.TimeSlot{}, Fail(FailureInvalidInput, "time slot %s is a break (%s)", slotID, slot.BreakLabel()), false
	}
	return slot, OperationResult{}, true
}

func (s *Schedule) lookup(id uuid.UUID) (int, OperationResult, bool) {
	i, found := s.meetingPos[id]
	if !found {
		return 0, Fail(FailureNotFound, "meeting %s not found", id), false
	}
	return i, OperationResult{}, true
}

// AddMeeting places a new scheduled meeting. It refuses only when the supplier is
// already busy in the slot; warnings are for the caller to resolve beforehand.
func (s *Schedule) AddMeeting(supplierID, buyerID, slotID uuid.UUID) OperationResult {
	if _, res, found := s.meetingSlot(slotID); !found {
		return res
	}
	if s.index.SupplierBusy(supplierID, slotID) {
		return Fail(FailureConflict, "supplier is already booked in this slot")
	}

	m := meeting.NewMeeting(supplierID, buyerID, slotID)
	s.meetings = append(s.meetings, m)
	s.reindex()
	return ok(true, m.ID(), "meeting added")
}

// MoveMeeting reassigns the meeting's slot in place. The meeting keeps its identity.
func (s *Schedule) MoveMeeting(meetingID, slotID uuid.UUID) OperationResult {
	i, res, found := s.lookup(meetingID)
	if !found {
		return res
	}
	m := &s.meetings[i]
	if !m.IsActive() {
		return Fail(FailureInvalidTransition, "meeting is %s and cannot be moved", m.Status())
	}
	if _, res, found := s.meetingSlot(slotID); !found {
		return res
	}
	if m.TimeSlotID() == slotID {
		return ok(false, meetingID, "meeting is already in this slot")
	}
	if s.index.SupplierBusy(m.SupplierID(), slotID, meetingID) {
		return Fail(FailureConflict, "supplier is already booked in the target slot")
	}

	m.MoveTo(slotID)
	s.reindex()
	return ok(true, meetingID, "meeting moved")
}

// SwapMeetings exchanges the slots of two active meetings.
func (s *Schedule) SwapMeetings(firstID, secondID uuid.UUID) OperationResult {
	if firstID == secondID {
		return Fail(FailureInvalidInput, "cannot swap a meeting with itself")
	}
	i, res, found := s.lookup(firstID)
	if !found {
		return res
	}
	j, res, found := s.lookup(secondID)
	if !found {
		return res
	}
	a, b := &s.meetings[i], &s.meetings[j]
	if !a.IsActive() || !b.IsActive() {
		return Fail(FailureInvalidTransition, "only active meetings can be swapped")
	}
	slotA, slotB := a.TimeSlotID(), b.TimeSlotID()
	if slotA == slotB {
		return ok(false, firstID, "meetings already share a slot")
	}
	if s.index.SupplierBusy(a.SupplierID(), slotB, firstID, secondID) ||
		s.index.SupplierBusy(b.SupplierID(), slotA, firstID, secondID) {
		return Fail(FailureConflict, "swap would double-book a supplier")
	}

	a.MoveTo(slotB)
	b.MoveTo(slotA)
	s.reindex()
	return ok(true, firstID, "meetings swapped")
}

// CancelMeeting retires a meeting. Cancelling twice is a no-op.
func (s *Schedule) CancelMeeting(meetingID uuid.UUID) OperationResult {
	i, res, found := s.lookup(meetingID)
	if !found {
		return res
	}
	m := &s.meetings[i]
	if m.Status() == meeting.StatusCancelled {
		return ok(false, meetingID, "meeting is already cancelled")
	}
	if err := m.Cancel(); err != nil {
		return Fail(FailureInvalidTransition, "cannot cancel meeting: %v", err)
	}
	s.reindex()
	return ok(true, meetingID, "meeting cancelled")
}

// BumpMeeting retires the meeting and recreates it in the first later slot of the
// same day where both supplier and buyer are free.
func (s *Schedule) BumpMeeting(meetingID uuid.UUID) OperationResult {
	i, res, found := s.lookup(meetingID)
	if !found {
		return res
	}
	original := s.meetings[i]
	if !original.Status().CanTransitionTo(meeting.StatusBumped) {
		return Fail(FailureInvalidTransition, "a %s meeting cannot be bumped", original.Status())
	}

	for _, slot := range s.LaterSlotsSameDay(original.TimeSlotID()) {
		if s.index.SupplierBusy(original.SupplierID(), slot.ID()) || s.index.BuyerBusy(original.BuyerID(), slot.ID()) {
			continue
		}
		next := meeting.NewBumpedSuccessor(original, slot.ID())
		if err := s.meetings[i].MarkBumped(); err != nil {
			return Fail(FailureInvalidTransition, "cannot bump meeting: %v", err)
		}
		s.meetings = append(s.meetings, next)
		s.reindex()

		res := ok(true, meetingID, "meeting bumped to %s", slot.Start().Format("15:04"))
		res.NewMeetingID = next.ID()
		return res
	}
	return Fail(FailureNoAvailableSlot, "no later slot today where both parties are free")
}

// AutoFillGaps hands each cancelled meeting's slot to another buyer the supplier may
// meet, who is free in that slot and not already meeting the supplier. The cancelled
// record itself is reused, so running it again with no other change fills nothing.
func (s *Schedule) AutoFillGaps(dir *participant.Directory) OperationResult {
	var filled []uuid.UUID
	for i := range s.meetings {
		m := &s.meetings[i]
		if m.Status() != meeting.StatusCancelled {
			continue
		}
		if s.index.SupplierBusy(m.SupplierID(), m.TimeSlotID()) {
			continue
		}
		buyerID, found := s.fillCandidate(dir, *m)
		if !found {
			continue
		}
		if err := m.Refill(buyerID); err != nil {
			continue
		}
		filled = append(filled, m.ID())
		s.reindex()
	}

	if len(filled) == 0 {
		return ok(false, uuid.Nil, "no gaps could be filled")
	}
	res := ok(true, uuid.Nil, "%d gap(s) filled", len(filled))
	res.Filled = filled
	return res
}

func (s *Schedule) fillCandidate(dir *participant.Directory, m meeting.Meeting) (uuid.UUID, bool) {
	for _, buyer := range dir.Buyers() {
		id := buyer.ID()
		if id == m.BuyerID() || !dir.Permits(m.SupplierID(), id) {
			continue
		}
		if s.index.BuyerBusy(id, m.TimeSlotID()) || s.index.Paired(m.SupplierID(), id) {
			continue
		}
		return id, true
	}
	return uuid.Nil, false
}

// ChangeStatus applies an operator status change. Bumping goes through BumpMeeting.
func (s *Schedule) ChangeStatus(meetingID uuid.UUID, to meeting.Status, reason string, at time.Time) OperationResult {
	if !to.IsValid() {
		return Fail(FailureInvalidInput, "unknown status %q", to)
	}
	switch to {
	case meeting.StatusBumped:
		return s.BumpMeeting(meetingID)
	case meeting.StatusCancelled:
		return s.CancelMeeting(meetingID)
	}

	i, res, found := s.lookup(meetingID)
	if !found {
		return res
	}
	m := &s.meetings[i]
	before := *m

	var err error
	switch to {
	case meeting.StatusDelayed:
		err = m.MarkDelayed(reason, at)
	case meeting.StatusScheduled:
		err = m.Reset()
	default:
		err = m.Transition(to)
	}
	if errors.Is(err, meeting.ErrInvalidTransition) {
		return Fail(FailureInvalidTransition, "cannot change status from %s to %s", before.Status(), to)
	}
	if err != nil {
		return Fail(FailureInvalidInput, "cannot change status: %v", err)
	}

	changed := *m != before
	if changed {
		s.reindex()
	}
	return ok(changed, meetingID, "status changed to %s", to)
}
