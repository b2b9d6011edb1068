package meeting

import (
	"fmt"
	"strings"
	"time"

	"meeting-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errs.New("invalid meeting status transition")
	ErrNotCancelled      = errs.New("only cancelled meetings can be refilled")
)

const MaxDelayReasonLength = 500

// Meeting is a plain value: copying it copies all of its state.
type Meeting struct {
	id                 uuid.UUID
	supplierID         uuid.UUID
	buyerID            uuid.UUID
	timeSlotID         uuid.UUID
	status             Status
	originalTimeSlotID uuid.UUID
	bumpedFrom         uuid.UUID
	delayReason        string
	delayedAt          time.Time
}

func NewMeeting(supplierID, buyerID, timeSlotID uuid.UUID) Meeting {
	return Meeting{
		id:         uuid.New(),
		supplierID: supplierID,
		buyerID:    buyerID,
		timeSlotID: timeSlotID,
		status:     StatusScheduled,
	}
}

// NewBumpedSuccessor creates the scheduled meeting that replaces a bumped one.
func NewBumpedSuccessor(original Meeting, timeSlotID uuid.UUID) Meeting {
	m := NewMeeting(original.supplierID, original.buyerID, timeSlotID)
	m.originalTimeSlotID = original.timeSlotID
	m.bumpedFrom = original.id
	return m
}

func ReconstructMeeting(
	id, supplierID, buyerID, timeSlotID uuid.UUID,
	status Status,
	originalTimeSlotID, bumpedFrom uuid.UUID,
	delayReason string,
	delayedAt time.Time,
) Meeting {
	return Meeting{
		id:                 id,
		supplierID:         supplierID,
		buyerID:            buyerID,
		timeSlotID:         timeSlotID,
		status:             status,
		originalTimeSlotID: originalTimeSlotID,
		bumpedFrom:         bumpedFrom,
		delayReason:        delayReason,
		delayedAt:          delayedAt,
	}
}

func (m *Meeting) Transition(to Status) error {
	if !m.status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.status, to)
	}
	m.status = to
	return nil
}

func (m *Meeting) MoveTo(timeSlotID uuid.UUID) {
	m.timeSlotID = timeSlotID
}

func (m *Meeting) Cancel() error {
	return m.Transition(StatusCancelled)
}

func (m *Meeting) MarkBumped() error {
	return m.Transition(StatusBumped)
}

func (m *Meeting) MarkDelayed(reason string, at time.Time) error {
	if err := m.Transition(StatusDelayed); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxDelayReasonLength {
		reason = reason[:MaxDelayReasonLength]
	}
	m.delayReason = reason
	m.delayedAt = at
	return nil
}

// Reset puts the meeting back to scheduled and forgets any delay.
func (m *Meeting) Reset() error {
	if err := m.Transition(StatusScheduled); err != nil {
		return err
	}
	m.clearDelay()
	return nil
}

// Refill repurposes a cancelled meeting for another buyer, keeping its identity and slot.
func (m *Meeting) Refill(buyerID uuid.UUID) error {
	if m.status != StatusCancelled {
		return ErrNotCancelled
	}
	m.buyerID = buyerID
	m.status = StatusScheduled
	m.clearDelay()
	return nil
}

func (m *Meeting) clearDelay() {
	m.delayReason = ""
	m.delayedAt = time.Time{}
}

func (m Meeting) IsActive() bool { return !m.status.IsTerminal() }

func (m Meeting) OriginalTimeSlotID() (uuid.UUID, bool) {
	return m.originalTimeSlotID, m.originalTimeSlotID != uuid.Nil
}

func (m Meeting) BumpedFrom() (uuid.UUID, bool) {
	return m.bumpedFrom, m.bumpedFrom != uuid.Nil
}

func (m Meeting) DelayedAt() (time.Time, bool) {
	return m.delayedAt, !m.delayedAt.IsZero()
}

func (m Meeting) ID() uuid.UUID         { return m.id }
func (m Meeting) SupplierID() uuid.UUID { return m.supplierID }
func (m Meeting) BuyerID() uuid.UUID    { return m.buyerID }
func (m Meeting) TimeSlotID() uuid.UUID { return m.timeSlotID }
func (m Meeting) Status() Status        { return m.status }
func (m Meeting) DelayReason() string   { return m.delayReason }
