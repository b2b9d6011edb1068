package conflict

import (
	"errors"
	"fmt"

	"meeting-scheduler/internal/domain/meeting"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrSlotNotFound    = errors.New("time slot not found")
	ErrBreakSlot       = errors.New("time slot is a break")
	ErrUnknownSupplier = errors.New("unknown supplier")
	ErrUnknownBuyer    = errors.New("unknown buyer")
)

// Engine classifies placements against a schedule. Every rule is evaluated;
// nothing short-circuits.
type Engine struct {
	dir *participant.Directory
}

func NewEngine(dir *participant.Directory) *Engine {
	return &Engine{dir: dir}
}

// CheckAdd evaluates a prospective new meeting.
func (e *Engine) CheckAdd(s *schedule.Schedule, supplierID, buyerID, slotID uuid.UUID) (Result, error) {
	if _, ok := e.dir.Supplier(supplierID); !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownSupplier, supplierID)
	}
	if _, ok := e.dir.Buyer(buyerID); !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownBuyer, buyerID)
	}
	if err := checkSlot(s, slotID); err != nil {
		return Result{}, err
	}

	var conflicts []Info
	conflicts = append(conflicts, e.supplierBusy(s, supplierID, slotID, uuid.Nil)...)
	conflicts = append(conflicts, e.buyerBusy(s, buyerID, slotID, uuid.Nil)...)
	conflicts = append(conflicts, e.preference(supplierID, buyerID)...)
	return Result{Conflicts: conflicts}, nil
}

// CheckMove evaluates moving an existing meeting, ignoring the meeting itself.
func (e *Engine) CheckMove(s *schedule.Schedule, meetingID, slotID uuid.UUID) (Result, error) {
	m, ok := s.Meeting(meetingID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrMeetingNotFound, meetingID)
	}
	if err := checkSlot(s, slotID); err != nil {
		return Result{}, err
	}

	var conflicts []Info
	conflicts = append(conflicts, e.supplierBusy(s, m.SupplierID(), slotID, meetingID)...)
	conflicts = append(conflicts, e.buyerBusy(s, m.BuyerID(), slotID, meetingID)...)
	return Result{Conflicts: conflicts}, nil
}

// ForMeeting reports buyer double-bookings and preference violations of a placed meeting.
// Terminal meetings have no conflicts.
func (e *Engine) ForMeeting(s *schedule.Schedule, meetingID uuid.UUID) (Result, error) {
	m, ok := s.Meeting(meetingID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrMeetingNotFound, meetingID)
	}
	if !m.IsActive() {
		return Result{}, nil
	}

	var conflicts []Info
	conflicts = append(conflicts, e.buyerBusy(s, m.BuyerID(), m.TimeSlotID(), meetingID)...)
	conflicts = append(conflicts, e.preference(m.SupplierID(), m.BuyerID())...)
	return Result{Conflicts: conflicts}, nil
}

// Summarize lists every buyer double-booking and preference violation in the schedule.
func (e *Engine) Summarize(s *schedule.Schedule) Summary {
	var summary Summary
	type key struct{ buyer, slot uuid.UUID }
	groups := map[key]int{}

	for _, m := range s.ActiveMeetings() {
		k := key{m.BuyerID(), m.TimeSlotID()}
		if i, seen := groups[k]; seen {
			summary.DoubleBookings[i].MeetingIDs = append(summary.DoubleBookings[i].MeetingIDs, m.ID())
		} else if ids := s.Index().BuyerMeetings(m.BuyerID(), m.TimeSlotID()); len(ids) > 1 {
			groups[k] = len(summary.DoubleBookings)
			summary.DoubleBookings = append(summary.DoubleBookings, DoubleBooking{
				BuyerID:    m.BuyerID(),
				SlotID:     m.TimeSlotID(),
				MeetingIDs: []uuid.UUID{m.ID()},
			})
		}

		if !e.dir.Permits(m.SupplierID(), m.BuyerID()) {
			summary.PreferenceViolations = append(summary.PreferenceViolations, PreferenceViolation{
				MeetingID:   m.ID(),
				SupplierID:  m.SupplierID(),
				BuyerID:     m.BuyerID(),
				Description: e.preferenceDescription(m.SupplierID(), m.BuyerID()),
			})
		}
	}
	return summary
}

func checkSlot(s *schedule.Schedule, slotID uuid.UUID) error {
	slot, ok := s.Slot(slotID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}
	if slot.IsBreak() {
		return fmt.Errorf("%w: %s", ErrBreakSlot, slot.BreakLabel())
	}
	return nil
}

func (e *Engine) supplierBusy(s *schedule.Schedule, supplierID, slotID, exclude uuid.UUID) []Info {
	var out []Info
	for _, other := range e.others(s, s.Index().SupplierMeetings(supplierID, slotID), exclude) {
		desc := fmt.Sprintf("%s already meets %s in this slot",
			e.dir.SupplierName(supplierID), e.dir.BuyerName(other.BuyerID()))
		out = append(out, Info{
			Type:                 TypeSupplierBusy,
			Severity:             SeverityError,
			Description:          desc,
			ConflictingMeetingID: other.ID(),
		})
	}
	return out
}

func (e *Engine) buyerBusy(s *schedule.Schedule, buyerID, slotID, exclude uuid.UUID) []Info {
	var out []Info
	for _, other := range e.others(s, s.Index().BuyerMeetings(buyerID, slotID), exclude) {
		desc := fmt.Sprintf("%s is already meeting %s in this slot",
			e.dir.BuyerName(buyerID), e.dir.SupplierName(other.SupplierID()))
		out = append(out, Info{
			Type:                 TypeBuyerBusy,
			Severity:             SeverityWarning,
			Description:          desc,
			ConflictingMeetingID: other.ID(),
		})
	}
	return out
}

func (e *Engine) preference(supplierID, buyerID uuid.UUID) []Info {
	if e.dir.Permits(supplierID, buyerID) {
		return nil
	}
	return []Info{{
		Type:        TypePreferenceViolation,
		Severity:    SeverityWarning,
		Description: e.preferenceDescription(supplierID, buyerID),
	}}
}

func (e *Engine) preferenceDescription(supplierID, buyerID uuid.UUID) string {
	return fmt.Sprintf("%s's preferences do not permit a meeting with %s",
		e.dir.SupplierName(supplierID), e.dir.BuyerName(buyerID))
}

func (e *Engine) others(s *schedule.Schedule, ids []uuid.UUID, exclude uuid.UUID) []meeting.Meeting {
	var out []meeting.Meeting
	for _, id := range ids {
		if id == exclude {
			continue
		}
		if m, ok := s.Meeting(id); ok {
			out = append(out, m)
		}
	}
	return out
}
