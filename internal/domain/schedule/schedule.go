package schedule

import (
	"slices"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/meeting"

	"github.com/google/uuid"
)

// UnscheduledPair is a desired meeting the assignment could not place.
type UnscheduledPair struct {
	SupplierID uuid.UUID
	BuyerID    uuid.UUID
	Reason     string
}

// Schedule is the aggregate the history tracker snapshots: meetings, the slot grid
// and the pairs left unscheduled by the last generation.
type Schedule struct {
	meetings    []meeting.Meeting
	slots       []grid.TimeSlot
	unscheduled []UnscheduledPair

	slotPos    map[uuid.UUID]int
	meetingPos map[uuid.UUID]int
	index      *Index
}

func New(meetings []meeting.Meeting, slots []grid.TimeSlot, unscheduled []UnscheduledPair) *Schedule {
	s := &Schedule{
		meetings:    slices.Clone(meetings),
		slots:       slices.Clone(slots),
		unscheduled: slices.Clone(unscheduled),
	}
	s.slotPos = make(map[uuid.UUID]int, len(s.slots))
	for i, slot := range s.slots {
		s.slotPos[slot.ID()] = i
	}
	s.reindex()
	return s
}

// Empty returns a schedule with a grid and no meetings.
func Empty(slots []grid.TimeSlot) *Schedule {
	return New(nil, slots, nil)
}

func (s *Schedule) Clone() *Schedule {
	return New(s.meetings, s.slots, s.unscheduled)
}

func (s *Schedule) reindex() {
	s.meetingPos = make(map[uuid.UUID]int, len(s.meetings))
	for i, m := range s.meetings {
		s.meetingPos[m.ID()] = i
	}
	s.index = NewIndex(s.meetings)
}

func (s *Schedule) Meetings() []meeting.Meeting       { return slices.Clone(s.meetings) }
func (s *Schedule) Slots() []grid.TimeSlot            { return slices.Clone(s.slots) }
func (s *Schedule) Unscheduled() []UnscheduledPair    { return slices.Clone(s.unscheduled) }
func (s *Schedule) Index() *Index                     { return s.index }
func (s *Schedule) MeetingCount() int                 { return len(s.meetings) }
func (s *Schedule) SlotCount() int                    { return len(s.slots) }
func (s *Schedule) UnscheduledCount() int             { return len(s.unscheduled) }
func (s *Schedule) ActiveMeetings() []meeting.Meeting { return activeOnly(s.meetings) }

func (s *Schedule) Meeting(id uuid.UUID) (meeting.Meeting, bool) {
	i, ok := s.meetingPos[id]
	if !ok {
		return meeting.Meeting{}, false
	}
	return s.meetings[i], true
}

func (s *Schedule) Slot(id uuid.UUID) (grid.TimeSlot, bool) {
	i, ok := s.slotPos[id]
	if !ok {
		return grid.TimeSlot{}, false
	}
	return s.slots[i], true
}

// LaterSlotsSameDay returns the meeting slots after slotID on the same date, in order.
func (s *Schedule) LaterSlotsSameDay(slotID uuid.UUID) []grid.TimeSlot {
	i, ok := s.slotPos[slotID]
	if !ok {
		return nil
	}
	current := s.slots[i]
	var out []grid.TimeSlot
	for _, slot := range s.slots[i+1:] {
		if !slot.SameDate(current) {
			break
		}
		if !slot.IsBreak() {
			out = append(out, slot)
		}
	}
	return out
}

func activeOnly(meetings []meeting.Meeting) []meeting.Meeting {
	out := make([]meeting.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.IsActive() {
			out = append(out, m)
		}
	}
	return out
}
