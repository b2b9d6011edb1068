package grid

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var slotNamespace = uuid.MustParse("6f1f3f0e-5b7a-4c1e-9d0a-2a7c3f4b8e61")

type TimeSlot struct {
	id         uuid.UUID
	date       time.Time
	start      time.Time
	end        time.Time
	isBreak    bool
	breakLabel string
}

// Slot ids are derived from their interval so rebuilding the same grid yields the same ids.
func slotID(start, end time.Time, isBreak bool) uuid.UUID {
	kind := "meeting"
	if isBreak {
		kind = "break"
	}
	key := start.UTC().Format(time.RFC3339) + "/" + end.UTC().Format(time.RFC3339) + "/" + kind
	return uuid.NewSHA1(slotNamespace, []byte(key))
}

func NewMeetingSlot(date, start, end time.Time) TimeSlot {
	return TimeSlot{
		id:    slotID(start, end, false),
		date:  date,
		start: start,
		end:   end,
	}
}

func NewBreakSlot(date, start, end time.Time, label string) TimeSlot {
	return TimeSlot{
		id:         slotID(start, end, true),
		date:       date,
		start:      start,
		end:        end,
		isBreak:    true,
		breakLabel: label,
	}
}

func (ts TimeSlot) ID() uuid.UUID            { return ts.id }
func (ts TimeSlot) Date() time.Time          { return ts.date }
func (ts TimeSlot) Start() time.Time         { return ts.start }
func (ts TimeSlot) End() time.Time           { return ts.end }
func (ts TimeSlot) IsBreak() bool            { return ts.isBreak }
func (ts TimeSlot) BreakLabel() string       { return ts.breakLabel }
func (ts TimeSlot) Duration() time.Duration  { return ts.end.Sub(ts.start) }
func (ts TimeSlot) DateKey() string          { return ts.date.Format(DateLayout) }
func (ts TimeSlot) SameDate(o TimeSlot) bool { return ts.DateKey() == o.DateKey() }
func (ts TimeSlot) Overlaps(o TimeSlot) bool { return ts.start.Before(o.end) && o.start.Before(ts.end) }
