package grid

import (
	"errors"
	"slices"
	"time"
)

var ErrInvalidConfig = errors.New("invalid event configuration")

// Build lays out the slots of every event day in order. Meeting slots are
// exactly MeetingDuration long except when clipped by a break or the day's end.
func Build(cfg EventConfig) ([]TimeSlot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	breaks := slices.Clone(cfg.Breaks)
	slices.SortStableFunc(breaks, func(a, b Break) int {
		return a.Start.Minutes() - b.Start.Minutes()
	})

	var slots []TimeSlot
	for _, date := range cfg.Dates() {
		slots = append(slots, buildDay(date, cfg, breaks)...)
	}
	return slots, nil
}

func buildDay(date time.Time, cfg EventConfig, breaks []Break) []TimeSlot {
	var slots []TimeSlot
	dayEnd := cfg.DayEnd.Minutes()
	duration := cfg.MeetingDuration

	emitMeeting := func(from, to int) {
		if to > from {
			slots = append(slots, NewMeetingSlot(date, at(date, from), at(date, to)))
		}
	}
	emitBreak := func(b Break, from int) {
		to := min(b.End.Minutes(), dayEnd)
		if to > from {
			slots = append(slots, NewBreakSlot(date, at(date, from), at(date, to), b.Label))
		}
	}

	cursor := cfg.DayStart.Minutes()
	for cursor < dayEnd {
		if b, ok := breakCovering(breaks, cursor); ok {
			emitBreak(b, cursor)
			cursor = b.End.Minutes()
			continue
		}

		slotEnd := min(cursor+duration, dayEnd)
		if next, ok := nextBreak(breaks, cursor, dayEnd); ok && slotEnd > next.Start.Minutes() {
			emitMeeting(cursor, next.Start.Minutes())
			emitBreak(next, next.Start.Minutes())
			cursor = next.End.Minutes()
			continue
		}

		emitMeeting(cursor, slotEnd)
		cursor = slotEnd
	}
	return slots
}

func breakCovering(breaks []Break, minute int) (Break, bool) {
	for _, b := range breaks {
		if b.Start.Minutes() <= minute && minute < b.End.Minutes() {
			return b, true
		}
	}
	return Break{}, false
}

func nextBreak(breaks []Break, after, dayEnd int) (Break, bool) {
	for _, b := range breaks {
		if b.Start.Minutes() > after && b.Start.Minutes() < dayEnd {
			return b, true
		}
	}
	return Break{}, false
}

func at(date time.Time, minute int) time.Time {
	return TimeOfDay{minutes: minute}.On(date)
}

// MeetingSlots drops break slots, keeping order.
func MeetingSlots(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if !s.IsBreak() {
			out = append(out, s)
		}
	}
	return out
}

// GroupByDate splits meeting slots into per-day runs in chronological order.
func GroupByDate(slots []TimeSlot) [][]TimeSlot {
	var days [][]TimeSlot
	index := map[string]int{}
	for _, s := range slots {
		if s.IsBreak() {
			continue
		}
		i, ok := index[s.DateKey()]
		if !ok {
			i = len(days)
			index[s.DateKey()] = i
			days = append(days, nil)
		}
		days[i] = append(days[i], s)
	}
	return days
}
