package grid

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day (expected HH:MM)")

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock offset from midnight with minute precision.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	m := hour*60 + minute
	// 24:00 is accepted as an end of day
	if m > minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(h, m)
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// On anchors the time of day to the given calendar date in the date's location.
// The result is a wall-clock time, so DST transitions do not shift it.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, t.minutes/60, t.minutes%60, 0, 0, date.Location())
}

type Break struct {
	Label string
	Start TimeOfDay
	End   TimeOfDay
}

func (b Break) Validate() error {
	if !b.Start.Before(b.End) {
		return fmt.Errorf("%w: break %q must start before it ends", ErrInvalidConfig, b.Label)
	}
	return nil
}

// EventConfig describes the grid. Overlapping breaks are the caller's responsibility.
type EventConfig struct {
	StartDate       time.Time
	EndDate         time.Time
	DayStart        TimeOfDay
	DayEnd          TimeOfDay
	MeetingDuration int
	Breaks          []Break
	Location        *time.Location
}

const maxEventDays = 366

func (c EventConfig) Validate() error {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidConfig)
	}
	if c.MeetingDuration <= 0 {
		return fmt.Errorf("%w: meeting duration must be positive", ErrInvalidConfig)
	}
	if !c.DayStart.Before(c.DayEnd) {
		return fmt.Errorf("%w: daily start must be before daily end", ErrInvalidConfig)
	}
	days := c.Dates()
	if len(days) == 0 {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidConfig)
	}
	if len(days) > maxEventDays {
		return fmt.Errorf("%w: event spans more than %d days", ErrInvalidConfig, maxEventDays)
	}
	for _, b := range c.Breaks {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c EventConfig) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Dates lists every calendar day from StartDate to EndDate inclusive, at midnight.
func (c EventConfig) Dates() []time.Time {
	loc := c.location()
	y, m, d := c.StartDate.In(loc).Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, loc)
	ey, em, ed := c.EndDate.In(loc).Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, loc)

	var dates []time.Time
	for day := first; !day.After(last) && len(dates) <= maxEventDays; day = first.AddDate(0, 0, len(dates)) {
		dates = append(dates, day)
	}
	return dates
}
