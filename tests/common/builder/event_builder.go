//go:build unit || e2e

package builder

import (
	"time"

	"meeting-scheduler/internal/domain/grid"
)

type EventBuilder struct {
	StartDate time.Time
	Days      int
	DayStart  string
	DayEnd    string
	Duration  int
	Breaks    []grid.Break
	Location  *time.Location
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		StartDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Days:      1,
		DayStart:  "09:00",
		DayEnd:    "17:00",
		Duration:  30,
		Location:  time.UTC,
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

func (e *EventBuilder) WithHours(start, end string) *EventBuilder {
	e.DayStart, e.DayEnd = start, end
	return e
}

func (e *EventBuilder) WithDuration(minutes int) *EventBuilder {
	e.Duration = minutes
	return e
}

// WithDays sets the number of event days. Values below 1 produce an end date before the start.
func (e *EventBuilder) WithDays(days int) *EventBuilder {
	e.Days = days
	return e
}

// WithLocation moves the start date to the same calendar day in loc.
func (e *EventBuilder) WithLocation(loc *time.Location) *EventBuilder {
	y, m, d := e.StartDate.Date()
	e.StartDate = time.Date(y, m, d, 0, 0, 0, 0, loc)
	e.Location = loc
	return e
}

func (e *EventBuilder) WithStartDate(y int, m time.Month, d int) *EventBuilder {
	e.StartDate = time.Date(y, m, d, 0, 0, 0, 0, e.Location)
	return e
}

func (e *EventBuilder) WithBreak(label, start, end string) *EventBuilder {
	e.Breaks = append(e.Breaks, grid.Break{
		Label: label,
		Start: grid.MustTimeOfDay(start),
		End:   grid.MustTimeOfDay(end),
	})
	return e
}

func (e *EventBuilder) Build() grid.EventConfig {
	return grid.EventConfig{
		StartDate:       e.StartDate,
		EndDate:         e.StartDate.AddDate(0, 0, e.Days-1),
		DayStart:        grid.MustTimeOfDay(e.DayStart),
		DayEnd:          grid.MustTimeOfDay(e.DayEnd),
		MeetingDuration: e.Duration,
		Breaks:          append([]grid.Break(nil), e.Breaks...),
		Location:        e.Location,
	}
}

func (e *EventBuilder) BuildSlots() []grid.TimeSlot {
	slots, err := grid.Build(e.Build())
	if err != nil {
		panic(err)
	}
	return slots
}
