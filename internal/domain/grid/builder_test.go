//go:build unit

package grid_test

import (
	"testing"
	"time"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotShape struct {
	start   string
	end     string
	isBreak bool
	label   string
}

func shapes(slots []grid.TimeSlot) []slotShape {
	out := make([]slotShape, len(slots))
	for i, s := range slots {
		out[i] = slotShape{
			start:   s.Start().Format("15:04"),
			end:     s.End().Format("15:04"),
			isBreak: s.IsBreak(),
			label:   s.BreakLabel(),
		}
	}
	return out
}

func TestBuild(t *testing.T) {
	t.Run("evenly divided day without breaks", func(t *testing.T) {
		cfg := builder.NewEventBuilder().WithHours("09:00", "12:00").WithDuration(30).Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)

		assert.Len(t, slots, 6)
		for _, s := range slots {
			assert.False(t, s.IsBreak())
			assert.Equal(t, 30*time.Minute, s.Duration())
		}
	})

	t.Run("final slot is clipped to the day end", func(t *testing.T) {
		cfg := builder.NewEventBuilder().WithHours("09:00", "10:00").WithDuration(25).Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)

		assert.Equal(t, []slotShape{
			{start: "09:00", end: "09:25"},
			{start: "09:25", end: "09:50"},
			{start: "09:50", end: "10:00"},
		}, shapes(slots))
	})

	t.Run("break aligned with the grid", func(t *testing.T) {
		cfg := builder.NewEventBuilder().
			WithHours("09:00", "11:00").
			WithDuration(30).
			WithBreak("Coffee", "10:00", "10:30").
			Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)

		assert.Equal(t, []slotShape{
			{start: "09:00", end: "09:30"},
			{start: "09:30", end: "10:00"},
			{start: "10:00", end: "10:30", isBreak: true, label: "Coffee"},
			{start: "10:30", end: "11:00"},
		}, shapes(slots))
	})

	t.Run("partial slot is closed before an unaligned break", func(t *testing.T) {
		cfg := builder.NewEventBuilder().
			WithHours("09:00", "11:00").
			WithDuration(30).
			WithBreak("Lunch", "09:45", "10:15").
			Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)

		assert.Equal(t, []slotShape{
			{start: "09:00", end: "09:30"},
			{start: "09:30", end: "09:45"},
			{start: "09:45", end: "10:15", isBreak: true, label: "Lunch"},
			{start: "10:15", end: "10:45"},
			{start: "10:45", end: "11:00"},
		}, shapes(slots))
	})

	t.Run("unsorted breaks are processed in start order", func(t *testing.T) {
		cfg := builder.NewEventBuilder().
			WithHours("09:00", "11:00").
			WithDuration(30).
			WithBreak("Late", "10:30", "11:00").
			WithBreak("Early", "09:00", "09:30").
			Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)

		assert.Equal(t, []slotShape{
			{start: "09:00", end: "09:30", isBreak: true, label: "Early"},
			{start: "09:30", end: "10:00"},
			{start: "10:00", end: "10:30"},
			{start: "10:30", end: "11:00", isBreak: true, label: "Late"},
		}, shapes(slots))
	})

	t.Run("break overrunning the day is clipped and ends the day", func(t *testing.T) {
		cfg := builder.NewEventBuilder().
			WithHours("09:00", "10:00").
			WithDuration(30).
			WithBreak("Closing", "09:30", "12:00").
			Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)

		assert.Equal(t, []slotShape{
			{start: "09:00", end: "09:30"},
			{start: "09:30", end: "10:00", isBreak: true, label: "Closing"},
		}, shapes(slots))
	})

	t.Run("breaks outside the day are ignored", func(t *testing.T) {
		cfg := builder.NewEventBuilder().
			WithHours("09:00", "10:00").
			WithDuration(30).
			WithBreak("Breakfast", "07:00", "08:00").
			WithBreak("Dinner", "18:00", "19:00").
			Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("multi-day grid is ordered by date", func(t *testing.T) {
		cfg := builder.NewEventBuilder().WithDays(3).WithHours("09:00", "10:00").WithDuration(30).Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)
		require.Len(t, slots, 6)

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Start().Before(slots[i].Start()))
		}
		assert.Len(t, grid.GroupByDate(slots), 3)
	})

	t.Run("daylight saving days keep the configured wall-clock hours", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skipf("zoneinfo unavailable: %v", err)
		}

		for _, day := range []int{9, 10} {
			cfg := builder.NewEventBuilder().
				WithLocation(loc).
				WithStartDate(2025, time.March, day).
				WithHours("09:00", "10:00").
				WithDuration(30).
				Build()

			slots, err := grid.Build(cfg)
			require.NoError(t, err)

			assert.Equal(t, []slotShape{
				{start: "09:00", end: "09:30"},
				{start: "09:30", end: "10:00"},
			}, shapes(slots))
			for _, s := range slots {
				assert.Equal(t, 30*time.Minute, s.Duration())
				assert.Equal(t, day, s.Start().Day())
			}
		}
	})

	t.Run("fall back day keeps the configured wall-clock hours", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skipf("zoneinfo unavailable: %v", err)
		}

		cfg := builder.NewEventBuilder().
			WithLocation(loc).
			WithStartDate(2025, time.November, 2).
			WithHours("08:00", "09:00").
			WithDuration(60).
			Build()

		slots, err := grid.Build(cfg)
		require.NoError(t, err)
		assert.Equal(t, []slotShape{{start: "08:00", end: "09:00"}}, shapes(slots))
	})

	t.Run("rebuilding yields identical slot ids", func(t *testing.T) {
		cfg := builder.NewEventBuilder().WithHours("09:00", "10:00").WithDuration(30).Build()

		first, err := grid.Build(cfg)
		require.NoError(t, err)
		second, err := grid.Build(cfg)
		require.NoError(t, err)

		for i := range first {
			assert.Equal(t, first[i].ID(), second[i].ID())
		}
		assert.NotEqual(t, first[0].ID(), first[1].ID())
	})
}

func TestBuild_InvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.EventBuilder)
	}{
		{name: "zero duration", mutate: func(b *builder.EventBuilder) { b.WithDuration(0) }},
		{name: "day end before start", mutate: func(b *builder.EventBuilder) { b.WithHours("17:00", "09:00") }},
		{name: "end date before start date", mutate: func(b *builder.EventBuilder) { b.WithDays(-1) }},
		{name: "inverted break", mutate: func(b *builder.EventBuilder) { b.WithBreak("Bad", "12:00", "11:00") }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := builder.NewEventBuilder().With(c.mutate).Build()
			_, err := grid.Build(cfg)
			require.ErrorIs(t, err, grid.ErrInvalidConfig)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := grid.ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9*60+5, tod.Minutes())
	assert.Equal(t, "09:05", tod.String())

	_, err = grid.ParseTimeOfDay("nine")
	require.ErrorIs(t, err, grid.ErrInvalidTimeOfDay)
	_, err = grid.ParseTimeOfDay("10:75")
	require.ErrorIs(t, err, grid.ErrInvalidTimeOfDay)
}
