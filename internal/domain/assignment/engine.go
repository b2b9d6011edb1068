package assignment

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/meeting"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrInvalidStrategy = fmt.Errorf("invalid strategy (expected %q or %q)", StrategyEfficient, StrategySpaced)

type Strategy string

const (
	// StrategyEfficient packs each pair into the earliest mutually free slot.
	StrategyEfficient Strategy = "efficient"
	// StrategySpaced spreads each supplier's meetings across the event days.
	StrategySpaced Strategy = "spaced"
)

func (s Strategy) IsValid() bool {
	return s == StrategyEfficient || s == StrategySpaced
}

func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyEfficient, nil
	}
	strategy := Strategy(s)
	if !strategy.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
	return strategy, nil
}

const UnscheduledReason = "no slot where both parties are free"

type Options struct {
	Strategy Strategy
	// Rand shuffles equal-priority pairs. Nil keeps the deterministic id order.
	Rand *rand.Rand
}

type Stats struct {
	Strategy    Strategy
	Desired     int
	Placed      int
	Unscheduled int
	Days        int
	// PerDayTarget is each supplier's desired count divided by the number of days, rounded up.
	// The spaced strategy fills days below it before falling back to the rest.
	PerDayTarget map[uuid.UUID]int
}

type Result struct {
	Meetings    []meeting.Meeting
	Slots       []grid.TimeSlot
	Unscheduled []schedule.UnscheduledPair
	Stats       Stats
}

// Schedule wraps the result as a schedule aggregate.
func (r Result) Schedule() *schedule.Schedule {
	return schedule.New(r.Meetings, r.Slots, r.Unscheduled)
}

// Generate builds the grid and greedily places every desired meeting. It runs on an
// empty schedule and never places a supplier or buyer twice in one slot.
func Generate(cfg grid.EventConfig, suppliers []*participant.Supplier, buyers []*participant.Buyer, opts Options) (Result, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyEfficient
	}
	if !strategy.IsValid() {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}

	slots, err := grid.Build(cfg)
	if err != nil {
		return Result{}, err
	}

	desired := Order(DesiredMeetings(suppliers, buyers), opts.Rand)
	days := grid.GroupByDate(slots)
	p := newPlacer(days, perDayTarget(desired, len(days)))

	stats := Stats{
		Strategy:     strategy,
		Desired:      len(desired),
		Days:         len(p.days),
		PerDayTarget: p.target,
	}

	var (
		meetings    []meeting.Meeting
		unscheduled []schedule.UnscheduledPair
	)
	for _, d := range desired {
		var (
			slot  grid.TimeSlot
			found bool
		)
		switch strategy {
		case StrategySpaced:
			slot, found = p.spaced(d)
		default:
			slot, found = p.efficient(d)
		}
		if !found {
			unscheduled = append(unscheduled, schedule.UnscheduledPair{
				SupplierID: d.SupplierID,
				BuyerID:    d.BuyerID,
				Reason:     UnscheduledReason,
			})
			continue
		}
		p.reserve(d, slot)
		meetings = append(meetings, meeting.NewMeeting(d.SupplierID, d.BuyerID, slot.ID()))
	}

	stats.Placed = len(meetings)
	stats.Unscheduled = len(unscheduled)
	return Result{
		Meetings:    meetings,
		Slots:       slots,
		Unscheduled: unscheduled,
		Stats:       stats,
	}, nil
}

func perDayTarget(desired []DesiredMeeting, days int) map[uuid.UUID]int {
	totals := map[uuid.UUID]int{}
	for _, d := range desired {
		totals[d.SupplierID]++
	}
	if days == 0 {
		return totals
	}
	for id, total := range totals {
		totals[id] = (total + days - 1) / days
	}
	return totals
}

type reservation struct {
	party uuid.UUID
	slot  uuid.UUID
}

type placer struct {
	days     [][]grid.TimeSlot
	reserved map[reservation]bool
	// perDay[supplier][day] counts meetings placed for the supplier on that day.
	perDay map[uuid.UUID][]int
	dayOf  map[uuid.UUID]int
	target map[uuid.UUID]int
}

func newPlacer(days [][]grid.TimeSlot, target map[uuid.UUID]int) *placer {
	p := &placer{
		days:     days,
		reserved: map[reservation]bool{},
		perDay:   map[uuid.UUID][]int{},
		dayOf:    map[uuid.UUID]int{},
		target:   target,
	}
	for i, day := range days {
		for _, slot := range day {
			p.dayOf[slot.ID()] = i
		}
	}
	return p
}

func (p *placer) free(d DesiredMeeting, slot grid.TimeSlot) bool {
	return !p.reserved[reservation{d.SupplierID, slot.ID()}] && !p.reserved[reservation{d.BuyerID, slot.ID()}]
}

func (p *placer) reserve(d DesiredMeeting, slot grid.TimeSlot) {
	p.reserved[reservation{d.SupplierID, slot.ID()}] = true
	p.reserved[reservation{d.BuyerID, slot.ID()}] = true
	p.counts(d.SupplierID)[p.dayOf[slot.ID()]]++
}

func (p *placer) counts(supplierID uuid.UUID) []int {
	c, ok := p.perDay[supplierID]
	if !ok {
		c = make([]int, len(p.days))
		p.perDay[supplierID] = c
	}
	return c
}

func (p *placer) firstFree(d DesiredMeeting, day []grid.TimeSlot) (grid.TimeSlot, bool) {
	for _, slot := range day {
		if p.free(d, slot) {
			return slot, true
		}
	}
	return grid.TimeSlot{}, false
}

func (p *placer) efficient(d DesiredMeeting) (grid.TimeSlot, bool) {
	for _, day := range p.days {
		if slot, ok := p.firstFree(d, day); ok {
			return slot, true
		}
	}
	return grid.TimeSlot{}, false
}

// spaced tries days from the supplier's least loaded to its busiest, earlier days first on ties.
// Days still below the per-day target go first; days at or above it are only a fallback.
func (p *placer) spaced(d DesiredMeeting) (grid.TimeSlot, bool) {
	counts := p.counts(d.SupplierID)
	order := make([]int, len(p.days))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return counts[a] - counts[b]
	})

	target := p.target[d.SupplierID]
	for _, underTarget := range []bool{true, false} {
		for _, i := range order {
			if (counts[i] < target) != underTarget {
				continue
			}
			if slot, ok := p.firstFree(d, p.days[i]); ok {
				return slot, true
			}
		}
	}
	return grid.TimeSlot{}, false
}
