package request

import (
	"fmt"
	"strings"
	"time"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/pkg/patch"
	"meeting-scheduler/internal/pkg/ptr"

	"github.com/google/uuid"
)

type BreakRequest struct {
	Label string `json:"label" binding:"required,max=100"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type EventConfigRequest struct {
	StartDate       string         `json:"startDate" binding:"required"`
	EndDate         string         `json:"endDate" binding:"required"`
	DayStart        string         `json:"dayStart" binding:"required"`
	DayEnd          string         `json:"dayEnd" binding:"required"`
	MeetingDuration int            `json:"meetingDuration" binding:"required,min=5,max=480"`
	Breaks          []BreakRequest `json:"breaks" binding:"omitempty,dive"`
}

type PreferenceRequest struct {
	Mode     string      `json:"mode" binding:"omitempty,oneof=all include exclude"`
	BuyerIDs []uuid.UUID `json:"buyerIds"`
}

type SupplierRequest struct {
	ID              *uuid.UUID        `json:"id,omitempty"`
	Name            string            `json:"name" binding:"required,max=255"`
	Company         string            `json:"company" binding:"max=255"`
	MeetingDuration int               `json:"meetingDuration" binding:"omitempty,min=5,max=480"`
	Preference      PreferenceRequest `json:"preference"`
}

type BuyerRequest struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Name    string     `json:"name" binding:"required,max=255"`
	Company string     `json:"company" binding:"max=255"`
}

type CreateProjectRequest struct {
	Name      string             `json:"name" binding:"required,max=255"`
	Event     EventConfigRequest `json:"event" binding:"required"`
	Suppliers []SupplierRequest  `json:"suppliers" binding:"omitempty,dive"`
	Buyers    []BuyerRequest     `json:"buyers" binding:"omitempty,dive"`
}

// ToDomain interprets dates and times of day in loc.
func (r EventConfigRequest) ToDomain(loc *time.Location) (grid.EventConfig, error) {
	start, err := time.ParseInLocation(grid.DateLayout, r.StartDate, loc)
	if err != nil {
		return grid.EventConfig{}, fmt.Errorf("%w: startDate: %v", grid.ErrInvalidConfig, err)
	}
	end, err := time.ParseInLocation(grid.DateLayout, r.EndDate, loc)
	if err != nil {
		return grid.EventConfig{}, fmt.Errorf("%w: endDate: %v", grid.ErrInvalidConfig, err)
	}
	dayStart, err := grid.ParseTimeOfDay(r.DayStart)
	if err != nil {
		return grid.EventConfig{}, err
	}
	dayEnd, err := grid.ParseTimeOfDay(r.DayEnd)
	if err != nil {
		return grid.EventConfig{}, err
	}

	breaks := make([]grid.Break, 0, len(r.Breaks))
	for _, b := range r.Breaks {
		bs, err := grid.ParseTimeOfDay(b.Start)
		if err != nil {
			return grid.EventConfig{}, err
		}
		be, err := grid.ParseTimeOfDay(b.End)
		if err != nil {
			return grid.EventConfig{}, err
		}
		breaks = append(breaks, grid.Break{Label: strings.TrimSpace(b.Label), Start: bs, End: be})
	}

	cfg := grid.EventConfig{
		StartDate:       start,
		EndDate:         end,
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		MeetingDuration: r.MeetingDuration,
		Breaks:          breaks,
		Location:        loc,
	}
	return cfg, cfg.Validate()
}

func (r PreferenceRequest) ToDomain() (participant.Preference, error) {
	return participant.NewPreference(r.Mode, r.BuyerIDs)
}

func (r SupplierRequest) ToDomain() (*participant.Supplier, error) {
	pref, err := r.Preference.ToDomain()
	if err != nil {
		return nil, err
	}
	return participant.NewSupplier(ptr.UUIDValue(r.ID), r.Name, r.Company, r.MeetingDuration, pref)
}

func (r BuyerRequest) ToDomain() (*participant.Buyer, error) {
	return participant.NewBuyer(ptr.UUIDValue(r.ID), r.Name, r.Company)
}

func (r CreateProjectRequest) Participants() ([]*participant.Supplier, []*participant.Buyer, error) {
	suppliers := make([]*participant.Supplier, 0, len(r.Suppliers))
	for i, s := range r.Suppliers {
		supplier, err := s.ToDomain()
		if err != nil {
			return nil, nil, fmt.Errorf("suppliers[%d]: %w", i, err)
		}
		suppliers = append(suppliers, supplier)
	}
	buyers := make([]*participant.Buyer, 0, len(r.Buyers))
	for i, b := range r.Buyers {
		buyer, err := b.ToDomain()
		if err != nil {
			return nil, nil, fmt.Errorf("buyers[%d]: %w", i, err)
		}
		buyers = append(buyers, buyer)
	}
	return suppliers, buyers, nil
}

// UpdateSupplierRequest is a partial update; omitted fields keep their current value.
type UpdateSupplierRequest struct {
	Name            *string                 `json:"name" binding:"omitempty,min=1,max=255"`
	MeetingDuration *int                    `json:"meetingDuration" binding:"omitempty,min=5,max=480"`
	Preference      *PatchPreferenceRequest `json:"preference"`
}

type PatchPreferenceRequest struct {
	Mode     *string     `json:"mode" binding:"omitempty,oneof=all include exclude"`
	BuyerIDs []uuid.UUID `json:"buyerIds"`
}

func (r UpdateSupplierRequest) ToDomain(existing *participant.Supplier) (string, int, participant.Preference, error) {
	name := patch.Coalesce(r.Name, existing.Name())
	duration := patch.Coalesce(r.MeetingDuration, existing.MeetingDuration())
	if r.Preference == nil {
		return name, duration, existing.Preference(), nil
	}

	current := existing.Preference()
	mode := patch.Coalesce(r.Preference.Mode, string(current.Mode()))
	ids := patch.CoalesceSlice(r.Preference.BuyerIDs, r.Preference.BuyerIDs != nil, current.BuyerIDs())
	pref, err := participant.NewPreference(mode, ids)
	if err != nil {
		return "", 0, participant.Preference{}, err
	}
	return name, duration, pref, nil
}
