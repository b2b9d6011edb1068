package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView represents one grid slot; breaks carry their label
type SlotView struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	IsBreak    bool      `json:"is_break"`
	BreakLabel string    `json:"break_label,omitempty"`
}

// MeetingView represents a meeting joined with participant names and slot times
type MeetingView struct {
	ID                 uuid.UUID  `json:"id"`
	SupplierID         uuid.UUID  `json:"supplier_id"`
	SupplierName       string     `json:"supplier_name"`
	BuyerID            uuid.UUID  `json:"buyer_id"`
	BuyerName          string     `json:"buyer_name"`
	TimeSlotID         uuid.UUID  `json:"time_slot_id"`
	Start              time.Time  `json:"start"`
	End                time.Time  `json:"end"`
	Status             string     `json:"status"`
	OriginalTimeSlotID *uuid.UUID `json:"original_time_slot_id,omitempty"`
	BumpedFrom         *uuid.UUID `json:"bumped_from,omitempty"`
	DelayReason        string     `json:"delay_reason,omitempty"`
	DelayedAt          *time.Time `json:"delayed_at,omitempty"`
	HasConflict        bool       `json:"has_conflict"`
}

type UnscheduledView struct {
	SupplierID   uuid.UUID `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	BuyerID      uuid.UUID `json:"buyer_id"`
	BuyerName    string    `json:"buyer_name"`
	Reason       string    `json:"reason"`
}

type SupplierView struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Company         string      `json:"company"`
	MeetingDuration int         `json:"meeting_duration"`
	PreferenceMode  string      `json:"preference_mode"`
	BuyerIDs        []uuid.UUID `json:"buyer_ids,omitempty"`
}

type BuyerView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
}

// ScheduleView is the full read model of the active project's schedule
type ScheduleView struct {
	ProjectID   uuid.UUID         `json:"project_id"`
	ProjectName string            `json:"project_name"`
	Suppliers   []SupplierView    `json:"suppliers"`
	Buyers      []BuyerView       `json:"buyers"`
	Slots       []SlotView        `json:"slots"`
	Meetings    []MeetingView     `json:"meetings"`
	Unscheduled []UnscheduledView `json:"unscheduled"`
}

type ConflictView struct {
	Type                 string     `json:"type"`
	Severity             string     `json:"severity"`
	Description          string     `json:"description"`
	ConflictingMeetingID *uuid.UUID `json:"conflicting_meeting_id,omitempty"`
}

type ConflictCheckView struct {
	HasConflicts bool           `json:"has_conflicts"`
	HasErrors    bool           `json:"has_errors"`
	HasWarnings  bool           `json:"has_warnings"`
	Conflicts    []ConflictView `json:"conflicts"`
}

type DoubleBookingView struct {
	BuyerID    uuid.UUID   `json:"buyer_id"`
	BuyerName  string      `json:"buyer_name"`
	SlotID     uuid.UUID   `json:"slot_id"`
	MeetingIDs []uuid.UUID `json:"meeting_ids"`
}

type PreferenceViolationView struct {
	MeetingID   uuid.UUID `json:"meeting_id"`
	SupplierID  uuid.UUID `json:"supplier_id"`
	BuyerID     uuid.UUID `json:"buyer_id"`
	Description string    `json:"description"`
}

type ConflictSummaryView struct {
	Total                int                       `json:"total"`
	DoubleBookings       []DoubleBookingView       `json:"double_bookings"`
	PreferenceViolations []PreferenceViolationView `json:"preference_violations"`
}

type HistoryView struct {
	CanUndo   bool `json:"can_undo"`
	CanRedo   bool `json:"can_redo"`
	UndoDepth int  `json:"undo_depth"`
	RedoDepth int  `json:"redo_depth"`
	Limit     int  `json:"limit"`
}

type ProjectView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Active        bool      `json:"active"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	SupplierCount int       `json:"supplier_count"`
	BuyerCount    int       `json:"buyer_count"`
	MeetingCount  int       `json:"meeting_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
