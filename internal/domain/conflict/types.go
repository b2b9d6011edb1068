package conflict

import (
	"slices"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSupplierBusy        Type = "supplier_busy"
	TypeBuyerBusy           Type = "buyer_busy"
	TypePreferenceViolation Type = "preference_violation"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Info describes one conflict. ConflictingMeetingID is uuid.Nil for preference violations.
type Info struct {
	Type                 Type
	Severity             Severity
	Description          string
	ConflictingMeetingID uuid.UUID
}

type Result struct {
	Conflicts []Info
}

func (r Result) HasConflicts() bool { return len(r.Conflicts) > 0 }
func (r Result) HasErrors() bool    { return len(r.Errors()) > 0 }
func (r Result) HasWarnings() bool  { return len(r.Warnings()) > 0 }
func (r Result) Errors() []Info     { return r.filter(SeverityError) }
func (r Result) Warnings() []Info   { return r.filter(SeverityWarning) }

func (r Result) filter(severity Severity) []Info {
	out := slices.DeleteFunc(slices.Clone(r.Conflicts), func(i Info) bool {
		return i.Severity != severity
	})
	if len(out) == 0 {
		return nil
	}
	return out
}

// DoubleBooking groups every active meeting a buyer has in one slot.
type DoubleBooking struct {
	BuyerID    uuid.UUID
	SlotID     uuid.UUID
	MeetingIDs []uuid.UUID
}

type PreferenceViolation struct {
	MeetingID   uuid.UUID
	SupplierID  uuid.UUID
	BuyerID     uuid.UUID
	Description string
}

type Summary struct {
	DoubleBookings       []DoubleBooking
	PreferenceViolations []PreferenceViolation
}

func (s Summary) Total() int {
	return len(s.DoubleBookings) + len(s.PreferenceViolations)
}
