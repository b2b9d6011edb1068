package response

import (
	"time"

	"meeting-scheduler/internal/pkg/ptr"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ConflictResponse struct {
	Type                 string     `json:"type"`
	Severity             string     `json:"severity"`
	Description          string     `json:"description"`
	ConflictingMeetingID *uuid.UUID `json:"conflictingMeetingId,omitempty"`
}

// OperationResponse is returned by every schedule mutation, successful or refused.
type OperationResponse struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	Failure      string             `json:"failure,omitempty"`
	MeetingID    *uuid.UUID         `json:"meetingId,omitempty"`
	NewMeetingID *uuid.UUID         `json:"newMeetingId,omitempty"`
	Filled       []uuid.UUID        `json:"filled,omitempty"`
	Conflicts    []ConflictResponse `json:"conflicts,omitempty"`
}

type GenerateResponse struct {
	Strategy    string `json:"strategy"`
	Desired     int    `json:"desired"`
	Placed      int    `json:"placed"`
	Unscheduled int    `json:"unscheduled"`
	Days        int    `json:"days"`
}

type SlotResponse struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	IsBreak    bool      `json:"isBreak"`
	BreakLabel string    `json:"breakLabel,omitempty"`
}

type MeetingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	SupplierID         uuid.UUID  `json:"supplierId"`
	SupplierName       string     `json:"supplierName"`
	BuyerID            uuid.UUID  `json:"buyerId"`
	BuyerName          string     `json:"buyerName"`
	TimeSlotID         uuid.UUID  `json:"timeSlotId"`
	Start              time.Time  `json:"start"`
	End                time.Time  `json:"end"`
	Status             string     `json:"status"`
	OriginalTimeSlotID *uuid.UUID `json:"originalTimeSlotId,omitempty"`
	BumpedFrom         *uuid.UUID `json:"bumpedFrom,omitempty"`
	DelayReason        string     `json:"delayReason,omitempty"`
	DelayedAt          *time.Time `json:"delayedAt,omitempty"`
	HasConflict        bool       `json:"hasConflict"`
}

type UnscheduledResponse struct {
	SupplierID   uuid.UUID `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	BuyerID      uuid.UUID `json:"buyerId"`
	BuyerName    string    `json:"buyerName"`
	Reason       string    `json:"reason"`
}

type SupplierResponse struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Company         string      `json:"company"`
	MeetingDuration int         `json:"meetingDuration"`
	PreferenceMode  string      `json:"preferenceMode"`
	BuyerIDs        []uuid.UUID `json:"buyerIds,omitempty"`
}

type BuyerResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
}

type ScheduleResponse struct {
	ProjectID   uuid.UUID             `json:"projectId"`
	ProjectName string                `json:"projectName"`
	Suppliers   []SupplierResponse    `json:"suppliers"`
	Buyers      []BuyerResponse       `json:"buyers"`
	Slots       []SlotResponse        `json:"slots"`
	Meetings    []MeetingResponse     `json:"meetings"`
	Unscheduled []UnscheduledResponse `json:"unscheduled"`
}

type ConflictCheckResponse struct {
	HasConflicts bool               `json:"hasConflicts"`
	HasErrors    bool               `json:"hasErrors"`
	HasWarnings  bool               `json:"hasWarnings"`
	Conflicts    []ConflictResponse `json:"conflicts"`
}

type DoubleBookingResponse struct {
	BuyerID    uuid.UUID   `json:"buyerId"`
	BuyerName  string      `json:"buyerName"`
	SlotID     uuid.UUID   `json:"slotId"`
	MeetingIDs []uuid.UUID `json:"meetingIds"`
}

type PreferenceViolationResponse struct {
	MeetingID   uuid.UUID `json:"meetingId"`
	SupplierID  uuid.UUID `json:"supplierId"`
	BuyerID     uuid.UUID `json:"buyerId"`
	Description string    `json:"description"`
}

type ConflictSummaryResponse struct {
	Total                int                           `json:"total"`
	DoubleBookings       []DoubleBookingResponse       `json:"doubleBookings"`
	PreferenceViolations []PreferenceViolationResponse `json:"preferenceViolations"`
}

type HistoryResponse struct {
	CanUndo   bool `json:"canUndo"`
	CanRedo   bool `json:"canRedo"`
	UndoDepth int  `json:"undoDepth"`
	RedoDepth int  `json:"redoDepth"`
	Limit     int  `json:"limit,omitempty"`
}

func FromMutationResult(r *commands.MutationResult) *OperationResponse {
	resp := &OperationResponse{
		Success:      r.Success,
		Message:      r.Message,
		Failure:      string(r.Failure),
		MeetingID:    ptr.UUID(r.MeetingID),
		NewMeetingID: ptr.UUID(r.NewMeetingID),
		Filled:       r.Filled,
	}
	for _, c := range r.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			Type:                 string(c.Type),
			Severity:             string(c.Severity),
			Description:          c.Description,
			ConflictingMeetingID: ptr.UUID(c.ConflictingMeetingID),
		})
	}
	return resp
}

func FromGenerateResult(r *commands.GenerateResult) *GenerateResponse {
	return &GenerateResponse{
		Strategy:    string(r.Strategy),
		Desired:     r.Desired,
		Placed:      r.Placed,
		Unscheduled: r.Unscheduled,
		Days:        r.Days,
	}
}

func FromHistoryResult(r *commands.HistoryResult) *HistoryResponse {
	return &HistoryResponse{
		CanUndo:   r.CanUndo,
		CanRedo:   r.CanRedo,
		UndoDepth: r.UndoDepth,
		RedoDepth: r.RedoDepth,
	}
}

func FromScheduleView(v *queries.ScheduleView) (*ScheduleResponse, error) {
	var resp ScheduleResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromSlotViews(vs []queries.SlotView) ([]SlotResponse, error) {
	resp := make([]SlotResponse, 0, len(vs))
	if err := copier.Copy(&resp, &vs); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromConflictCheckView(v *queries.ConflictCheckView) (*ConflictCheckResponse, error) {
	var resp ConflictCheckResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromConflictSummaryView(v *queries.ConflictSummaryView) (*ConflictSummaryResponse, error) {
	var resp ConflictSummaryResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromHistoryView(v *queries.HistoryView) *HistoryResponse {
	return &HistoryResponse{
		CanUndo:   v.CanUndo,
		CanRedo:   v.CanRedo,
		UndoDepth: v.UndoDepth,
		RedoDepth: v.RedoDepth,
		Limit:     v.Limit,
	}
}
