package request

import (
	"github.com/google/uuid"
)

type GenerateScheduleRequest struct {
	Strategy string `json:"strategy" binding:"omitempty,oneof=efficient spaced"`
	// Seed shuffles equal-priority pairs reproducibly. Omit for the default order.
	Seed *uint64 `json:"seed,omitempty"`
}

type AddMeetingRequest struct {
	SupplierID uuid.UUID `json:"supplierId" binding:"required"`
	BuyerID    uuid.UUID `json:"buyerId" binding:"required"`
	SlotID     uuid.UUID `json:"slotId" binding:"required"`
}

type MoveMeetingRequest struct {
	SlotID uuid.UUID `json:"slotId" binding:"required"`
}

type CheckMoveRequest struct {
	MeetingID uuid.UUID `json:"meetingId" binding:"required"`
	SlotID    uuid.UUID `json:"slotId" binding:"required"`
}

type SwapMeetingsRequest struct {
	FirstID  uuid.UUID `json:"firstId" binding:"required"`
	SecondID uuid.UUID `json:"secondId" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled in_progress completed delayed running_late cancelled bumped"`
	Reason string `json:"reason" binding:"max=500"`
}
