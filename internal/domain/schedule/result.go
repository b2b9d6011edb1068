package schedule

import (
	"fmt"

	"github.com/google/uuid"
)

// FailureKind classifies why an operation was refused.
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureNotFound          FailureKind = "not_found"
	FailureConflict          FailureKind = "conflict"
	FailureInvalidTransition FailureKind = "invalid_transition"
	FailureNoAvailableSlot   FailureKind = "no_available_slot"
	FailureInvalidInput      FailureKind = "invalid_input"
)

// OperationResult is returned by every mutation. Expected refusals are reported
// here rather than as errors; a refused operation leaves the schedule untouched.
type OperationResult struct {
	Success      bool
	Message      string
	Failure      FailureKind
	MeetingID    uuid.UUID
	NewMeetingID uuid.UUID
	Filled       []uuid.UUID

	changed bool
}

// Changed reports whether the operation modified the schedule.
func (r OperationResult) Changed() bool {
	return r.Success && r.changed
}

func Fail(kind FailureKind, format string, args ...any) OperationResult {
	return OperationResult{Failure: kind, Message: fmt.Sprintf(format, args...)}
}

func ok(changed bool, meetingID uuid.UUID, format string, args ...any) OperationResult {
	return OperationResult{
		Success:   true,
		Message:   fmt.Sprintf(format, args...),
		MeetingID: meetingID,
		changed:   changed,
	}
}
