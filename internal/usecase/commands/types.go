package commands

import (
	"meeting-scheduler/internal/domain/assignment"
	"meeting-scheduler/internal/domain/conflict"
	"meeting-scheduler/internal/domain/schedule"
)

// MutationResult carries the operation outcome plus any conflicts found on the way.
// Errors among them mean the operation was refused; warnings were accepted.
type MutationResult struct {
	schedule.OperationResult
	Conflicts []conflict.Info
}

type GenerateResult struct {
	Strategy    assignment.Strategy
	Desired     int
	Placed      int
	Unscheduled int
	Days        int
}

type HistoryResult struct {
	CanUndo   bool
	CanRedo   bool
	UndoDepth int
	RedoDepth int
}
