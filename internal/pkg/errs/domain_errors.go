package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Project errors
	ErrProjectNotFound  = errors.New("project not found")
	ErrNoActiveProject  = errors.New("no active project")
	ErrProjectChanged   = errors.New("active project changed during operation")
	ErrInvalidProject   = errors.New("invalid project")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrBuyerNotFound    = errors.New("buyer not found")

	// Schedule errors
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrSlotNotFound        = errors.New("time slot not found")
	ErrGenerationFailed    = errors.New("schedule generation failed")
	ErrGenerationTimedOut  = errors.New("schedule generation timed out")
	ErrGeneratorStopped    = errors.New("schedule generator stopped")
	ErrNothingToUndo       = errors.New("nothing to undo")
	ErrNothingToRedo       = errors.New("nothing to redo")
	ErrInvalidStrategy     = errors.New("invalid assignment strategy")
	ErrDomainValidation    = errors.New("domain validation error")
	ErrRepositoryOperation = errors.New("repository operation failed")
)
