package meeting

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusDelayed     Status = "delayed"
	StatusRunningLate Status = "running_late"
	StatusBumped      Status = "bumped"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusDelayed,
		StatusRunningLate, StatusBumped, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal statuses are excluded from every busy/availability check.
func (s Status) IsTerminal() bool {
	return s == StatusBumped || s == StatusCancelled
}

var transitions = map[Status][]Status{
	StatusScheduled:   {StatusInProgress, StatusDelayed, StatusBumped, StatusCancelled},
	StatusInProgress:  {StatusCompleted, StatusRunningLate, StatusCancelled},
	StatusDelayed:     {StatusDelayed, StatusInProgress, StatusBumped, StatusCancelled},
	StatusRunningLate: {StatusDelayed, StatusCompleted, StatusBumped, StatusCancelled},
	StatusCompleted:   {StatusCancelled},
}

// CanTransitionTo encodes the meeting lifecycle. Reset to scheduled is allowed from
// every non-terminal status; nothing leaves cancelled or bumped.
func (s Status) CanTransitionTo(to Status) bool {
	if s.IsTerminal() || !to.IsValid() {
		return false
	}
	if to == StatusScheduled {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}
