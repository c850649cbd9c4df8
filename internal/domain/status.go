package domain

// Status represents the lifecycle state of a task.
// The backend recognizes exactly these four values; anything else is carried
// verbatim but treated as "not completed" everywhere it matters.
type Status string

const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusBlocked    Status = "Blocked"
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted, StatusBlocked}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	default:
		return false
	}
}

// IsCompleted returns true only for the Completed status. Unknown values
// never count as completed.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// Badge returns the display variant for the status.
func (s Status) Badge() Badge {
	switch s {
	case StatusCompleted:
		return BadgeSuccess
	case StatusInProgress:
		return BadgeWarning
	case StatusBlocked:
		return BadgeDanger
	default:
		return BadgeSecondary
	}
}

// Badge is a coarse display variant for status labels.
type Badge string

const (
	BadgePrimary   Badge = "primary"
	BadgeSuccess   Badge = "success"
	BadgeWarning   Badge = "warning"
	BadgeDanger    Badge = "danger"
	BadgeSecondary Badge = "secondary"
)
