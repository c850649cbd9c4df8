package domain

// Priority is derived from a task's time estimate; it is never stored.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// PriorityFor maps an estimate in days to a priority label.
// Up to 1 day is Low, up to 3 days is Medium, anything longer is High.
func PriorityFor(timeToComplete float64) Priority {
	switch {
	case timeToComplete <= 1:
		return PriorityLow
	case timeToComplete <= 3:
		return PriorityMedium
	default:
		return PriorityHigh
	}
}

// Badge returns the display variant for the priority.
func (p Priority) Badge() Badge {
	switch p {
	case PriorityLow:
		return BadgeSuccess
	case PriorityMedium:
		return BadgeWarning
	default:
		return BadgeDanger
	}
}
