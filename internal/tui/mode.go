// Package tui provides the interactive dashboard for workasana.
package tui

// View represents the screen currently shown.
type View int

const (
	ViewTasks    View = iota // Task list with filters
	ViewProjects             // Project list with derived status
	ViewTeams                // Team list with derived status
	ViewReports              // Charts screen
)

// String returns the string representation of the view.
func (v View) String() string {
	switch v {
	case ViewTasks:
		return "tasks"
	case ViewProjects:
		return "projects"
	case ViewTeams:
		return "teams"
	case ViewReports:
		return "reports"
	default:
		return "unknown"
	}
}

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeFilter              // Quick filter input mode
	ModeConfirm             // Confirmation dialog mode
	ModeNewTask             // Task creation form mode
	ModeStatus              // Status picker mode
	ModeLink                // Link paste mode
	ModeHelp                // Help overlay mode
	ModeDetail              // Task detail view mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeConfirm:
		return "confirm"
	case ModeNewTask:
		return "new_task"
	case ModeStatus:
		return "status"
	case ModeLink:
		return "link"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeFilter, ModeNewTask, ModeLink:
		return true
	case ModeNormal, ModeConfirm, ModeStatus, ModeHelp, ModeDetail:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}
