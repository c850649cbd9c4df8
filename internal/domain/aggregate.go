package domain

// AggregateStatus summarizes a parent entity's task-completion state.
type AggregateStatus string

const (
	AggregateNoTasks    AggregateStatus = "No Tasks"
	AggregateCompleted  AggregateStatus = "Completed"
	AggregateInProgress AggregateStatus = "In Progress"
	AggregateActive     AggregateStatus = "Active"
)

// Badge returns the display variant for the aggregate status.
func (a AggregateStatus) Badge() Badge {
	switch a {
	case AggregateCompleted:
		return BadgeSuccess
	case AggregateInProgress:
		return BadgeWarning
	case AggregateActive:
		return BadgePrimary
	default:
		return BadgeSecondary
	}
}

// DeriveAggregateStatus computes the aggregate status from a pre-filtered
// set of child tasks: no tasks → No Tasks, all completed → Completed, some
// completed → In Progress, none completed → Active. A task with an
// unrecognized status never counts as completed.
func DeriveAggregateStatus(tasks []*Task) AggregateStatus {
	if len(tasks) == 0 {
		return AggregateNoTasks
	}
	completed := 0
	for _, t := range tasks {
		if t.Status.IsCompleted() {
			completed++
		}
	}
	switch {
	case completed == len(tasks):
		return AggregateCompleted
	case completed > 0:
		return AggregateInProgress
	default:
		return AggregateActive
	}
}

// ProjectStatus derives the aggregate status for a project from the full
// task collection.
func ProjectStatus(projectID string, tasks []*Task) AggregateStatus {
	return DeriveAggregateStatus(tasksWhere(tasks, func(t *Task) bool { return t.ProjectID == projectID }))
}

// TeamStatus derives the aggregate status for a team from the full task
// collection.
func TeamStatus(teamID string, tasks []*Task) AggregateStatus {
	return DeriveAggregateStatus(tasksWhere(tasks, func(t *Task) bool { return t.TeamID == teamID }))
}

func tasksWhere(tasks []*Task, keep func(*Task) bool) []*Task {
	var out []*Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
