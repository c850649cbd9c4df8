package domain

import "sort"

// SortField selects the task attribute to order by.
type SortField string

const (
	SortByCreatedAt      SortField = "createdAt"
	SortByUpdatedAt      SortField = "updatedAt"
	SortByTimeToComplete SortField = "timeToComplete"
	SortByName           SortField = "name"
)

// SortOrder selects the direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ValidSortField returns true for a recognized sort field.
func ValidSortField(f SortField) bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByTimeToComplete, SortByName:
		return true
	default:
		return false
	}
}

// SortTasks orders tasks in place by the given field and direction.
// Date fields compare as instants, timeToComplete numerically, name
// bytewise. Equal keys tie-break on task ID ascending so the result is
// deterministic regardless of input order.
func SortTasks(tasks []*Task, field SortField, order SortOrder) {
	less := lessFunc(field)
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if order == SortDesc {
			a, b = b, a
		}
		switch {
		case less(a, b):
			return true
		case less(b, a):
			return false
		default:
			return tasks[i].ID < tasks[j].ID
		}
	})
}

func lessFunc(field SortField) func(a, b *Task) bool {
	switch field {
	case SortByUpdatedAt:
		return func(a, b *Task) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case SortByTimeToComplete:
		return func(a, b *Task) bool { return a.TimeToComplete < b.TimeToComplete }
	case SortByName:
		return func(a, b *Task) bool { return a.Name < b.Name }
	default:
		return func(a, b *Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}
