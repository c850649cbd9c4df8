package domain

import (
	"strings"
	"time"
)

// Criteria is the set of active filter values for a view. Empty fields
// impose no constraint; non-empty fields compose by logical AND.
type Criteria struct {
	Owner   string // User ID
	Project string // Project ID
	Team    string // Team ID
	Status  string // Exact status match
	Tags    string // Comma-separated; a task matches if it has any of them
}

// Matches reports whether the task satisfies every non-empty criterion.
func (c Criteria) Matches(t *Task) bool {
	if c.Owner != "" && !t.HasOwner(c.Owner) {
		return false
	}
	if c.Project != "" && t.ProjectID != c.Project {
		return false
	}
	if c.Team != "" && t.TeamID != c.Team {
		return false
	}
	if c.Status != "" && string(t.Status) != c.Status {
		return false
	}
	if tags := c.TagList(); len(tags) > 0 && !t.HasAnyTag(tags) {
		return false
	}
	return true
}

// TagList splits the Tags field on commas, trimming whitespace and dropping
// empty entries.
func (c Criteria) TagList() []string {
	if c.Tags == "" {
		return nil
	}
	parts := strings.Split(c.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// IsEmpty returns true if no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Clear resets every criterion, independent of any selection state.
func (c *Criteria) Clear() {
	*c = Criteria{}
}

// FilterTasks returns the tasks matching the criteria, preserving order.
func (c Criteria) FilterTasks(tasks []*Task) []*Task {
	if c.IsEmpty() {
		return tasks
	}
	var out []*Task
	for _, t := range tasks {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Dashboard quick filter keywords.
const (
	QuickFilterAll    = "all"
	QuickFilterRecent = "recent"
)

// MatchProjectQuickFilter evaluates the dashboard's project filter: "all"
// matches everything, "recent" matches projects created within the trailing
// 7 days (inclusive), anything else is a case-insensitive substring match on
// the project name.
func MatchProjectQuickFilter(filter string, p *Project, now time.Time) bool {
	switch filter {
	case "", QuickFilterAll:
		return true
	case QuickFilterRecent:
		return !p.CreatedAt.Before(now.AddDate(0, 0, -7))
	default:
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter))
	}
}

// taskQuickFilters maps dashboard task filter keywords to statuses.
var taskQuickFilters = map[string]Status{
	"todo":        StatusTodo,
	"in-progress": StatusInProgress,
	"completed":   StatusCompleted,
	"blocked":     StatusBlocked,
}

// MatchTaskQuickFilter evaluates the dashboard's task filter: "all" matches
// everything, the status keywords match exactly, anything else is a
// case-insensitive substring match on the task name.
func MatchTaskQuickFilter(filter string, t *Task) bool {
	switch {
	case filter == "" || filter == QuickFilterAll:
		return true
	default:
		if status, ok := taskQuickFilters[filter]; ok {
			return t.Status == status
		}
		return strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter))
	}
}
