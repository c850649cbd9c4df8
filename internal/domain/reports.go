package domain

import "time"

// LastWeekReport is the backend's report of tasks completed in the trailing
// week.
type LastWeekReport struct {
	Tasks []*Task `json:"tasks"`
}

// PendingReport is the backend's report of unfinished tasks.
type PendingReport struct {
	Tasks        []*Task `json:"tasks"`
	TotalDays    float64 `json:"totalDays"`
	PendingCount int     `json:"pendingCount"`
}

// ClosedTasksReport groups closed-task counts by team, project and owner.
// The grouping keys are entity names as resolved by the backend.
type ClosedTasksReport struct {
	ByTeam    map[string]int `json:"byTeam"`
	ByProject map[string]int `json:"byProject"`
	ByOwner   map[string]int `json:"byOwner"`
}

// DayCount is one bar of the completed-per-day chart.
type DayCount struct {
	Day   string // Short weekday name (Sun..Sat)
	Count int
}

// LastWeekBuckets groups the report's tasks into the trailing 7 days
// (oldest first) by the day their updatedAt falls on.
func LastWeekBuckets(r *LastWeekReport, now time.Time) []DayCount {
	buckets := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := 0
		for _, t := range r.Tasks {
			y1, m1, d1 := t.UpdatedAt.Date()
			y2, m2, d2 := day.Date()
			if y1 == y2 && m1 == m2 && d1 == d2 {
				count++
			}
		}
		buckets = append(buckets, DayCount{Day: day.Format("Mon"), Count: count})
	}
	return buckets
}

// StatusWork is the pending workload for one status.
type StatusWork struct {
	Status Status
	Count  int
	Days   float64 // Sum of timeToComplete
}

// PendingByStatus tallies the pending report's tasks over the three
// non-completed statuses. Tasks with any other status are ignored.
func PendingByStatus(r *PendingReport) []StatusWork {
	work := []StatusWork{
		{Status: StatusTodo},
		{Status: StatusInProgress},
		{Status: StatusBlocked},
	}
	for _, t := range r.Tasks {
		for i := range work {
			if t.Status == work[i].Status {
				work[i].Count++
				work[i].Days += t.TimeToComplete
			}
		}
	}
	return work
}
