package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastWeekBuckets(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC) // a Sunday
	report := &LastWeekReport{
		Tasks: []*Task{
			{ID: "t1", UpdatedAt: now.Add(-2 * time.Hour)},                  // today
			{ID: "t2", UpdatedAt: now.AddDate(0, 0, -1)},                    // yesterday
			{ID: "t3", UpdatedAt: now.AddDate(0, 0, -1).Add(3 * time.Hour)}, // still yesterday
			{ID: "t4", UpdatedAt: now.AddDate(0, 0, -8)},                    // outside the window
		},
	}

	buckets := LastWeekBuckets(report, now)
	require.Len(t, buckets, 7)

	assert.Equal(t, "Mon", buckets[0].Day)
	assert.Equal(t, "Sun", buckets[6].Day)
	assert.Equal(t, 1, buckets[6].Count)
	assert.Equal(t, 2, buckets[5].Count)
	assert.Equal(t, 0, buckets[0].Count)
}

func TestPendingByStatus(t *testing.T) {
	report := &PendingReport{
		Tasks: []*Task{
			{ID: "t1", Status: StatusTodo, TimeToComplete: 2},
			{ID: "t2", Status: StatusTodo, TimeToComplete: 1.5},
			{ID: "t3", Status: StatusInProgress, TimeToComplete: 4},
			{ID: "t4", Status: StatusBlocked, TimeToComplete: 0.5},
			{ID: "t5", Status: StatusCompleted, TimeToComplete: 9}, // ignored
		},
	}

	work := PendingByStatus(report)
	require.Len(t, work, 3)

	assert.Equal(t, StatusTodo, work[0].Status)
	assert.Equal(t, 2, work[0].Count)
	assert.InDelta(t, 3.5, work[0].Days, 1e-9)

	assert.Equal(t, StatusInProgress, work[1].Status)
	assert.Equal(t, 1, work[1].Count)
	assert.InDelta(t, 4, work[1].Days, 1e-9)

	assert.Equal(t, StatusBlocked, work[2].Status)
	assert.Equal(t, 1, work[2].Count)
	assert.InDelta(t, 0.5, work[2].Days, 1e-9)
}
