package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sortedIDs(tasks []*Task, field SortField, order SortOrder) []string {
	SortTasks(tasks, field, order)
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestSortTasks(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newTasks := func() []*Task {
		return []*Task{
			{ID: "t1", Name: "beta", CreatedAt: base.AddDate(0, 0, 2), UpdatedAt: base.AddDate(0, 0, 5), TimeToComplete: 3},
			{ID: "t2", Name: "alpha", CreatedAt: base, UpdatedAt: base.AddDate(0, 0, 9), TimeToComplete: 1},
			{ID: "t3", Name: "gamma", CreatedAt: base.AddDate(0, 0, 1), UpdatedAt: base.AddDate(0, 0, 7), TimeToComplete: 5},
		}
	}

	tests := []struct {
		name  string
		field SortField
		order SortOrder
		want  []string
	}{
		{name: "createdAt asc", field: SortByCreatedAt, order: SortAsc, want: []string{"t2", "t3", "t1"}},
		{name: "createdAt desc", field: SortByCreatedAt, order: SortDesc, want: []string{"t1", "t3", "t2"}},
		{name: "updatedAt asc", field: SortByUpdatedAt, order: SortAsc, want: []string{"t1", "t3", "t2"}},
		{name: "timeToComplete asc", field: SortByTimeToComplete, order: SortAsc, want: []string{"t2", "t1", "t3"}},
		{name: "timeToComplete desc", field: SortByTimeToComplete, order: SortDesc, want: []string{"t3", "t1", "t2"}},
		{name: "name asc", field: SortByName, order: SortAsc, want: []string{"t2", "t1", "t3"}},
		{name: "name desc", field: SortByName, order: SortDesc, want: []string{"t3", "t1", "t2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortedIDs(newTasks(), tt.field, tt.order))
		})
	}
}

func TestSortTasks_TieBreakOnID(t *testing.T) {
	same := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := []*Task{
		{ID: "t3", CreatedAt: same},
		{ID: "t1", CreatedAt: same},
		{ID: "t2", CreatedAt: same},
	}

	assert.Equal(t, []string{"t1", "t2", "t3"}, sortedIDs(tasks, SortByCreatedAt, SortAsc))
}

func TestValidSortField(t *testing.T) {
	assert.True(t, ValidSortField(SortByCreatedAt))
	assert.True(t, ValidSortField(SortByUpdatedAt))
	assert.True(t, ValidSortField(SortByTimeToComplete))
	assert.True(t, ValidSortField(SortByName))
	assert.False(t, ValidSortField(SortField("priority")))
}
