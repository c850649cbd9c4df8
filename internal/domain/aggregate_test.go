package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAggregateStatus(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*Task
		want  AggregateStatus
	}{
		{
			name:  "no tasks",
			tasks: nil,
			want:  AggregateNoTasks,
		},
		{
			name: "all completed",
			tasks: []*Task{
				{ID: "t1", Status: StatusCompleted},
				{ID: "t2", Status: StatusCompleted},
			},
			want: AggregateCompleted,
		},
		{
			name: "some completed",
			tasks: []*Task{
				{ID: "t1", Status: StatusCompleted, TimeToComplete: 0.5},
				{ID: "t2", Status: StatusTodo, TimeToComplete: 5},
			},
			want: AggregateInProgress,
		},
		{
			name: "none completed",
			tasks: []*Task{
				{ID: "t1", Status: StatusTodo},
				{ID: "t2", Status: StatusBlocked},
			},
			want: AggregateActive,
		},
		{
			name: "unknown status never counts as completed",
			tasks: []*Task{
				{ID: "t1", Status: StatusCompleted},
				{ID: "t2", Status: Status("Done")},
			},
			want: AggregateInProgress,
		},
		{
			name: "only unknown statuses",
			tasks: []*Task{
				{ID: "t1", Status: Status("Done")},
			},
			want: AggregateActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAggregateStatus(tt.tasks))
		})
	}
}

func TestProjectStatus(t *testing.T) {
	tasks := []*Task{
		{ID: "t1", ProjectID: "p1", Status: StatusCompleted},
		{ID: "t2", ProjectID: "p1", Status: StatusTodo},
		{ID: "t3", ProjectID: "p2", Status: StatusCompleted},
	}

	assert.Equal(t, AggregateInProgress, ProjectStatus("p1", tasks))
	assert.Equal(t, AggregateCompleted, ProjectStatus("p2", tasks))
	assert.Equal(t, AggregateNoTasks, ProjectStatus("p3", tasks))
}

func TestTeamStatus(t *testing.T) {
	tasks := []*Task{
		{ID: "t1", TeamID: "tm1", Status: StatusTodo},
		{ID: "t2", TeamID: "tm1", Status: StatusBlocked},
	}

	assert.Equal(t, AggregateActive, TeamStatus("tm1", tasks))
	assert.Equal(t, AggregateNoTasks, TeamStatus("tm2", tasks))
}

func TestAggregateStatus_Badge(t *testing.T) {
	assert.Equal(t, BadgeSecondary, AggregateNoTasks.Badge())
	assert.Equal(t, BadgeSuccess, AggregateCompleted.Badge())
	assert.Equal(t, BadgeWarning, AggregateInProgress.Badge())
	assert.Equal(t, BadgePrimary, AggregateActive.Badge())
}
