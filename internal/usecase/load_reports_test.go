package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/testutil"
)

func TestLoadReports_Execute(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	api := &testutil.MockAPI{
		LastWeek: &domain.LastWeekReport{
			Tasks: []*domain.Task{{ID: "t1", UpdatedAt: now.Add(-time.Hour)}},
		},
		Pending: &domain.PendingReport{
			Tasks: []*domain.Task{
				{ID: "t2", Status: domain.StatusTodo, TimeToComplete: 2},
				{ID: "t3", Status: domain.StatusBlocked, TimeToComplete: 1},
			},
		},
		Closed: &domain.ClosedTasksReport{
			ByTeam:    map[string]int{"Core": 4},
			ByProject: map[string]int{"Website": 3},
			ByOwner:   map[string]int{"Ada": 2},
		},
	}
	uc := NewLoadReports(api, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, out.LastWeek, 7)
	assert.Equal(t, 1, out.LastWeek[6].Count)
	require.Len(t, out.Pending, 3)
	assert.Equal(t, 1, out.Pending[0].Count)
	assert.InDelta(t, 2, out.Pending[0].Days, 1e-9)
	assert.Equal(t, 4, out.Closed.ByTeam["Core"])
}

func TestLoadReports_Execute_AnyFailureFails(t *testing.T) {
	uc := NewLoadReports(&testutil.MockAPI{ReportsErr: assert.AnError}, &testutil.MockClock{})

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
