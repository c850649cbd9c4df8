package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/testutil"
)

// testData configures the mock backend behind a test model.
type testData struct {
	tasks    []*domain.Task
	projects []*domain.Project
	teams    []*domain.Team
	users    []*domain.User
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, data *testData) *Model {
	t.Helper()

	mock := &testutil.MockAPI{
		Tasks:    data.tasks,
		Projects: data.projects,
		Teams:    data.teams,
		Users:    data.users,
		LastWeek: &domain.LastWeekReport{},
		Pending:  &domain.PendingReport{},
		Closed:   &domain.ClosedTasksReport{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := app.NewWithDeps(mock, &testutil.MockTokenStore{}, &testutil.MockClock{NowTime: testNow}, logger)

	return New(c, &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"})
}

// drain runs a command and feeds its message back into the model, the way
// the bubbletea runtime would.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		var next tea.Cmd
		_, next = m.Update(msg)
		cmd = next
	}
}

func testWorkspace() *testData {
	return &testData{
		tasks: []*domain.Task{
			{
				ID: "t1", Name: "Fix login", ProjectID: "p1", TeamID: "team1",
				Status: domain.StatusTodo, Owners: []string{"u1"},
				TimeToComplete: 2,
				CreatedAt:      testNow.AddDate(0, 0, -3),
				UpdatedAt:      testNow.AddDate(0, 0, -1),
			},
			{
				ID: "t2", Name: "Ship reports", ProjectID: "p1", TeamID: "team1",
				Status: domain.StatusCompleted, Owners: []string{"u1"},
				TimeToComplete: 5,
				CreatedAt:      testNow.AddDate(0, 0, -10),
				UpdatedAt:      testNow,
			},
		},
		projects: []*domain.Project{
			{ID: "p1", Name: "Platform", Description: "Core platform work", CreatedAt: testNow.AddDate(0, 0, -30)},
			{ID: "p2", Name: "Website", CreatedAt: testNow.AddDate(0, 0, -2)},
		},
		teams: []*domain.Team{
			{ID: "team1", Name: "Backend", Members: []domain.TeamMember{{ID: "u1", Name: "Alice"}}},
		},
		users: []*domain.User{
			{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		},
	}
}

func TestModel_InitLoadsWorkspace(t *testing.T) {
	m := newTestModel(t, testWorkspace())

	drain(t, m, m.Init())

	assert.NotNil(t, m.snapshot)
	assert.Len(t, m.taskList.Items(), 2)
	assert.Len(t, m.projectList.Items(), 2)
	assert.Len(t, m.teamList.Items(), 1)
}

func TestModel_SelectedTask(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	task := m.SelectedTask()
	assert.NotNil(t, task)
}

func TestModel_VisibleTasks_SortOrder(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	// Default is createdAt descending: t1 (3 days ago) before t2 (10 days
	// ago).
	tasks := m.visibleTasks()
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "t2", tasks[1].ID)

	m.sortOrder = domain.SortAsc
	tasks = m.visibleTasks()
	assert.Equal(t, "t2", tasks[0].ID)
}

func TestModel_VisibleTasks_QuickFilter(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	m.filterInput.SetValue("completed")
	tasks := m.visibleTasks()
	assert.Len(t, tasks, 1)
	assert.Equal(t, "t2", tasks[0].ID)

	m.filterInput.SetValue("login")
	tasks = m.visibleTasks()
	assert.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
}

func TestModel_EffectiveCriteria(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	m.criteria.Status = string(domain.StatusTodo)
	m.parentKey = domain.ParamProject
	m.parentID = "p1"

	c := m.effectiveCriteria()
	assert.Equal(t, "p1", c.Project)
	assert.Equal(t, string(domain.StatusTodo), c.Status)

	// The stored criteria stay parent-free.
	assert.Empty(t, m.criteria.Project)
}
