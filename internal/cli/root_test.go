package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/testutil"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// testEnv bundles a container, its mock backend and token store.
type testEnv struct {
	container *app.Container
	api       *testutil.MockAPI
	tokens    *testutil.MockTokenStore
}

func newTestEnv(t *testing.T, api *testutil.MockAPI) *testEnv {
	t.Helper()
	tokens := &testutil.MockTokenStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testEnv{
		container: app.NewWithDeps(api, tokens, &testutil.MockClock{NowTime: testNow}, logger),
		api:       api,
		tokens:    tokens,
	}
}

// loggedIn configures a valid persisted session.
func (e *testEnv) loggedIn() *testEnv {
	e.tokens.Token = "token-123"
	e.api.MeResult = &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	return e
}

// execute runs the root command with the given args and captures output.
func (e *testEnv) execute(args ...string) (string, error) {
	root := NewRootCommand(e.container, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func workspaceAPI() *testutil.MockAPI {
	return &testutil.MockAPI{
		Users: []*domain.User{{ID: "u1", Name: "Alice", Email: "alice@example.com"}},
		Projects: []*domain.Project{
			{ID: "p1", Name: "Platform", CreatedAt: testNow.AddDate(0, 0, -30)},
		},
		Teams: []*domain.Team{
			{ID: "tm1", Name: "Backend", Members: []domain.TeamMember{{ID: "u1", Name: "Alice", Role: "Member"}}},
		},
		Tasks: []*domain.Task{
			{
				ID: "t1", Name: "Fix login", ProjectID: "p1", TeamID: "tm1",
				Status: domain.StatusTodo, Owners: []string{"u1"},
				TimeToComplete: 2,
				CreatedAt:      testNow.AddDate(0, 0, -3),
				UpdatedAt:      testNow.AddDate(0, 0, -1),
			},
			{
				ID: "t2", Name: "Ship reports", ProjectID: "p1", TeamID: "tm1",
				Status: domain.StatusCompleted, Owners: []string{"u1"},
				TimeToComplete: 5,
				CreatedAt:      testNow.AddDate(0, 0, -10),
				UpdatedAt:      testNow,
			},
		},
		LastWeek: &domain.LastWeekReport{},
		Pending:  &domain.PendingReport{},
		Closed:   &domain.ClosedTasksReport{ByTeam: map[string]int{"Backend": 2}},
	}
}

func TestRootCommand_RequiresLogin(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())

	_, err := env.execute("tasks", "list")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestRootCommand_BareLaunchesDashboard(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()

	var launchedFor *domain.User
	orig := launchDashboardFunc
	launchDashboardFunc = func(_ *app.Container, user *domain.User) error {
		launchedFor = user
		return nil
	}
	defer func() { launchDashboardFunc = orig }()

	_, err := env.execute()

	require.NoError(t, err)
	require.NotNil(t, launchedFor)
	assert.Equal(t, "u1", launchedFor.ID)
}

func TestRootCommand_BareRequiresLogin(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())

	orig := launchDashboardFunc
	launched := false
	launchDashboardFunc = func(_ *app.Container, _ *domain.User) error {
		launched = true
		return nil
	}
	defer func() { launchDashboardFunc = orig }()

	_, err := env.execute()

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.False(t, launched)
}

func TestHealthCommand(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())

	out, err := env.execute("health")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend is up")

	env.api.HealthErr = assert.AnError
	_, err = env.execute("health")
	assert.ErrorContains(t, err, "backend unreachable")
}

func TestRootCommand_Version(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())

	out, err := env.execute("--version")

	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
