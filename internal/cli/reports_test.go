package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workasana/workasana/internal/domain"
	"gopkg.in/yaml.v3"
)

func TestReportsCommand(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()
	env.api.LastWeek = &domain.LastWeekReport{
		Tasks: []*domain.Task{
			{ID: "t2", Status: domain.StatusCompleted, UpdatedAt: testNow},
			{ID: "t3", Status: domain.StatusCompleted, UpdatedAt: testNow.AddDate(0, 0, -1)},
		},
	}
	env.api.Pending = &domain.PendingReport{
		Tasks: []*domain.Task{
			{ID: "t1", Status: domain.StatusTodo, TimeToComplete: 2},
			{ID: "t4", Status: domain.StatusBlocked, TimeToComplete: 4},
		},
	}

	out, err := env.execute("reports")

	require.NoError(t, err)
	assert.Contains(t, out, "Completed in the last week")
	assert.Contains(t, out, "Pending work by status")
	assert.Contains(t, out, "Closed tasks")
	assert.Contains(t, out, "Backend")
	// testNow is a Sunday.
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "2.0d (1 tasks)")
	assert.Contains(t, out, "4.0d (1 tasks)")
}

func TestReportsCommand_BackendError(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()
	env.api.ReportsErr = assert.AnError

	_, err := env.execute("reports")

	assert.Error(t, err)
}

func TestExportCommand_JSON(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()

	out, err := env.execute("export")

	require.NoError(t, err)
	var payload struct {
		Tasks    []*domain.Task    `json:"tasks"`
		Projects []*domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Len(t, payload.Tasks, 2)
	assert.Len(t, payload.Projects, 1)
}

func TestExportCommand_YAML(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()

	out, err := env.execute("export", "--format", "yaml")

	require.NoError(t, err)
	var payload struct {
		Tasks []*domain.Task `yaml:"tasks"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &payload))
	assert.Len(t, payload.Tasks, 2)
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()

	_, err := env.execute("export", "--format", "xml")

	assert.Error(t, err)
}
