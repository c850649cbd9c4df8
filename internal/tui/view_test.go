package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/workasana/workasana/internal/domain"
)

func renderedModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestView_LoadingBeforeFirstSize(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	assert.Equal(t, "Loading...", m.View())
}

func TestView_TasksScreen(t *testing.T) {
	m := renderedModel(t)

	out := m.View()
	assert.Contains(t, out, "Fix login")
	assert.Contains(t, out, "Ship reports")
	assert.Contains(t, out, "Alice")
}

func TestView_ProjectsScreen(t *testing.T) {
	m := renderedModel(t)
	_, _ = m.Update(keyMsg("tab"))

	out := m.View()
	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "Website")
	// Platform has one completed of two tasks.
	assert.Contains(t, out, string(domain.AggregateInProgress))
	// Website has no tasks at all.
	assert.Contains(t, out, string(domain.AggregateNoTasks))
}

func TestView_TeamsScreen(t *testing.T) {
	m := renderedModel(t)
	m.view = ViewTeams
	m.updateLists()

	out := m.View()
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "1 members, 2 tasks")
}

func TestView_ReportsScreen(t *testing.T) {
	m := renderedModel(t)
	var cmd tea.Cmd
	m.view = ViewReports
	cmd = m.loadReports()
	drain(t, m, cmd)

	out := m.View()
	assert.Contains(t, out, "Completed in the last week")
	assert.Contains(t, out, "Pending work by status")
	assert.Contains(t, out, "Closed tasks")
}

func TestView_ConfirmDialog(t *testing.T) {
	m := renderedModel(t)
	_, _ = m.Update(keyMsg("d"))

	out := m.View()
	assert.Contains(t, out, "Confirm delete")
	assert.Contains(t, out, "Delete task t1?")
}

func TestView_StatusPicker(t *testing.T) {
	m := renderedModel(t)
	_, _ = m.Update(keyMsg("e"))

	out := m.View()
	assert.Contains(t, out, "Change status")
	for _, status := range domain.AllStatuses() {
		assert.Contains(t, out, string(status))
	}
}

func TestView_Detail(t *testing.T) {
	m := renderedModel(t)
	_, _ = m.Update(keyMsg("v"))

	out := m.View()
	assert.Contains(t, out, "Fix login")
	assert.Contains(t, out, "Platform")
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "Medium") // 2 day estimate
}

func TestView_Help(t *testing.T) {
	m := renderedModel(t)
	_, _ = m.Update(keyMsg("?"))

	out := m.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "new task")
}

func TestView_ErrorShown(t *testing.T) {
	m := renderedModel(t)
	_, _ = m.Update(MsgError{Err: assert.AnError})

	assert.Contains(t, m.View(), "Error:")
}

func TestView_ShareLinkShown(t *testing.T) {
	m := renderedModel(t)
	m.selectParent(domain.ParamProject, "p1")
	m.updateLists()

	assert.Contains(t, m.View(), "link: ?project=p1")
}
