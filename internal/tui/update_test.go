package tui

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/testutil"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, testWorkspace())

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_ViewCycling(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	_, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, ViewProjects, m.view)
	_, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, ViewTeams, m.view)
	_, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, ViewReports, m.view)
	_, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, ViewTasks, m.view)
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestModel(t, testWorkspace())

	_, cmd := m.Update(keyMsg("q"))

	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_FilterMode(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	_, _ = m.Update(keyMsg("/"))
	assert.Equal(t, ModeFilter, m.mode)

	// Escape resets the filter and returns to normal mode.
	m.filterInput.SetValue("login")
	_, _ = m.Update(keyMsg("esc"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.filterInput.Value())
}

func TestUpdate_DeleteConfirmFlow(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	_, _ = m.Update(keyMsg("d"))
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmDelete, m.confirmAction)
	assert.Equal(t, "t1", m.confirmTaskID)

	// Confirming issues the delete and reloads; MsgTaskDeleted resets the
	// dialog state.
	_, cmd := m.Update(keyMsg("y"))
	drain(t, m, cmd)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, ConfirmNone, m.confirmAction)
}

func TestUpdate_DeleteConfirmAborted(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	_, _ = m.Update(keyMsg("d"))
	_, _ = m.Update(keyMsg("esc"))

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, ConfirmNone, m.confirmAction)
}

func TestUpdate_StatusPicker(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	_, _ = m.Update(keyMsg("e"))
	assert.Equal(t, ModeStatus, m.mode)
	// The cursor starts on the task's current status (To Do).
	assert.Equal(t, 0, m.statusCursor)

	_, _ = m.Update(keyMsg("j"))
	assert.Equal(t, 1, m.statusCursor)

	_, cmd := m.Update(keyMsg("enter"))
	drain(t, m, cmd)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_SelectProjectScopesTasks(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	_, _ = m.Update(keyMsg("tab")) // projects view
	_, cmd := m.Update(keyMsg("enter"))
	drain(t, m, cmd)

	assert.Equal(t, ViewTasks, m.view)
	assert.Equal(t, domain.ParamProject, m.parentKey)
	assert.Equal(t, "p1", m.parentID)
	assert.NotEmpty(t, m.shareLink)
}

func TestUpdate_ErrorMessage(t *testing.T) {
	m := newTestModel(t, testWorkspace())

	_, _ = m.Update(MsgError{Err: errors.New("backend down")})
	assert.EqualError(t, m.err, "backend down")
	assert.Equal(t, ModeNormal, m.mode)

	// Any keypress clears it.
	_, _ = m.Update(keyMsg("j"))
	assert.NoError(t, m.err)
}

func TestUpdate_ClearFilters(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	m.criteria.Status = string(domain.StatusTodo)
	m.filterInput.SetValue("login")
	m.selectParent(domain.ParamProject, "p1")

	_, cmd := m.Update(keyMsg("C"))
	drain(t, m, cmd)

	// Criteria and the quick filter clear; the parent selection stays,
	// so the link keeps the bare parent key.
	assert.True(t, m.criteria.IsEmpty())
	assert.Empty(t, m.filterInput.Value())
	assert.Equal(t, "p1", m.parentID)
	assert.Equal(t, "project=p1", m.shareLink)
}

func TestUpdate_SortCycling(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	assert.Equal(t, domain.SortByCreatedAt, m.sortField)
	_, _ = m.Update(keyMsg("o"))
	assert.Equal(t, domain.SortByUpdatedAt, m.sortField)
	_, _ = m.Update(keyMsg("o"))
	assert.Equal(t, domain.SortByTimeToComplete, m.sortField)
	_, _ = m.Update(keyMsg("o"))
	assert.Equal(t, domain.SortByName, m.sortField)
	_, _ = m.Update(keyMsg("o"))
	assert.Equal(t, domain.SortByCreatedAt, m.sortField)

	assert.Equal(t, domain.SortDesc, m.sortOrder)
	_, _ = m.Update(keyMsg("O"))
	assert.Equal(t, domain.SortAsc, m.sortOrder)
}

func TestUpdate_NewTaskForm(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())
	m.selectParent(domain.ParamProject, "p1")

	_, _ = m.Update(keyMsg("n"))
	assert.Equal(t, ModeNewTask, m.mode)
	// The selected parent pre-fills the project field.
	assert.Equal(t, "p1", m.form.inputs[formFieldProject].Value())

	_, _ = m.Update(keyMsg("esc"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.form.inputs[formFieldProject].Value())
}

func TestUpdate_FormSubmitGuard(t *testing.T) {
	mock := &testutil.MockAPI{
		Projects: []*domain.Project{{ID: "p1", Name: "Platform"}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := app.NewWithDeps(mock, &testutil.MockTokenStore{}, &testutil.MockClock{NowTime: testNow}, logger)
	m := New(c, &domain.User{ID: "u1", Name: "Alice"})
	drain(t, m, m.Init())

	m.mode = ModeNewTask
	m.form.inputs[formFieldName].SetValue("New task")
	m.form.inputs[formFieldProject].SetValue("p1")
	m.form.inputs[formFieldEstimate].SetValue("2")
	m.form.index = formFieldCount - 1

	_, cmd := m.Update(keyMsg("enter"))
	assert.NotNil(t, cmd)
	assert.True(t, m.submitting)

	// A second Enter while the request is in flight must not issue
	// another create.
	_, second := m.Update(keyMsg("enter"))
	assert.Nil(t, second)

	drain(t, m, cmd)
	assert.False(t, m.submitting)
	assert.Len(t, mock.CreatedTasks, 1)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_FormSubmitGuard_ClearedOnError(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	m.mode = ModeNewTask
	m.form.index = formFieldCount - 1
	m.submitting = true

	_, _ = m.Update(MsgError{Err: errors.New("backend down")})
	assert.False(t, m.submitting)

	// The next submission goes through again.
	m.mode = ModeNewTask
	m.form.index = formFieldCount - 1
	_, cmd := m.Update(keyMsg("enter"))
	assert.NotNil(t, cmd)
}

func TestUpdate_ErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	mock := &testutil.MockAPI{}
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := app.NewWithDeps(mock, &testutil.MockTokenStore{}, &testutil.MockClock{NowTime: testNow}, logger)
	m := New(c, &domain.User{ID: "u1", Name: "Alice"})

	_, _ = m.Update(MsgError{Err: errors.New("backend down")})

	assert.Contains(t, buf.String(), "backend request failed")
	assert.Contains(t, buf.String(), "backend down")
}

func TestUpdate_LinkMode(t *testing.T) {
	m := newTestModel(t, testWorkspace())
	drain(t, m, m.Init())

	_, _ = m.Update(keyMsg("L"))
	assert.Equal(t, ModeLink, m.mode)

	m.linkInput.SetValue("project=p1&status=To+Do")
	_, cmd := m.Update(keyMsg("enter"))
	drain(t, m, cmd)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, ViewTasks, m.view)
	assert.Equal(t, "p1", m.parentID)
	assert.Equal(t, string(domain.StatusTodo), m.criteria.Status)
}
