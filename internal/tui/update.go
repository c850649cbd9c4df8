package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/workasana/workasana/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgWorkspaceLoaded:
		m.snapshot = msg.Snapshot
		m.updateLists()
		return m, nil

	case MsgReportsLoaded:
		m.reports = msg.Reports
		return m, nil

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.submitting = false
		m.form.reset()
		return m, m.loadWorkspace()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, m.loadWorkspace()

	case MsgTaskStatusUpdated:
		m.mode = ModeNormal
		return m, m.loadWorkspace()

	case MsgError:
		m.container.Logger.Error("backend request failed", "error", msg.Err)
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.submitting = false
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key events by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress clears a stale error.
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeFilter:
		return m.handleFilterKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeNewTask:
		return m.handleFormKeys(msg)
	case ModeStatus:
		return m.handleStatusKeys(msg)
	case ModeLink:
		return m.handleLinkKeys(msg)
	case ModeHelp, ModeDetail:
		return m.handleOverlayKeys(msg)
	case ModeNormal:
		return m.handleNormalKeys(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextView):
		return m.switchView((m.view + 1) % 4)

	case key.Matches(msg, m.keys.PrevView):
		return m.switchView((m.view + 3) % 4)

	case key.Matches(msg, m.keys.Refresh):
		if m.view == ViewReports {
			return m, m.loadReports()
		}
		return m, m.loadWorkspace()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if m.view == ViewTasks || m.view == ViewProjects {
			m.mode = ModeFilter
			return m, m.filterInput.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearFilter):
		// Clears criteria and the quick filter only; the parent
		// selection is a navigation choice, not a filter.
		m.criteria.Clear()
		m.filterInput.Reset()
		m.applyStateToLink()
		return m, m.loadWorkspace()

	case key.Matches(msg, m.keys.Link):
		m.mode = ModeLink
		m.linkInput.Reset()
		return m, m.linkInput.Focus()

	case key.Matches(msg, m.keys.Sort):
		m.sortField = nextSortField(m.sortField)
		m.updateLists()
		return m, nil

	case key.Matches(msg, m.keys.Order):
		if m.sortOrder == domain.SortAsc {
			m.sortOrder = domain.SortDesc
		} else {
			m.sortOrder = domain.SortAsc
		}
		m.updateLists()
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.view == ViewTasks {
			m.mode = ModeNewTask
			m.form.reset()
			m.prefillForm()
			return m, m.form.focus(formFieldName)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); m.view == ViewTasks && task != nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDelete
			m.confirmTaskID = task.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.EditStatus):
		if task := m.SelectedTask(); m.view == ViewTasks && task != nil {
			m.mode = ModeStatus
			m.statusCursor = statusIndex(task.Status)
		}
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		if m.view == ViewTasks && m.SelectedTask() != nil {
			m.mode = ModeDetail
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.handleSelect()
	}

	return m.updateActiveList(msg)
}

// handleSelect toggles the parent selection on the projects and teams
// views, then jumps to the task view scoped to it.
func (m *Model) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewProjects:
		if p := m.SelectedProject(); p != nil {
			m.selectParent(domain.ParamProject, p.ID)
			if m.parentID != "" {
				m.view = ViewTasks
			}
			return m, m.loadWorkspace()
		}
	case ViewTeams:
		if t := m.SelectedTeam(); t != nil {
			m.selectParent(domain.ParamTeam, t.ID)
			if m.parentID != "" {
				m.view = ViewTasks
			}
			return m, m.loadWorkspace()
		}
	case ViewTasks:
		if m.SelectedTask() != nil {
			m.mode = ModeDetail
		}
	case ViewReports:
	}
	return m, nil
}

func (m *Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.view = v
	m.filterInput.Reset()
	m.updateLists()
	if v == ViewReports && m.reports == nil {
		return m, m.loadReports()
	}
	return m, nil
}

func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.updateLists()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.updateLists()
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.confirmAction == ConfirmDelete {
			return m, m.deleteTask(m.confirmTaskID)
		}
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
	}
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.form.reset()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.form.index < formFieldCount-1 {
			return m, m.form.focus(m.form.index + 1)
		}
		// One submission at a time; the flag drops when the result
		// message comes back.
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.createTask()

	case msg.String() == "tab":
		return m, m.form.focus((m.form.index + 1) % formFieldCount)

	case msg.String() == "shift+tab":
		return m, m.form.focus((m.form.index + formFieldCount - 1) % formFieldCount)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.index], cmd = m.form.inputs[m.form.index].Update(msg)
	return m, cmd
}

func (m *Model) handleStatusKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := domain.AllStatuses()
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.statusCursor = (m.statusCursor + len(statuses) - 1) % len(statuses)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.statusCursor = (m.statusCursor + 1) % len(statuses)
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if task := m.SelectedTask(); task != nil {
			return m, m.setTaskStatus(task.ID, statuses[m.statusCursor])
		}
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

func (m *Model) handleLinkKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.linkInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		m.linkInput.Blur()
		if err := m.applyLinkToState(strings.TrimSpace(m.linkInput.Value())); err != nil {
			m.err = err
			return m, nil
		}
		m.view = ViewTasks
		return m, m.loadWorkspace()
	}

	var cmd tea.Cmd
	m.linkInput, cmd = m.linkInput.Update(msg)
	return m, cmd
}

func (m *Model) handleOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit),
		key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Detail):
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewProjects:
		m.projectList, cmd = m.projectList.Update(msg)
	case ViewTeams:
		m.teamList, cmd = m.teamList.Update(msg)
	case ViewReports:
	}
	return m, cmd
}

// prefillForm seeds the form's project and team fields from the current
// parent selection.
func (m *Model) prefillForm() {
	switch m.parentKey {
	case domain.ParamProject:
		m.form.inputs[formFieldProject].SetValue(m.parentID)
	case domain.ParamTeam:
		m.form.inputs[formFieldTeam].SetValue(m.parentID)
	}
}

func nextSortField(f domain.SortField) domain.SortField {
	switch f {
	case domain.SortByCreatedAt:
		return domain.SortByUpdatedAt
	case domain.SortByUpdatedAt:
		return domain.SortByTimeToComplete
	case domain.SortByTimeToComplete:
		return domain.SortByName
	default:
		return domain.SortByCreatedAt
	}
}

func statusIndex(s domain.Status) int {
	for i, status := range domain.AllStatuses() {
		if status == s {
			return i
		}
	}
	return 0
}
