package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/usecase"
)

// Form field indexes for the new-task form.
const (
	formFieldName = iota
	formFieldProject
	formFieldTeam
	formFieldEstimate
	formFieldTags
	formFieldCount
)

// taskForm holds the inputs of the new-task form.
type taskForm struct {
	inputs []textinput.Model
	index  int
}

func newTaskForm() taskForm {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		return ti
	}
	return taskForm{
		inputs: []textinput.Model{
			mk("Task name", 200),
			mk("Project ID", 64),
			mk("Team ID", 64),
			mk("Estimate (days)", 8),
			mk("Tags (comma-separated)", 200),
		},
	}
}

func (f *taskForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.index = 0
}

func (f *taskForm) focus(i int) tea.Cmd {
	f.index = i
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	user      *domain.User
	snapshot  *domain.Snapshot
	reports   *usecase.LoadReportsOutput
	err       error

	// Components (structs with pointers)
	keys        KeyMap
	styles      Styles
	help        help.Model
	taskList    list.Model
	projectList list.Model
	teamList    list.Model

	// Input state (large structs)
	filterInput textinput.Model
	linkInput   textinput.Model
	form        taskForm

	// Filter and link state
	criteria  domain.Criteria
	parentKey string // ParamProject or ParamTeam, "" when no parent is selected
	parentID  string
	shareLink string
	sortField domain.SortField
	sortOrder domain.SortOrder

	// Numeric state (smaller types last)
	view          View
	mode          Mode
	confirmAction ConfirmAction
	width         int
	height        int
	confirmTaskID string
	statusCursor  int
	syncingLink   bool
	submitting    bool
}

// New creates a new TUI Model with the given container and logged-in user.
func New(c *app.Container, user *domain.User) *Model {
	fi := textinput.New()
	fi.Placeholder = "Filter by name or status keyword..."
	fi.CharLimit = 100

	li := textinput.New()
	li.Placeholder = "Paste a dashboard link or query string..."
	li.CharLimit = 500

	styles := DefaultStyles()

	newList := func(delegate list.ItemDelegate) list.Model {
		l := list.New([]list.Item{}, delegate, 0, 0)
		l.SetShowTitle(false)
		l.SetShowStatusBar(false)
		l.SetShowHelp(false)
		l.SetShowPagination(false)
		l.SetFilteringEnabled(false)
		l.DisableQuitKeybindings()
		return l
	}

	return &Model{
		container:   c,
		user:        user,
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		taskList:    newList(newTaskDelegate(styles)),
		projectList: newList(newProjectDelegate(styles)),
		teamList:    newList(newTeamDelegate(styles)),
		filterInput: fi,
		linkInput:   li,
		form:        newTaskForm(),
		sortField:   domain.SortByCreatedAt,
		sortOrder:   domain.SortDesc,
		view:        ViewTasks,
		mode:        ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadWorkspace()
}

// effectiveCriteria merges the selected parent into the filter criteria for
// server-side fetching. The parent is kept out of m.criteria itself so the
// link codec can round-trip them independently.
func (m *Model) effectiveCriteria() domain.Criteria {
	c := m.criteria
	switch m.parentKey {
	case domain.ParamProject:
		c.Project = m.parentID
	case domain.ParamTeam:
		c.Team = m.parentID
	}
	return c
}

// loadWorkspace returns a command that reloads all collections.
func (m *Model) loadWorkspace() tea.Cmd {
	criteria := m.effectiveCriteria()
	return func() tea.Msg {
		out, err := m.container.LoadWorkspaceUseCase().Execute(context.Background(), usecase.LoadWorkspaceInput{
			TaskCriteria: criteria,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgWorkspaceLoaded{Snapshot: out.Snapshot}
	}
}

// loadReports returns a command that loads the reports screen data.
func (m *Model) loadReports() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoadReportsUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgReportsLoaded{Reports: out}
	}
}

func (m *Model) createTask() tea.Cmd {
	estimate, err := strconv.ParseFloat(strings.TrimSpace(m.form.inputs[formFieldEstimate].Value()), 64)
	if err != nil {
		return func() tea.Msg { return MsgError{Err: domain.ErrInvalidEstimate} }
	}

	var tags []string
	if raw := strings.TrimSpace(m.form.inputs[formFieldTags].Value()); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	in := usecase.CreateTaskInput{
		Name:           strings.TrimSpace(m.form.inputs[formFieldName].Value()),
		ProjectID:      strings.TrimSpace(m.form.inputs[formFieldProject].Value()),
		TeamID:         strings.TrimSpace(m.form.inputs[formFieldTeam].Value()),
		Tags:           tags,
		TimeToComplete: estimate,
		CurrentUserID:  m.user.ID,
	}
	return func() tea.Msg {
		out, err := m.container.CreateTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	}
}

func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id}
	}
}

func (m *Model) setTaskStatus(id string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.UpdateTaskUseCase().Execute(context.Background(), usecase.UpdateTaskInput{
			ID:     id,
			Update: domain.TaskUpdate{Status: &status},
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskStatusUpdated{TaskID: id, Status: status}
	}
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task
	}
	return nil
}

// SelectedProject returns the currently selected project, or nil if none.
func (m *Model) SelectedProject() *domain.Project {
	if pi, ok := m.projectList.SelectedItem().(projectItem); ok {
		return pi.project
	}
	return nil
}

// SelectedTeam returns the currently selected team, or nil if none.
func (m *Model) SelectedTeam() *domain.Team {
	if ti, ok := m.teamList.SelectedItem().(teamItem); ok {
		return ti.team
	}
	return nil
}

// visibleTasks applies the quick filter and sort order to the snapshot's
// tasks. Criteria filtering already happened server-side.
func (m *Model) visibleTasks() []*domain.Task {
	if m.snapshot == nil {
		return nil
	}
	var tasks []*domain.Task
	filter := strings.TrimSpace(m.filterInput.Value())
	for _, t := range m.snapshot.Tasks {
		if domain.MatchTaskQuickFilter(filter, t) {
			tasks = append(tasks, t)
		}
	}
	domain.SortTasks(tasks, m.sortField, m.sortOrder)
	return tasks
}

// updateLists rebuilds all list items from the snapshot.
func (m *Model) updateLists() {
	if m.snapshot == nil {
		return
	}

	tasks := m.visibleTasks()
	taskItems := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		taskItems = append(taskItems, taskItem{task: t, snapshot: m.snapshot})
	}
	m.taskList.SetItems(taskItems)

	filter := strings.TrimSpace(m.filterInput.Value())
	now := m.container.Clock.Now()
	projectItems := make([]list.Item, 0, len(m.snapshot.Projects))
	for _, p := range m.snapshot.Projects {
		if m.view == ViewProjects && !domain.MatchProjectQuickFilter(filter, p, now) {
			continue
		}
		children := m.snapshot.TasksForProject(p.ID, m.criteria)
		projectItems = append(projectItems, projectItem{
			project: p,
			status:  domain.DeriveAggregateStatus(children),
			tasks:   len(children),
		})
	}
	m.projectList.SetItems(projectItems)

	teamItems := make([]list.Item, 0, len(m.snapshot.Teams))
	for _, t := range m.snapshot.Teams {
		children := m.snapshot.TasksForTeam(t.ID, m.criteria)
		teamItems = append(teamItems, teamItem{
			team:   t,
			status: domain.DeriveAggregateStatus(children),
			tasks:  len(children),
		})
	}
	m.teamList.SetItems(teamItems)
}

// updateLayoutSizes propagates the window size to the lists.
func (m *Model) updateLayoutSizes() {
	width := m.width - 4
	height := m.height - 10
	if width < 20 {
		width = 20
	}
	if height < 5 {
		height = 5
	}
	m.taskList.SetSize(width, height)
	m.projectList.SetSize(width, height)
	m.teamList.SetSize(width, height)
}
