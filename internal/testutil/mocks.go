// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"strconv"
	"time"

	"github.com/workasana/workasana/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTokenStore is an in-memory test double for domain.TokenStore.
type MockTokenStore struct {
	Token   string
	LoadErr error
	SaveErr error
}

// Load returns the stored token.
func (m *MockTokenStore) Load() (string, error) {
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	return m.Token, nil
}

// Save stores the token.
func (m *MockTokenStore) Save(token string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Token = token
	return nil
}

// Clear removes the stored token.
func (m *MockTokenStore) Clear() error {
	m.Token = ""
	return nil
}

// MockAPI is a data-backed test double for domain.API. Collections are
// returned as-is; error fields force failures per endpoint group.
type MockAPI struct {
	Users    []*domain.User
	Projects []*domain.Project
	Teams    []*domain.Team
	Tasks    []*domain.Task

	LastWeek   *domain.LastWeekReport
	Pending    *domain.PendingReport
	Closed     *domain.ClosedTasksReport
	AuthResult *domain.Credentials
	MeResult   *domain.User

	UsersErr    error
	ProjectsErr error
	TeamsErr    error
	TasksErr    error
	CreateErr   error
	UpdateErr   error
	DeleteErr   error
	ReportsErr  error
	AuthErr     error
	MeErr       error
	HealthErr   error

	// Recorded calls
	GotCriteria   domain.Criteria
	CreatedTasks  []*domain.Task
	Updates       map[string]domain.TaskUpdate
	DeletedIDs    []string
	AddedMembers  []MemberAdd
	NextIDCounter int
}

// MemberAdd records an AddTeamMember call.
type MemberAdd struct {
	TeamID string
	UserID string
	Role   string
}

// Ensure MockAPI implements the full backend surface.
var _ domain.API = (*MockAPI)(nil)

// Login returns the configured auth result.
func (m *MockAPI) Login(_ context.Context, _, _ string) (*domain.Credentials, error) {
	if m.AuthErr != nil {
		return nil, m.AuthErr
	}
	return m.AuthResult, nil
}

// Signup returns the configured auth result.
func (m *MockAPI) Signup(_ context.Context, _, _, _ string) (*domain.Credentials, error) {
	if m.AuthErr != nil {
		return nil, m.AuthErr
	}
	return m.AuthResult, nil
}

// Me returns the configured user.
func (m *MockAPI) Me(_ context.Context) (*domain.User, error) {
	if m.MeErr != nil {
		return nil, m.MeErr
	}
	return m.MeResult, nil
}

// GetUsers returns the user collection.
func (m *MockAPI) GetUsers(_ context.Context) ([]*domain.User, error) {
	return m.Users, m.UsersErr
}

// GetProjects returns the project collection.
func (m *MockAPI) GetProjects(_ context.Context) ([]*domain.Project, error) {
	return m.Projects, m.ProjectsErr
}

// CreateProject appends a project with a generated ID.
func (m *MockAPI) CreateProject(_ context.Context, name, description string) (*domain.Project, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	p := &domain.Project{ID: m.nextID("p"), Name: name, Description: description}
	m.Projects = append(m.Projects, p)
	return p, nil
}

// GetTeams returns the team collection.
func (m *MockAPI) GetTeams(_ context.Context) ([]*domain.Team, error) {
	return m.Teams, m.TeamsErr
}

// CreateTeam appends a team with a generated ID.
func (m *MockAPI) CreateTeam(_ context.Context, name, description string) (*domain.Team, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	t := &domain.Team{ID: m.nextID("tm"), Name: name, Description: description}
	m.Teams = append(m.Teams, t)
	return t, nil
}

// AddTeamMember records the call.
func (m *MockAPI) AddTeamMember(_ context.Context, teamID, userID, role string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.AddedMembers = append(m.AddedMembers, MemberAdd{TeamID: teamID, UserID: userID, Role: role})
	return nil
}

// GetTasks records the criteria and returns the matching tasks, the way the
// backend would apply query filters server-side.
func (m *MockAPI) GetTasks(_ context.Context, criteria domain.Criteria) ([]*domain.Task, error) {
	if m.TasksErr != nil {
		return nil, m.TasksErr
	}
	m.GotCriteria = criteria
	return criteria.FilterTasks(m.Tasks), nil
}

// CreateTask records and appends the task with a generated ID.
func (m *MockAPI) CreateTask(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	created := *task
	created.ID = m.nextID("t")
	m.Tasks = append(m.Tasks, &created)
	m.CreatedTasks = append(m.CreatedTasks, &created)
	return &created, nil
}

// UpdateTask records the partial update and applies the status field.
func (m *MockAPI) UpdateTask(_ context.Context, id string, update domain.TaskUpdate) (*domain.Task, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	if m.Updates == nil {
		m.Updates = make(map[string]domain.TaskUpdate)
	}
	m.Updates[id] = update
	for _, t := range m.Tasks {
		if t.ID == id {
			if update.Status != nil {
				t.Status = *update.Status
			}
			if update.Name != nil {
				t.Name = *update.Name
			}
			return t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// DeleteTask records the deletion.
func (m *MockAPI) DeleteTask(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	for i, t := range m.Tasks {
		if t.ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			break
		}
	}
	return nil
}

// LastWeekReport returns the configured report.
func (m *MockAPI) LastWeekReport(_ context.Context) (*domain.LastWeekReport, error) {
	if m.ReportsErr != nil {
		return nil, m.ReportsErr
	}
	return m.LastWeek, nil
}

// PendingReport returns the configured report.
func (m *MockAPI) PendingReport(_ context.Context) (*domain.PendingReport, error) {
	if m.ReportsErr != nil {
		return nil, m.ReportsErr
	}
	return m.Pending, nil
}

// ClosedTasksReport returns the configured report.
func (m *MockAPI) ClosedTasksReport(_ context.Context) (*domain.ClosedTasksReport, error) {
	if m.ReportsErr != nil {
		return nil, m.ReportsErr
	}
	return m.Closed, nil
}

// Health reports the configured backend health.
func (m *MockAPI) Health(_ context.Context) error {
	return m.HealthErr
}

func (m *MockAPI) nextID(prefix string) string {
	m.NextIDCounter++
	return prefix + strconv.Itoa(m.NextIDCounter)
}
