package domain

import (
	"context"
	"time"
)

// Credentials is a login/signup result: the bearer token plus the
// authenticated user.
type Credentials struct {
	Token string
	User  User
}

// AuthAPI covers the backend's authentication endpoints.
type AuthAPI interface {
	// Login exchanges email/password for a token and user.
	Login(ctx context.Context, email, password string) (*Credentials, error)

	// Signup registers a new user and logs them in.
	Signup(ctx context.Context, name, email, password string) (*Credentials, error)

	// Me returns the user the current token belongs to.
	Me(ctx context.Context) (*User, error)
}

// UserAPI covers the backend's user collection.
type UserAPI interface {
	// GetUsers returns all users.
	GetUsers(ctx context.Context) ([]*User, error)
}

// ProjectAPI covers the backend's project collection.
type ProjectAPI interface {
	// GetProjects returns all projects.
	GetProjects(ctx context.Context) ([]*Project, error)

	// CreateProject creates a project and returns it.
	CreateProject(ctx context.Context, name, description string) (*Project, error)
}

// TeamAPI covers the backend's team collection.
type TeamAPI interface {
	// GetTeams returns all teams.
	GetTeams(ctx context.Context) ([]*Team, error)

	// CreateTeam creates a team and returns it.
	CreateTeam(ctx context.Context, name, description string) (*Team, error)

	// AddTeamMember adds a user to a team with the given role.
	AddTeamMember(ctx context.Context, teamID, userID, role string) error
}

// TaskAPI covers the backend's task collection.
type TaskAPI interface {
	// GetTasks returns tasks matching the criteria. Empty criteria return
	// everything.
	GetTasks(ctx context.Context, criteria Criteria) ([]*Task, error)

	// CreateTask creates a task and returns it.
	CreateTask(ctx context.Context, task *Task) (*Task, error)

	// UpdateTask applies a partial update and returns the updated task.
	UpdateTask(ctx context.Context, id string, update TaskUpdate) (*Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) error
}

// TaskUpdate is a partial task update; nil fields are left unchanged.
type TaskUpdate struct {
	Name           *string   `json:"name,omitempty"`
	ProjectID      *string   `json:"projectId,omitempty"`
	TeamID         *string   `json:"teamId,omitempty"`
	Owners         *[]string `json:"owners,omitempty"`
	Tags           *[]string `json:"tags,omitempty"`
	TimeToComplete *float64  `json:"timeToComplete,omitempty"`
	Status         *Status   `json:"status,omitempty"`
}

// IsEmpty returns true if no field is set.
func (u TaskUpdate) IsEmpty() bool {
	return u == TaskUpdate{}
}

// ReportAPI covers the backend's report endpoints.
type ReportAPI interface {
	// LastWeekReport returns tasks completed in the trailing week.
	LastWeekReport(ctx context.Context) (*LastWeekReport, error)

	// PendingReport returns unfinished tasks and their remaining work.
	PendingReport(ctx context.Context) (*PendingReport, error)

	// ClosedTasksReport returns closed-task counts grouped by team, project
	// and owner.
	ClosedTasksReport(ctx context.Context) (*ClosedTasksReport, error)
}

// API is the full backend surface the client consumes.
type API interface {
	AuthAPI
	UserAPI
	ProjectAPI
	TeamAPI
	TaskAPI
	ReportAPI

	// Health checks backend availability.
	Health(ctx context.Context) error
}

// TokenStore persists the bearer token between runs, the way the browser
// client kept it in local storage.
type TokenStore interface {
	// Load returns the stored token, or "" if none is stored.
	Load() (string, error)

	// Save stores the token.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
