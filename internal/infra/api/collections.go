package api

import (
	"context"
	"net/http"

	"github.com/workasana/workasana/internal/domain"
)

// GetUsers returns all users.
func (c *Client) GetUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetProjects returns all projects.
func (c *Client) GetProjects(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProject creates a project and returns it.
func (c *Client) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	var project domain.Project
	if err := c.do(ctx, http.MethodPost, "/projects", createProjectRequest{Name: name, Description: description}, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetTeams returns all teams.
func (c *Client) GetTeams(ctx context.Context) ([]*domain.Team, error) {
	var teams []*domain.Team
	if err := c.do(ctx, http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

type createTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateTeam creates a team and returns it.
func (c *Client) CreateTeam(ctx context.Context, name, description string) (*domain.Team, error) {
	var team domain.Team
	if err := c.do(ctx, http.MethodPost, "/teams", createTeamRequest{Name: name, Description: description}, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

type addMemberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// AddTeamMember adds a user to a team with the given role.
func (c *Client) AddTeamMember(ctx context.Context, teamID, userID, role string) error {
	return c.do(ctx, http.MethodPost, "/teams/"+teamID+"/members", addMemberRequest{UserID: userID, Role: role}, nil)
}

// GetTasks returns tasks matching the criteria, passed to the backend as
// query parameters. Empty criteria return everything.
func (c *Client) GetTasks(ctx context.Context, criteria domain.Criteria) ([]*domain.Task, error) {
	path := "/tasks"
	if query := criteria.Values().Encode(); query != "" {
		path += "?" + query
	}
	var tasks []*domain.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

type createTaskRequest struct {
	Name           string        `json:"name"`
	ProjectID      string        `json:"projectId"`
	TeamID         string        `json:"teamId"`
	Owners         []string      `json:"owners"`
	Tags           []string      `json:"tags"`
	TimeToComplete float64       `json:"timeToComplete"`
	Status         domain.Status `json:"status"`
}

// CreateTask creates a task and returns it.
func (c *Client) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	req := createTaskRequest{
		Name:           task.Name,
		ProjectID:      task.ProjectID,
		TeamID:         task.TeamID,
		Owners:         task.Owners,
		Tags:           task.Tags,
		TimeToComplete: task.TimeToComplete,
		Status:         task.Status,
	}
	var created domain.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask applies a partial update and returns the updated task.
func (c *Client) UpdateTask(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error) {
	var updated domain.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}
