package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// CreateTaskInput contains the form fields for creating a task.
type CreateTaskInput struct {
	Name           string
	ProjectID      string
	TeamID         string
	Owners         []string
	Tags           []string
	TimeToComplete float64
	Status         domain.Status // Defaults to To Do
	CurrentUserID  string        // Fallback owner when none are picked
}

// CreateTaskOutput contains the created task.
type CreateTaskOutput struct {
	Task *domain.Task
}

// CreateTask is the use case for creating a task. The caller is expected to
// follow up with a full workspace reload; the created task is returned for
// display only and is never inserted into a snapshot locally.
type CreateTask struct {
	api domain.TaskAPI
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(api domain.TaskAPI) *CreateTask {
	return &CreateTask{api: api}
}

// Execute validates the form fields and submits the task.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if in.ProjectID == "" {
		return nil, domain.ErrMissingProject
	}
	if in.TeamID == "" {
		return nil, domain.ErrMissingTeam
	}
	if in.TimeToComplete <= 0 {
		return nil, domain.ErrInvalidEstimate
	}
	if in.Status == "" {
		in.Status = domain.StatusTodo
	}
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	owners := in.Owners
	if len(owners) == 0 {
		owners = []string{in.CurrentUserID}
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	task := &domain.Task{
		Name:           in.Name,
		ProjectID:      in.ProjectID,
		TeamID:         in.TeamID,
		Owners:         owners,
		Tags:           tags,
		TimeToComplete: in.TimeToComplete,
		Status:         in.Status,
	}

	created, err := uc.api.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	return &CreateTaskOutput{Task: created}, nil
}
