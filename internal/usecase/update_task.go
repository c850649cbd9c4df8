package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// UpdateTaskInput contains the partial update for a task.
type UpdateTaskInput struct {
	ID     string
	Update domain.TaskUpdate
}

// UpdateTaskOutput contains the updated task.
type UpdateTaskOutput struct {
	Task *domain.Task
}

// UpdateTask is the use case for partially updating a task, including bare
// status changes. The caller reloads the workspace afterwards.
type UpdateTask struct {
	api domain.TaskAPI
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(api domain.TaskAPI) *UpdateTask {
	return &UpdateTask{api: api}
}

// Execute validates and submits the update.
func (uc *UpdateTask) Execute(ctx context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if in.ID == "" {
		return nil, domain.ErrTaskNotFound
	}
	if in.Update.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Update.Status != nil && !in.Update.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if in.Update.TimeToComplete != nil && *in.Update.TimeToComplete <= 0 {
		return nil, domain.ErrInvalidEstimate
	}

	task, err := uc.api.UpdateTask(ctx, in.ID, in.Update)
	if err != nil {
		return nil, err
	}
	return &UpdateTaskOutput{Task: task}, nil
}
