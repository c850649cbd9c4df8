package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// DeleteTaskInput identifies the task to delete.
type DeleteTaskInput struct {
	ID string
}

// DeleteTask is the use case for deleting a task. Confirmation is the
// caller's responsibility; this use case just issues the request.
type DeleteTask struct {
	api domain.TaskAPI
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(api domain.TaskAPI) *DeleteTask {
	return &DeleteTask{api: api}
}

// Execute deletes the task.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) error {
	if in.ID == "" {
		return domain.ErrTaskNotFound
	}
	return uc.api.DeleteTask(ctx, in.ID)
}
