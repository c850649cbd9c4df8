package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// ShowTaskInput identifies the task to show.
type ShowTaskInput struct {
	ID string
}

// ShowTaskOutput contains the task with its references resolved for
// display.
type ShowTaskOutput struct {
	Task        *domain.Task
	ProjectName string
	TeamName    string
}

// ShowTask is the use case for the task detail view. The task is resolved
// against a freshly loaded snapshot; an ID the snapshot does not contain is
// the dedicated not-found state.
type ShowTask struct {
	workspace *LoadWorkspace
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(workspace *LoadWorkspace) *ShowTask {
	return &ShowTask{workspace: workspace}
}

// Execute loads the workspace and resolves the task.
func (uc *ShowTask) Execute(ctx context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	out, err := uc.workspace.Execute(ctx, LoadWorkspaceInput{})
	if err != nil {
		return nil, err
	}

	snapshot := out.Snapshot
	task := snapshot.TaskByID(in.ID)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	return &ShowTaskOutput{
		Task:        task,
		ProjectName: snapshot.ProjectName(task.ProjectID),
		TeamName:    snapshot.TeamName(task.TeamID),
	}, nil
}
