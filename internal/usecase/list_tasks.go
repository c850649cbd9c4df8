package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Criteria domain.Criteria
	SortBy   domain.SortField // Defaults to createdAt
	Order    domain.SortOrder // Defaults to desc, matching the dashboard
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for listing tasks. Filtering happens
// server-side via query parameters; ordering is applied client-side.
type ListTasks struct {
	api domain.TaskAPI
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(api domain.TaskAPI) *ListTasks {
	return &ListTasks{api: api}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.SortBy == "" {
		in.SortBy = domain.SortByCreatedAt
	}
	if !domain.ValidSortField(in.SortBy) {
		return nil, domain.ErrInvalidSortField
	}
	if in.Order == "" {
		in.Order = domain.SortDesc
	}

	tasks, err := uc.api.GetTasks(ctx, in.Criteria)
	if err != nil {
		return nil, err
	}

	domain.SortTasks(tasks, in.SortBy, in.Order)
	return &ListTasksOutput{Tasks: tasks}, nil
}
