package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// CreateProjectInput contains the form fields for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// CreateProjectOutput contains the created project.
type CreateProjectOutput struct {
	Project *domain.Project
}

// CreateProject is the use case for creating a project.
type CreateProject struct {
	api domain.ProjectAPI
}

// NewCreateProject creates a new CreateProject use case.
func NewCreateProject(api domain.ProjectAPI) *CreateProject {
	return &CreateProject{api: api}
}

// Execute validates and submits the project.
func (uc *CreateProject) Execute(ctx context.Context, in CreateProjectInput) (*CreateProjectOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	project, err := uc.api.CreateProject(ctx, in.Name, in.Description)
	if err != nil {
		return nil, err
	}
	return &CreateProjectOutput{Project: project}, nil
}
