package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// CreateTeamInput contains the form fields for creating a team.
type CreateTeamInput struct {
	Name        string
	Description string
}

// CreateTeamOutput contains the created team.
type CreateTeamOutput struct {
	Team *domain.Team
}

// CreateTeam is the use case for creating a team.
type CreateTeam struct {
	api domain.TeamAPI
}

// NewCreateTeam creates a new CreateTeam use case.
func NewCreateTeam(api domain.TeamAPI) *CreateTeam {
	return &CreateTeam{api: api}
}

// Execute validates and submits the team.
func (uc *CreateTeam) Execute(ctx context.Context, in CreateTeamInput) (*CreateTeamOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	team, err := uc.api.CreateTeam(ctx, in.Name, in.Description)
	if err != nil {
		return nil, err
	}
	return &CreateTeamOutput{Team: team}, nil
}
