package usecase

import (
	"context"

	"github.com/workasana/workasana/internal/domain"
)

// DefaultMemberRole is used when no role is given. Roles are free-form
// labels, not an enum.
const DefaultMemberRole = "Member"

// AddMemberInput contains the form fields for adding a team member.
type AddMemberInput struct {
	TeamID string
	UserID string
	Role   string
}

// AddMember is the use case for adding a user to a team.
type AddMember struct {
	api domain.TeamAPI
}

// NewAddMember creates a new AddMember use case.
func NewAddMember(api domain.TeamAPI) *AddMember {
	return &AddMember{api: api}
}

// Execute validates and submits the membership.
func (uc *AddMember) Execute(ctx context.Context, in AddMemberInput) error {
	if in.TeamID == "" {
		return domain.ErrTeamNotFound
	}
	if in.UserID == "" {
		return domain.ErrMissingMemberUser
	}
	if in.Role == "" {
		in.Role = DefaultMemberRole
	}
	return uc.api.AddTeamMember(ctx, in.TeamID, in.UserID, in.Role)
}
