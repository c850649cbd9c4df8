package domain

import "errors"

// Domain errors.
var (
	ErrNotAuthenticated  = errors.New("not logged in (run 'workasana login' first)")
	ErrTaskNotFound      = errors.New("task not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrEmptyEmail        = errors.New("email cannot be empty")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrMissingProject    = errors.New("task requires a project")
	ErrMissingTeam       = errors.New("task requires a team")
	ErrInvalidEstimate   = errors.New("time to complete must be greater than zero")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrMissingMemberUser = errors.New("member requires a user")
)
