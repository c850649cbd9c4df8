package usecase

import (
	"context"
	"fmt"

	"github.com/workasana/workasana/internal/domain"
)

// SignupInput contains the details for registering a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SignupOutput contains the result of signing up.
type SignupOutput struct {
	User domain.User
}

// Signup is the use case for registering and logging in a new user.
type Signup struct {
	api    domain.AuthAPI
	tokens domain.TokenStore
}

// NewSignup creates a new Signup use case.
func NewSignup(api domain.AuthAPI, tokens domain.TokenStore) *Signup {
	return &Signup{api: api, tokens: tokens}
}

// Execute registers the user and stores the bearer token.
func (uc *Signup) Execute(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if in.Email == "" {
		return nil, domain.ErrEmptyEmail
	}
	if in.Password == "" {
		return nil, domain.ErrEmptyPassword
	}

	creds, err := uc.api.Signup(ctx, in.Name, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.tokens.Save(creds.Token); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}

	return &SignupOutput{User: creds.User}, nil
}
