// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/workasana/workasana/internal/domain"
)

// LoginInput contains the credentials for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the result of logging in.
type LoginOutput struct {
	User domain.User
}

// Login is the use case for logging in and persisting the session token.
type Login struct {
	api    domain.AuthAPI
	tokens domain.TokenStore
}

// NewLogin creates a new Login use case.
func NewLogin(api domain.AuthAPI, tokens domain.TokenStore) *Login {
	return &Login{api: api, tokens: tokens}
}

// Execute logs in and stores the bearer token for subsequent runs.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if in.Email == "" {
		return nil, domain.ErrEmptyEmail
	}
	if in.Password == "" {
		return nil, domain.ErrEmptyPassword
	}

	creds, err := uc.api.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.tokens.Save(creds.Token); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}

	return &LoginOutput{User: creds.User}, nil
}
