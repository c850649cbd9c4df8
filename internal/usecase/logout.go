package usecase

import (
	"context"
	"fmt"

	"github.com/workasana/workasana/internal/domain"
)

// Logout is the use case for ending the session.
type Logout struct {
	tokens domain.TokenStore
}

// NewLogout creates a new Logout use case.
func NewLogout(tokens domain.TokenStore) *Logout {
	return &Logout{tokens: tokens}
}

// Execute clears the persisted token, returning the client to anonymous.
func (uc *Logout) Execute(_ context.Context) error {
	if err := uc.tokens.Clear(); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}
