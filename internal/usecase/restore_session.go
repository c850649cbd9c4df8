package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workasana/workasana/internal/domain"
)

// RestoreSessionOutput contains the restored session state. User is nil
// when no valid session exists.
type RestoreSessionOutput struct {
	User        *domain.User
	TokenExpiry time.Time // Zero when unknown
}

// RestoreSession is the use case for validating a persisted token at
// startup. A missing or rejected token yields an anonymous session and
// clears the store; it is never an error.
type RestoreSession struct {
	api    domain.AuthAPI
	tokens domain.TokenStore
}

// NewRestoreSession creates a new RestoreSession use case.
func NewRestoreSession(api domain.AuthAPI, tokens domain.TokenStore) *RestoreSession {
	return &RestoreSession{api: api, tokens: tokens}
}

// Execute validates the stored token against the backend.
func (uc *RestoreSession) Execute(ctx context.Context) (*RestoreSessionOutput, error) {
	token, err := uc.tokens.Load()
	if err != nil || token == "" {
		return &RestoreSessionOutput{}, nil
	}

	user, err := uc.api.Me(ctx)
	if err != nil {
		// The backend rejected the token; drop it so the next run starts
		// clean.
		_ = uc.tokens.Clear()
		return &RestoreSessionOutput{}, nil
	}

	expiry, _ := TokenExpiry(token)
	return &RestoreSessionOutput{User: user, TokenExpiry: expiry}, nil
}

// TokenExpiry reads the expiry claim from a JWT without verifying the
// signature. Verification is the backend's job; the client only uses the
// claim for display.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, err
	}
	return exp.Time, nil
}
