package api

import (
	"context"
	"net/http"

	"github.com/workasana/workasana/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type meResponse struct {
	User domain.User `json:"user"`
}

// Login exchanges email/password for a token and user.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &domain.Credentials{Token: resp.Token, User: resp.User}, nil
}

// Signup registers a new user and logs them in.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*domain.Credentials, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", signupRequest{Name: name, Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &domain.Credentials{Token: resp.Token, User: resp.User}, nil
}

// Me returns the user the current token belongs to.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var resp meResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
