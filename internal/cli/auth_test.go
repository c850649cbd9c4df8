package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workasana/workasana/internal/domain"
)

func TestLoginCommand(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())
	env.api.AuthResult = &domain.Credentials{
		Token: "fresh-token",
		User:  domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}

	out, err := env.execute("login", "--email", "alice@example.com", "--password", "secret")

	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Alice!")
	assert.Equal(t, "fresh-token", env.tokens.Token)
}

func TestLoginCommand_PromptsForPassword(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())
	env.api.AuthResult = &domain.Credentials{
		Token: "fresh-token",
		User:  domain.User{ID: "u1", Name: "Alice"},
	}

	root := NewRootCommand(env.container, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(bytes.NewBufferString("secret\n"))
	root.SetArgs([]string{"login", "--email", "alice@example.com"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Password:")
	assert.Equal(t, "fresh-token", env.tokens.Token)
}

func TestLoginCommand_BadCredentials(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())
	env.api.AuthErr = assert.AnError

	_, err := env.execute("login", "--email", "alice@example.com", "--password", "wrong")

	require.Error(t, err)
	assert.Empty(t, env.tokens.Token)
}

func TestSignupCommand(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())
	env.api.AuthResult = &domain.Credentials{
		Token: "new-token",
		User:  domain.User{ID: "u2", Name: "Bob", Email: "bob@example.com"},
	}

	out, err := env.execute("signup", "--name", "Bob", "--email", "bob@example.com", "--password", "secret")

	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Workasana, Bob!")
	assert.Equal(t, "new-token", env.tokens.Token)
}

func TestLogoutCommand(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()

	out, err := env.execute("logout")

	require.NoError(t, err)
	assert.Contains(t, out, "logged out")
	assert.Empty(t, env.tokens.Token)
}

func TestWhoamiCommand(t *testing.T) {
	env := newTestEnv(t, workspaceAPI()).loggedIn()

	out, err := env.execute("whoami")

	require.NoError(t, err)
	assert.Contains(t, out, "Alice <alice@example.com>")
}

func TestWhoamiCommand_NotLoggedIn(t *testing.T) {
	env := newTestEnv(t, workspaceAPI())

	_, err := env.execute("whoami")

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
