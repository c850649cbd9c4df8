// Package app provides the dependency injection container for the
// application.
package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/infra/api"
	"github.com/workasana/workasana/internal/infra/config"
	"github.com/workasana/workasana/internal/infra/credentials"
	"github.com/workasana/workasana/internal/infra/logging"
	"github.com/workasana/workasana/internal/usecase"
)

// Container provides dependency injection for the application. It also
// carries the session state: the authenticated user is restored once at
// startup and injected into consumers instead of being read from ambient
// globals.
type Container struct {
	// Ports (interfaces bound to implementations)
	API    domain.API
	Tokens domain.TokenStore
	Clock  domain.Clock

	// Pointer fields
	Logger *slog.Logger
	Config *domain.Config

	// Session state; nil until RestoreSession succeeds
	CurrentUser *domain.User
}

// New creates a Container wired against the real backend and filesystem.
func New() (*Container, error) {
	confDir := configDir()

	cfg, err := config.NewLoader(confDir).Load()
	if err != nil {
		return nil, err
	}

	tokens := credentials.NewWithDir(confDir)
	client := api.New(cfg.API.BaseURL, func() string {
		token, _ := tokens.Load()
		return token
	})

	logger := logging.New(confDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		API:    client,
		Tokens: tokens,
		Clock:  domain.RealClock{},
		Logger: logger,
		Config: cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(backend domain.API, tokens domain.TokenStore, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		API:    backend,
		Tokens: tokens,
		Clock:  clock,
		Logger: logger,
		Config: domain.NewDefaultConfig(),
	}
}

// configDir resolves the XDG config directory for workasana.
func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "workasana")
}

// RestoreSession validates the persisted token and records the current
// user. An invalid or missing token leaves the session anonymous.
func (c *Container) RestoreSession(ctx context.Context) error {
	out, err := c.RestoreSessionUseCase().Execute(ctx)
	if err != nil {
		return err
	}
	c.CurrentUser = out.User
	return nil
}

// RequireUser returns the current user or ErrNotAuthenticated.
func (c *Container) RequireUser() (*domain.User, error) {
	if c.CurrentUser == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return c.CurrentUser, nil
}

// UseCase factory methods

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.API, c.Tokens)
}

// SignupUseCase returns a new Signup use case.
func (c *Container) SignupUseCase() *usecase.Signup {
	return usecase.NewSignup(c.API, c.Tokens)
}

// RestoreSessionUseCase returns a new RestoreSession use case.
func (c *Container) RestoreSessionUseCase() *usecase.RestoreSession {
	return usecase.NewRestoreSession(c.API, c.Tokens)
}

// LogoutUseCase returns a new Logout use case.
func (c *Container) LogoutUseCase() *usecase.Logout {
	return usecase.NewLogout(c.Tokens)
}

// LoadWorkspaceUseCase returns a new LoadWorkspace use case.
func (c *Container) LoadWorkspaceUseCase() *usecase.LoadWorkspace {
	return usecase.NewLoadWorkspace(c.API)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.API)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.API)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.API)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.API)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.LoadWorkspaceUseCase())
}

// CreateProjectUseCase returns a new CreateProject use case.
func (c *Container) CreateProjectUseCase() *usecase.CreateProject {
	return usecase.NewCreateProject(c.API)
}

// CreateTeamUseCase returns a new CreateTeam use case.
func (c *Container) CreateTeamUseCase() *usecase.CreateTeam {
	return usecase.NewCreateTeam(c.API)
}

// AddMemberUseCase returns a new AddMember use case.
func (c *Container) AddMemberUseCase() *usecase.AddMember {
	return usecase.NewAddMember(c.API)
}

// LoadReportsUseCase returns a new LoadReports use case.
func (c *Container) LoadReportsUseCase() *usecase.LoadReports {
	return usecase.NewLoadReports(c.API, c.Clock)
}

// ExportSnapshotUseCase returns a new ExportSnapshot use case.
func (c *Container) ExportSnapshotUseCase() *usecase.ExportSnapshot {
	return usecase.NewExportSnapshot(c.LoadWorkspaceUseCase())
}
