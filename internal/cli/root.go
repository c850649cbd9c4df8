// Package cli provides the command-line interface for workasana.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/tui"
)

// Command group IDs.
const (
	groupAuth = "auth"
	groupView = "view"
)

// launchDashboardFunc is a function variable for launching the TUI,
// allowing it to be mocked in tests.
var launchDashboardFunc = launchDashboard

// NewRootCommand creates the root command for workasana.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "workasana",
		Short: "Task, project and team management from the terminal",
		Long: `workasana is a terminal client for the Workasana backend.
It manages projects, tasks and teams, filters and sorts them the way the
web dashboard does, and renders the same reports.

Run without arguments to open the interactive dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireSession(cmd, c)
			if err != nil {
				return err
			}
			return launchDashboardFunc(c, user)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupAuth, Title: "Session Commands:"},
		&cobra.Group{ID: groupView, Title: "Workspace Commands:"},
	)

	root.AddCommand(
		newLoginCommand(c),
		newSignupCommand(c),
		newLogoutCommand(c),
		newWhoamiCommand(c),
		newTasksCommand(c),
		newProjectsCommand(c),
		newTeamsCommand(c),
		newReportsCommand(c),
		newExportCommand(c),
		newHealthCommand(c),
	)

	return root
}

// newHealthCommand creates the health command. It pings the backend and
// needs no session.
func newHealthCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "health",
		Short:   "Check that the backend is reachable",
		GroupID: groupView,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.API.Health(cmd.Context()); err != nil {
				return fmt.Errorf("backend unreachable: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Backend is up")
			return nil
		},
	}
}

// requireSession restores the persisted session and fails with a login hint
// when there is none. This is the protected-route gate: every workspace
// command goes through it.
func requireSession(cmd *cobra.Command, c *app.Container) (*domain.User, error) {
	if c.CurrentUser != nil {
		return c.CurrentUser, nil
	}
	if err := c.RestoreSession(cmd.Context()); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return c.RequireUser()
}

// launchDashboard starts the interactive TUI.
func launchDashboard(c *app.Container, user *domain.User) error {
	model := tui.New(c, user)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
