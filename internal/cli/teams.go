package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/usecase"
)

// newTeamsCommand creates the teams command group.
func newTeamsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Short:   "List and manage teams",
		GroupID: groupView,
	}

	cmd.AddCommand(
		newTeamsListCommand(c),
		newTeamsNewCommand(c),
		newTeamsAddMemberCommand(c),
	)

	return cmd
}

func newTeamsListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams with their derived status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			out, err := c.LoadWorkspaceUseCase().Execute(cmd.Context(), usecase.LoadWorkspaceInput{})
			if err != nil {
				return err
			}

			snapshot := out.Snapshot
			if len(snapshot.Teams) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No teams found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATUS\tMEMBERS\tTASKS")
			for _, team := range snapshot.Teams {
				tasks := snapshot.TasksForTeam(team.ID, domain.Criteria{})
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
					team.ID, team.Name, domain.TeamStatus(team.ID, snapshot.Tasks), len(team.Members), len(tasks))
			}
			_ = w.Flush()
			return nil
		},
	}
}

func newTeamsNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			out, err := c.CreateTeamUseCase().Execute(cmd.Context(), usecase.CreateTeamInput{
				Name:        opts.Name,
				Description: opts.Description,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created team %s (%s)\n", out.Team.Name, out.Team.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Team name (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Team description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTeamsAddMemberCommand(c *app.Container) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add-member <team-id> <user-id>",
		Short: "Add a user to a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			err := c.AddMemberUseCase().Execute(cmd.Context(), usecase.AddMemberInput{
				TeamID: args[0],
				UserID: args[1],
				Role:   role,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Member added")
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Membership role (defaults to Member)")

	return cmd
}
