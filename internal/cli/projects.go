package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/usecase"
)

// newProjectsCommand creates the projects command group.
func newProjectsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Short:   "List and manage projects",
		GroupID: groupView,
	}

	cmd.AddCommand(
		newProjectsListCommand(c),
		newProjectsNewCommand(c),
	)

	return cmd
}

func newProjectsListCommand(c *app.Container) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with their derived status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			out, err := c.LoadWorkspaceUseCase().Execute(cmd.Context(), usecase.LoadWorkspaceInput{})
			if err != nil {
				return err
			}

			snapshot := out.Snapshot
			now := c.Clock.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTASKS\tCREATED")
			shown := 0
			for _, p := range snapshot.Projects {
				if !domain.MatchProjectQuickFilter(filter, p, now) {
					continue
				}
				shown++
				tasks := snapshot.TasksForProject(p.ID, domain.Criteria{})
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					p.ID, p.Name, domain.ProjectStatus(p.ID, snapshot.Tasks), len(tasks), humanize.Time(p.CreatedAt))
			}
			_ = w.Flush()
			if shown == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No projects found")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Quick filter: all, recent, or a name substring")

	return cmd
}

func newProjectsNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			out, err := c.CreateProjectUseCase().Execute(cmd.Context(), usecase.CreateProjectInput{
				Name:        opts.Name,
				Description: opts.Description,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", out.Project.Name, out.Project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Project name (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Project description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
