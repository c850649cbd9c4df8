package cli

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
	"github.com/workasana/workasana/internal/usecase"
)

// newTasksCommand creates the tasks command group.
func newTasksCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Short:   "List and manage tasks",
		GroupID: groupView,
	}

	cmd.AddCommand(
		newTasksListCommand(c),
		newTasksNewCommand(c),
		newTasksShowCommand(c),
		newTasksSetStatusCommand(c),
		newTasksDeleteCommand(c),
	)

	return cmd
}

func newTasksListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner   string
		Project string
		Team    string
		Status  string
		Tags    string
		Sort    string
		Order   string
		Link    string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks matching the given filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			criteria := domain.Criteria{
				Owner:   opts.Owner,
				Project: opts.Project,
				Team:    opts.Team,
				Status:  opts.Status,
				Tags:    opts.Tags,
			}
			if opts.Link != "" {
				// A shared dashboard link carries the complete filter
				// state; explicit flags are ignored when one is given.
				parsed, err := parseLinkCriteria(opts.Link)
				if err != nil {
					return err
				}
				criteria = parsed
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Criteria: criteria,
				SortBy:   domain.SortField(opts.Sort),
				Order:    domain.SortOrder(opts.Order),
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
				return nil
			}
			printTaskTable(cmd, out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Filter by owner user ID")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Filter by project ID")
	cmd.Flags().StringVar(&opts.Team, "team", "", "Filter by team ID")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "Filter by tags (comma-separated, any match)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort field (createdAt, updatedAt, timeToComplete, name)")
	cmd.Flags().StringVar(&opts.Order, "order", "", "Sort order (asc, desc)")
	cmd.Flags().StringVar(&opts.Link, "link", "", "Dashboard link or query string to apply as filter state")

	return cmd
}

func newTasksNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Project  string
		Team     string
		Owners   []string
		Tags     []string
		Estimate float64
		Status   string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireSession(cmd, c)
			if err != nil {
				return err
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), usecase.CreateTaskInput{
				Name:           opts.Name,
				ProjectID:      opts.Project,
				TeamID:         opts.Team,
				Owners:         opts.Owners,
				Tags:           opts.Tags,
				TimeToComplete: opts.Estimate,
				Status:         domain.Status(opts.Status),
				CurrentUserID:  user.ID,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s)\n", out.Task.Name, out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Task name (required)")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project ID (required)")
	cmd.Flags().StringVar(&opts.Team, "team", "", "Team ID (required)")
	cmd.Flags().StringSliceVar(&opts.Owners, "owner", nil, "Owner user IDs (defaults to you)")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "Tags")
	cmd.Flags().Float64Var(&opts.Estimate, "estimate", 0, "Estimated days to complete (required)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Initial status (defaults to To Do)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("estimate")

	return cmd
}

func newTasksShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			task := out.Task
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s\n\n", task.Name)
			_, _ = fmt.Fprintf(w, "  ID:       %s\n", task.ID)
			_, _ = fmt.Fprintf(w, "  Status:   %s\n", task.Status)
			_, _ = fmt.Fprintf(w, "  Priority: %s\n", task.Priority())
			_, _ = fmt.Fprintf(w, "  Project:  %s\n", out.ProjectName)
			_, _ = fmt.Fprintf(w, "  Team:     %s\n", out.TeamName)
			_, _ = fmt.Fprintf(w, "  Owners:   %s\n", ownerNames(task))
			if len(task.Tags) > 0 {
				_, _ = fmt.Fprintf(w, "  Tags:     %s\n", strings.Join(task.Tags, ", "))
			}
			_, _ = fmt.Fprintf(w, "  Estimate: %s\n", formatEstimate(task.TimeToComplete))
			_, _ = fmt.Fprintf(w, "  Created:  %s\n", humanize.Time(task.CreatedAt))
			_, _ = fmt.Fprintf(w, "  Updated:  %s\n", humanize.Time(task.UpdatedAt))
			return nil
		},
	}
}

func newTasksSetStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <task-id> <status>",
		Short: "Change the status of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			status := domain.Status(args[1])
			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				ID:     args[0],
				Update: domain.TaskUpdate{Status: &status},
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", out.Task.Name, out.Task.Status)
			return nil
		},
	}
}

func newTasksDeleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete task %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			if err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{ID: args[0]}); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Task deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// parseLinkCriteria extracts filter criteria from a shareable dashboard
// link. The value may be a full URL, a bare query string, or a query string
// with a leading question mark.
func parseLinkCriteria(link string) (domain.Criteria, error) {
	query := link
	if u, err := url.Parse(link); err == nil && u.RawQuery != "" {
		query = u.RawQuery
	}
	query = strings.TrimPrefix(query, "?")

	values, err := url.ParseQuery(query)
	if err != nil {
		return domain.Criteria{}, fmt.Errorf("parse link: %w", err)
	}
	return domain.ParseCriteria(values), nil
}

func printTaskTable(cmd *cobra.Command, tasks []*domain.Task) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPRIORITY\tESTIMATE\tUPDATED")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, t.Status, t.Priority(), formatEstimate(t.TimeToComplete), humanize.Time(t.UpdatedAt))
	}
	_ = w.Flush()
}

func ownerNames(t *domain.Task) string {
	if len(t.OwnerDetails) > 0 {
		names := make([]string, len(t.OwnerDetails))
		for i, u := range t.OwnerDetails {
			names[i] = u.Name
		}
		return strings.Join(names, ", ")
	}
	return strings.Join(t.Owners, ", ")
}

func formatEstimate(days float64) string {
	if days == float64(int(days)) {
		return fmt.Sprintf("%dd", int(days))
	}
	return fmt.Sprintf("%.1fd", days)
}

// confirm prompts for a yes/no answer on the command's input stream.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
