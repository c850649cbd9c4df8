package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/domain"
)

const reportBarWidth = 40

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true)
	reportBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
)

// newReportsCommand creates the reports command.
func newReportsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "reports",
		Short:   "Show workload and completion reports",
		GroupID: groupView,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			out, err := c.LoadReportsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printLastWeekChart(w, out.LastWeek)
			printPendingChart(w, out.Pending)
			printClosedReport(w, out.Closed)
			return nil
		},
	}
}

func printLastWeekChart(w io.Writer, buckets []domain.DayCount) {
	_, _ = fmt.Fprintln(w, reportTitleStyle.Render("Completed in the last week"))
	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	for _, b := range buckets {
		_, _ = fmt.Fprintf(w, "  %s %s %d\n", b.Day, renderBar(float64(b.Count), float64(max)), b.Count)
	}
	_, _ = fmt.Fprintln(w)
}

func printPendingChart(w io.Writer, work []domain.StatusWork) {
	_, _ = fmt.Fprintln(w, reportTitleStyle.Render("Pending work by status"))
	var max float64
	for _, s := range work {
		if s.Days > max {
			max = s.Days
		}
	}
	for _, s := range work {
		_, _ = fmt.Fprintf(w, "  %-12s %s %.1fd (%d tasks)\n", s.Status, renderBar(s.Days, max), s.Days, s.Count)
	}
	_, _ = fmt.Fprintln(w)
}

func printClosedReport(w io.Writer, closed *domain.ClosedTasksReport) {
	_, _ = fmt.Fprintln(w, reportTitleStyle.Render("Closed tasks"))
	printCountGroup(w, "By team", closed.ByTeam)
	printCountGroup(w, "By project", closed.ByProject)
	printCountGroup(w, "By owner", closed.ByOwner)
}

// printCountGroup renders one grouping as bars, highest count first with
// names breaking ties.
func printCountGroup(w io.Writer, title string, counts map[string]int) {
	_, _ = fmt.Fprintf(w, "  %s\n", title)
	if len(counts) == 0 {
		_, _ = fmt.Fprintln(w, "    (none)")
		return
	}

	names := make([]string, 0, len(counts))
	max := 0
	for name, n := range counts {
		names = append(names, name)
		if n > max {
			max = n
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		_, _ = fmt.Fprintf(w, "    %-20s %s %d\n", name, renderBar(float64(counts[name]), float64(max)), counts[name])
	}
}

func renderBar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	width := int(value / max * reportBarWidth)
	if width < 1 {
		width = 1
	}
	return reportBarStyle.Render(strings.Repeat("█", width))
}
