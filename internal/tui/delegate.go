package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/workasana/workasana/internal/domain"
)

// taskItem wraps a task for the bubbles list.
type taskItem struct {
	task     *domain.Task
	snapshot *domain.Snapshot
}

func (t taskItem) FilterValue() string {
	return t.task.Name
}

// projectItem wraps a project together with its derived status.
type projectItem struct {
	project *domain.Project
	status  domain.AggregateStatus
	tasks   int
}

func (p projectItem) FilterValue() string {
	return p.project.Name
}

// teamItem wraps a team together with its derived status.
type teamItem struct {
	team   *domain.Team
	status domain.AggregateStatus
	tasks  int
}

func (t teamItem) FilterValue() string {
	return t.team.Name
}

// padLine pads a rendered line with spaces to the list width.
func padLine(line string, width int) string {
	lineWidth := runewidth.StringWidth(line)
	if lineWidth < width {
		line += fmt.Sprintf("%*s", width-lineWidth, "")
	}
	return line
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	if runewidth.StringWidth(s) > max {
		return runewidth.Truncate(s, max-3, "...")
	}
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int  { return 2 }
func (d taskDelegate) Spacing() int { return 1 }

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	statusIcon := StatusIcon(task.Status)
	statusText := fmt.Sprintf("%-11s", task.Status)
	priority := fmt.Sprintf("%-6s", task.Priority())

	listWidth := m.Width()
	name := truncate(task.Name, listWidth-26)

	statusStyle := d.styles.StatusStyle(task.Status)
	priorityStyle := d.styles.PriorityStyle(task.Priority())
	titleStyle := d.styles.ItemTitle
	if selected {
		statusStyle = statusStyle.Bold(true)
		priorityStyle = priorityStyle.Bold(true)
		titleStyle = d.styles.ItemTitleSelected
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) + " " +
		statusStyle.Render(statusIcon+" "+statusText) + " " +
		priorityStyle.Render(priority) + " " +
		titleStyle.Render(name)
	_, _ = fmt.Fprintln(w, padLine(line, listWidth))

	// Second line: project, team and tags resolved against the snapshot.
	parts := []string{}
	if ti.snapshot != nil {
		parts = append(parts, ti.snapshot.ProjectName(task.ProjectID), ti.snapshot.TeamName(task.TeamID))
	}
	if len(task.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(task.Tags, " #"))
	}
	descLine := "                   " + truncate(strings.Join(parts, " · "), listWidth-22)
	descStyle := d.styles.ItemDesc
	if selected {
		descStyle = d.styles.ItemDescSelected
	}
	_, _ = fmt.Fprint(w, descStyle.Render(padLine(descLine, listWidth)))
}

type projectDelegate struct {
	styles Styles
}

func newProjectDelegate(styles Styles) projectDelegate {
	return projectDelegate{styles: styles}
}

func (d projectDelegate) Height() int  { return 2 }
func (d projectDelegate) Spacing() int { return 1 }

func (d projectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(projectItem)
	if !ok {
		return
	}
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	listWidth := m.Width()
	status := fmt.Sprintf("%-11s", pi.status)
	name := truncate(pi.project.Name, listWidth-22)

	statusStyle := d.styles.AggregateStyle(pi.status)
	titleStyle := d.styles.ItemTitle
	if selected {
		statusStyle = statusStyle.Bold(true)
		titleStyle = d.styles.ItemTitleSelected
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) + " " +
		statusStyle.Render(status) + " " +
		titleStyle.Render(name) + " " +
		d.styles.ItemID.Render(fmt.Sprintf("(%d tasks)", pi.tasks))
	_, _ = fmt.Fprintln(w, padLine(line, listWidth))

	descLine := "     " + truncate(pi.project.Description, listWidth-8)
	descStyle := d.styles.ItemDesc
	if selected {
		descStyle = d.styles.ItemDescSelected
	}
	_, _ = fmt.Fprint(w, descStyle.Render(padLine(descLine, listWidth)))
}

type teamDelegate struct {
	styles Styles
}

func newTeamDelegate(styles Styles) teamDelegate {
	return teamDelegate{styles: styles}
}

func (d teamDelegate) Height() int  { return 2 }
func (d teamDelegate) Spacing() int { return 1 }

func (d teamDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d teamDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(teamItem)
	if !ok {
		return
	}
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	listWidth := m.Width()
	status := fmt.Sprintf("%-11s", ti.status)
	name := truncate(ti.team.Name, listWidth-22)

	statusStyle := d.styles.AggregateStyle(ti.status)
	titleStyle := d.styles.ItemTitle
	if selected {
		statusStyle = statusStyle.Bold(true)
		titleStyle = d.styles.ItemTitleSelected
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) + " " +
		statusStyle.Render(status) + " " +
		titleStyle.Render(name) + " " +
		d.styles.ItemID.Render(fmt.Sprintf("(%d members, %d tasks)", len(ti.team.Members), ti.tasks))
	_, _ = fmt.Fprintln(w, padLine(line, listWidth))

	descLine := "     " + truncate(ti.team.Description, listWidth-8)
	descStyle := d.styles.ItemDesc
	if selected {
		descStyle = d.styles.ItemDescSelected
	}
	_, _ = fmt.Fprint(w, descStyle.Render(padLine(descLine, listWidth)))
}
