package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/workasana/workasana/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeNormal, ModeFilter, ModeConfirm, ModeNewTask, ModeStatus, ModeLink:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the active screen with any dialog below it.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewFilterBar())

	switch m.view {
	case ViewTasks:
		if len(m.taskList.Items()) == 0 {
			b.WriteString(m.viewEmptyState("No tasks found"))
		} else {
			b.WriteString(m.taskList.View())
		}
	case ViewProjects:
		if len(m.projectList.Items()) == 0 {
			b.WriteString(m.viewEmptyState("No projects found"))
		} else {
			b.WriteString(m.projectList.View())
		}
	case ViewTeams:
		if len(m.teamList.Items()) == 0 {
			b.WriteString(m.viewEmptyState("No teams found"))
		} else {
			b.WriteString(m.teamList.View())
		}
	case ViewReports:
		b.WriteString(m.viewReports())
	}

	switch m.mode {
	case ModeNormal, ModeFilter, ModeHelp, ModeDetail:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeNewTask:
		b.WriteString("\n")
		b.WriteString(m.viewTaskForm())
	case ModeStatus:
		b.WriteString("\n")
		b.WriteString(m.viewStatusPicker())
	case ModeLink:
		b.WriteString("\n")
		b.WriteString(m.viewLinkInput())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the view tabs with the logged-in user right-aligned.
func (m *Model) viewHeader() string {
	views := []View{ViewTasks, ViewProjects, ViewTeams, ViewReports}
	tabs := make([]string, 0, len(views))
	for _, v := range views {
		style := m.styles.TabNormal
		if v == m.view {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(v.String()))
	}
	left := strings.Join(tabs, m.styles.TabNormal.Render(" | "))

	right := lipgloss.NewStyle().Foreground(Colors.Muted).Render(m.user.Name)

	headerWidth := m.width - 6
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(left + strings.Repeat(" ", spacing) + right)
}

// viewFilterBar shows the active criteria, parent scope and share link.
func (m *Model) viewFilterBar() string {
	var b strings.Builder

	if m.mode == ModeFilter {
		b.WriteString(m.styles.InputPrompt.Render("Filter: "))
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	} else if m.filterInput.Value() != "" {
		b.WriteString(m.styles.Footer.Render("Filtered: "+m.filterInput.Value()) + "\n\n")
	}

	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, m.styles.FilterLabel.Render(label+"=")+m.styles.FilterValue.Render(value))
		}
	}
	if m.snapshot != nil {
		switch m.parentKey {
		case domain.ParamProject:
			add("project", m.snapshot.ProjectName(m.parentID))
		case domain.ParamTeam:
			add("team", m.snapshot.TeamName(m.parentID))
		}
	}
	add("owner", m.criteria.Owner)
	add("status", m.criteria.Status)
	add("tags", m.criteria.Tags)

	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, "  "))
		b.WriteString("\n")
	}
	if m.shareLink != "" {
		b.WriteString(m.styles.ShareLink.Render("link: ?"+m.shareLink) + "\n")
	}
	if len(parts) > 0 || m.shareLink != "" {
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) viewEmptyState(msg string) string {
	return "\n  " + m.styles.FilterLabel.Render(msg) + "\n"
}

// viewReports renders the three report charts.
func (m *Model) viewReports() string {
	if m.reports == nil {
		return "\n  " + m.styles.FilterLabel.Render("Loading reports...") + "\n"
	}

	var b strings.Builder

	b.WriteString(m.styles.ChartTitle.Render("Completed in the last week") + "\n")
	maxCount := 0
	for _, d := range m.reports.LastWeek {
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}
	for _, d := range m.reports.LastWeek {
		b.WriteString(fmt.Sprintf("  %s %s %d\n", d.Day, m.chartBar(float64(d.Count), float64(maxCount)), d.Count))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.ChartTitle.Render("Pending work by status") + "\n")
	var maxDays float64
	for _, s := range m.reports.Pending {
		if s.Days > maxDays {
			maxDays = s.Days
		}
	}
	for _, s := range m.reports.Pending {
		b.WriteString(fmt.Sprintf("  %s %s %.1fd (%d tasks)\n",
			m.styles.StatusStyle(s.Status).Render(fmt.Sprintf("%-11s", s.Status)),
			m.chartBar(s.Days, maxDays), s.Days, s.Count))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.ChartTitle.Render("Closed tasks") + "\n")
	b.WriteString(m.viewClosedGroup("By team", m.reports.Closed.ByTeam))
	b.WriteString(m.viewClosedGroup("By project", m.reports.Closed.ByProject))
	b.WriteString(m.viewClosedGroup("By owner", m.reports.Closed.ByOwner))

	return b.String()
}

func (m *Model) viewClosedGroup(title string, counts map[string]int) string {
	var b strings.Builder
	b.WriteString("  " + m.styles.FilterLabel.Render(title) + "\n")
	if len(counts) == 0 {
		b.WriteString("    (none)\n")
		return b.String()
	}
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	for _, name := range sortedCountKeys(counts) {
		b.WriteString(fmt.Sprintf("    %-20s %s %d\n", name, m.chartBar(float64(counts[name]), float64(maxCount)), counts[name]))
	}
	return b.String()
}

func (m *Model) chartBar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	width := m.width / 3
	if width < 10 {
		width = 10
	}
	bar := int(value / max * float64(width))
	if bar < 1 {
		bar = 1
	}
	return m.styles.ChartBar.Render(strings.Repeat("█", bar))
}

func (m *Model) viewConfirmDialog() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Confirm "+m.confirmAction.String()) + "\n\n")
	b.WriteString(m.styles.DialogPrompt.Render(fmt.Sprintf("Delete task %s? This cannot be undone.", m.confirmTaskID)) + "\n\n")
	b.WriteString(m.styles.HelpKey.Render("y") + m.styles.HelpDesc.Render(" confirm  "))
	b.WriteString(m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" cancel"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewTaskForm() string {
	labels := []string{"Name", "Project", "Team", "Estimate", "Tags"}
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("New task") + "\n\n")
	for i, input := range m.form.inputs {
		prompt := m.styles.FilterLabel.Render(fmt.Sprintf("%-9s", labels[i]))
		if i == m.form.index {
			prompt = m.styles.InputPrompt.Render(fmt.Sprintf("%-9s", labels[i]))
		}
		b.WriteString(prompt + input.View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" next/submit  "))
	b.WriteString(m.styles.HelpKey.Render("tab") + m.styles.HelpDesc.Render(" next field  "))
	b.WriteString(m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" cancel"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewStatusPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Change status") + "\n\n")
	for i, status := range domain.AllStatuses() {
		cursor := "  "
		style := m.styles.StatusStyle(status)
		if i == m.statusCursor {
			cursor = m.styles.SelectionIndicator.Render("> ")
			style = style.Bold(true)
		}
		b.WriteString(cursor + style.Render(StatusIcon(status)+" "+string(status)) + "\n")
	}
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewLinkInput() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Open link") + "\n\n")
	b.WriteString(m.linkInput.View() + "\n\n")
	b.WriteString(m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" apply  "))
	b.WriteString(m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" cancel"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Help") + "\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(m.styles.HelpKey.Render(fmt.Sprintf("%-10s", binding.Help().Key)))
			b.WriteString(m.styles.HelpDesc.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.HelpDesc.Render("Press esc to close"))
	return m.styles.Help.Render(b.String())
}

// viewDetail renders the full detail of the selected task.
func (m *Model) viewDetail() string {
	task := m.SelectedTask()
	if task == nil {
		return m.styles.FilterLabel.Render("No task selected")
	}

	row := func(label, value string) string {
		return m.styles.DetailLabel.Render(label) + m.styles.DetailValue.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render(task.Name) + "\n")
	b.WriteString(m.styles.DetailLabel.Render("Status") +
		m.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status)+" "+string(task.Status)) + "\n")
	b.WriteString(m.styles.DetailLabel.Render("Priority") +
		m.styles.PriorityStyle(task.Priority()).Render(string(task.Priority())) + "\n")
	if m.snapshot != nil {
		b.WriteString(row("Project", m.snapshot.ProjectName(task.ProjectID)))
		b.WriteString(row("Team", m.snapshot.TeamName(task.TeamID)))
	}
	b.WriteString(row("Owners", detailOwners(task)))
	if len(task.Tags) > 0 {
		b.WriteString(row("Tags", strings.Join(task.Tags, ", ")))
	}
	b.WriteString(row("Estimate", fmt.Sprintf("%.1f days", task.TimeToComplete)))
	b.WriteString(row("Created", humanize.Time(task.CreatedAt)))
	b.WriteString(row("Updated", humanize.Time(task.UpdatedAt)))
	b.WriteString("\n" + m.styles.HelpDesc.Render("Press esc to go back"))
	return b.String()
}

func detailOwners(task *domain.Task) string {
	if len(task.OwnerDetails) > 0 {
		names := make([]string, len(task.OwnerDetails))
		for i, u := range task.OwnerDetails {
			names[i] = u.Name
		}
		return strings.Join(names, ", ")
	}
	return strings.Join(task.Owners, ", ")
}

func (m *Model) viewFooter() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		parts = append(parts, m.styles.FooterKey.Render(binding.Help().Key)+" "+m.styles.Footer.Render(binding.Help().Desc))
	}
	return strings.Join(parts, m.styles.Footer.Render(" · "))
}

func sortedCountKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	// Highest count first, names break ties.
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
