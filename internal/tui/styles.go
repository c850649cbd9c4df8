package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/workasana/workasana/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color
	Blocked    lipgloss.Color

	// Priority colors
	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Completed:  lipgloss.Color("#00B894"), // Green
	Blocked:    lipgloss.Color("#D63031"), // Red

	PriorityHigh:   lipgloss.Color("#D63031"), // Red
	PriorityMedium: lipgloss.Color("#FDCB6E"), // Yellow
	PriorityLow:    lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	TabActive  lipgloss.Style
	TabNormal  lipgloss.Style

	// Lists
	ItemID             lipgloss.Style
	ItemTitle          lipgloss.Style
	ItemTitleSelected  lipgloss.Style
	ItemDesc           lipgloss.Style
	ItemDescSelected   lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Status badges
	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style
	StatusBlocked    lipgloss.Style

	// Priority badges
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Aggregate status
	AggregateActive     lipgloss.Style
	AggregateCompleted  lipgloss.Style
	AggregateInProgress lipgloss.Style
	AggregateEmpty      lipgloss.Style

	// Filter bar
	FilterLabel lipgloss.Style
	FilterValue lipgloss.Style
	ShareLink   lipgloss.Style

	// Charts
	ChartTitle lipgloss.Style
	ChartBar   lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		TabNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ItemID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ItemTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		ItemDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		ItemDescSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		StatusTodo: lipgloss.NewStyle().
			Foreground(Colors.Todo),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(Colors.Completed),

		StatusBlocked: lipgloss.NewStyle().
			Foreground(Colors.Blocked),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.PriorityHigh),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.PriorityMedium),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.PriorityLow),

		AggregateActive: lipgloss.NewStyle().
			Foreground(Colors.Todo),

		AggregateCompleted: lipgloss.NewStyle().
			Foreground(Colors.Completed),

		AggregateInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		AggregateEmpty: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FilterLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FilterValue: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ShareLink: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		ChartTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		ChartBar: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		DetailValue: lipgloss.NewStyle(),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusTodo:
		return s.StatusTodo
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	case domain.StatusBlocked:
		return s.StatusBlocked
	default:
		return s.StatusTodo
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityMedium:
		return s.PriorityMedium
	default:
		return s.PriorityLow
	}
}

// AggregateStyle returns the style for a derived status.
func (s Styles) AggregateStyle(a domain.AggregateStatus) lipgloss.Style {
	switch a {
	case domain.AggregateCompleted:
		return s.AggregateCompleted
	case domain.AggregateInProgress:
		return s.AggregateInProgress
	case domain.AggregateActive:
		return s.AggregateActive
	default:
		return s.AggregateEmpty
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusTodo:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusCompleted:
		return "✓"
	case domain.StatusBlocked:
		return "✗"
	default:
		return "?"
	}
}
