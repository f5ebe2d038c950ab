package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/git-board/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Review     lipgloss.Color
	Done       lipgloss.Color
	Blocked    lipgloss.Color

	// Priority colors
	Low      lipgloss.Color
	Medium   lipgloss.Color
	High     lipgloss.Color
	Critical lipgloss.Color

	// Group header
	GroupLine lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Review:     lipgloss.Color("#A29BFE"), // Lavender
	Done:       lipgloss.Color("#00B894"), // Green
	Blocked:    lipgloss.Color("#D63031"), // Red

	Low:      lipgloss.Color("#636E72"),
	Medium:   lipgloss.Color("#74B9FF"),
	High:     lipgloss.Color("#E17055"),
	Critical: lipgloss.Color("#D63031"),

	GroupLine: lipgloss.Color("#636E72"),
}

// Styles holds all the styles for the TUI.
type Styles struct {
	// App container
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Kanban columns
	Column       lipgloss.Style
	ColumnActive lipgloss.Style
	ColumnTitle  lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardDragging lipgloss.Style
	DropMarker   lipgloss.Style
	TaskID       lipgloss.Style
	TaskTitle    lipgloss.Style
	Meta         lipgloss.Style
	Tag          lipgloss.Style

	// Group header
	GroupHeaderLine  lipgloss.Style
	GroupHeaderLabel lipgloss.Style

	// Help
	HelpKey lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	Notice    lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
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

		Column: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		ColumnActive: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		CardSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		CardDragging: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		DropMarker: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle(),

		Meta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Tag: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		GroupHeaderLine: lipgloss.NewStyle().
			Foreground(Colors.GroupLine),

		GroupHeaderLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

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
	base := lipgloss.NewStyle()
	switch status {
	case domain.StatusTodo:
		return base.Foreground(Colors.Todo)
	case domain.StatusInProgress:
		return base.Foreground(Colors.InProgress)
	case domain.StatusReview:
		return base.Foreground(Colors.Review)
	case domain.StatusDone:
		return base.Foreground(Colors.Done)
	case domain.StatusBlocked:
		return base.Foreground(Colors.Blocked)
	default:
		return base.Foreground(Colors.Muted)
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch p {
	case domain.PriorityLow:
		return base.Foreground(Colors.Low)
	case domain.PriorityMedium:
		return base.Foreground(Colors.Medium)
	case domain.PriorityHigh:
		return base.Foreground(Colors.High)
	case domain.PriorityCritical:
		return base.Foreground(Colors.Critical).Bold(true)
	default:
		return base.Foreground(Colors.Muted)
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusTodo:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusReview:
		return "◉"
	case domain.StatusDone:
		return "✓"
	case domain.StatusBlocked:
		return "✗"
	default:
		return "?"
	}
}

// PriorityIcon returns a short marker for a priority.
func PriorityIcon(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return "!!"
	case domain.PriorityHigh:
		return "!"
	case domain.PriorityLow:
		return "↓"
	default:
		return "·"
	}
}
