package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent   = lipgloss.Color("36")  // teal
	colorOpen     = lipgloss.Color("208") // orange
	colorClosed   = lipgloss.Color("245")
	colorMuted    = lipgloss.Color("240")
	colorError    = lipgloss.Color("160")
	colorSelected = lipgloss.Color("229")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	styleHeader    = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	styleHeaderSel = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)

	styleRowSelected = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(colorSelected)

	styleOpenBadge   = lipgloss.NewStyle().Foreground(colorOpen).Bold(true)
	styleClosedBadge = lipgloss.NewStyle().Foreground(colorClosed)

	stylePopover = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	stylePopoverFocused = stylePopover.
				BorderForeground(colorAccent)

	styleMenu = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	styleTabActive   = lipgloss.NewStyle().Background(colorOpen).Foreground(lipgloss.Color("231")).Padding(0, 2).Bold(true)
	styleTabInactive = lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("250")).Padding(0, 2)

	styleHelp  = lipgloss.NewStyle().Foreground(colorMuted)
	styleError = lipgloss.NewStyle().Foreground(colorError)
	styleNote  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)
