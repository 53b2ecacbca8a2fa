package selector

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	SubtleColor  = lipgloss.Color("#626262") // Gray
	WarningColor = lipgloss.Color("#FFA500") // Orange
)

var (
	// TitleStyle is for the instruction line at the top of the screen
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// FilterLabelStyle is for the "Filter:" prefix
	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// ItemStyle is for unselected rows
	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// CursorItemStyle highlights the row under the cursor in reverse video
	CursorItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Reverse(true)

	// EmptyStyle is for the "No results found." indicator
	EmptyStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			PaddingLeft(2)

	// CounterStyle is for the "n of m" match counter
	CounterStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)
