package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for all TUI colors.
var (
	amberGold   = lipgloss.Color("#FFD8A8") // warm amber - primary accent
	softTeal    = lipgloss.Color("#96E0D4") // soft teal - found reports, success states
	dustyRose   = lipgloss.Color("#F4A8B8") // dusty rose - lost reports, errors
	mutedGray   = lipgloss.Color("#6B7280") // muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // bright white - primary text
)

// Common Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(amberGold).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	selectedStyle = lipgloss.NewStyle().
			Foreground(amberGold).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(softTeal)

	errorStyle = lipgloss.NewStyle().
			Foreground(dustyRose)

	lostStyle = lipgloss.NewStyle().
			Foreground(dustyRose).
			Bold(true)

	foundStyle = lipgloss.NewStyle().
			Foreground(softTeal).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(amberGold).
			Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(amberGold)

	buttonStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Background(mutedGray).
			Padding(0, 2)

	buttonActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1F2937")).
				Background(amberGold).
				Bold(true).
				Padding(0, 2)
)

// statusBadge renders a colored Lost/Found tag.
func statusBadge(lost bool) string {
	if lost {
		return lostStyle.Render("Lost")
	}
	return foundStyle.Render("Found")
}
