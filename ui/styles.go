package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Every color adapts to light and dark terminals.
var (
	// Primary is the accent used for pressed and lifted items.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the resting card border.
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderLifted is the border of the floating preview.
	BorderLifted = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#7aa2f7"}

	TextPrimary   = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	TextMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundLifted sits behind the floating preview.
	BackgroundLifted = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	Warning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
)

var (
	titleBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	titleBarInfoStyle = lipgloss.NewStyle().
				Foreground(TextMuted).
				Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true)

	cardSubtitleStyle = lipgloss.NewStyle().
				Foreground(TextSecondary)

	cardHintStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true)

	closeHintStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	warningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)
)

// cardStyle is the frame of a resting item.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
}

// pressedCardStyle is the frame while the press animation has shrunk the
// item.
func pressedCardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Primary)
}

// liftedCardStyle is the frame of the floating preview.
func liftedCardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(BorderLifted).
		Background(BackgroundLifted)
}
