package ui

import (
	"fmt"
	"holdmenu/ui/layout"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TitleBar renders a one-row bar with title on the left and info on the
// right. info is dropped when it does not fit.
func TitleBar(width int, title, info string) string {
	if width <= 0 {
		return ""
	}
	left := titleBarStyle.Render(fit(title, max(0, width-2)))
	right := titleBarInfoStyle.Render(info)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if info == "" || gap < 0 {
		return left + strings.Repeat(" ", max(0, width-lipgloss.Width(left)))
	}
	return left + strings.Repeat(" ", gap) + right
}

// MinSizeWarning fills the screen with a notice that the terminal is too
// small to lay items out.
func MinSizeWarning(width, height int) string {
	msg := warningStyle.Render("Terminal too small") + "\n" +
		cardSubtitleStyle.Render(fmt.Sprintf("%dx%d, need %dx%d", width, height, layout.MinWidth, layout.MinHeight))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
