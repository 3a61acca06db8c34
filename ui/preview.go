package ui

import (
	"holdmenu/holditem"
	"holdmenu/ui/layout"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FrameHeaderHeight is the number of rows FramedPreview adds above the
// content.
const FrameHeaderHeight = 1

const closeLabel = "✕ close"

// RenderPreview draws the floating copy of an item. It is empty while the
// preview is fully transparent.
func RenderPreview(c Card, width, height int, s holditem.PreviewStyle, deg layout.Degradation) string {
	if !s.Visible() || width <= 0 || height <= 0 {
		return ""
	}
	frame := liftedCardStyle()
	if s.Scale < 1 {
		frame = frame.Border(lipgloss.NormalBorder())
	}
	dim := s.Opacity < 1
	if dim {
		frame = frame.BorderForeground(TextMuted).UnsetBackground()
	}
	return renderFramed(frame, c.lines(width-2, height-2, deg, paletteFor(dim)), width, height)
}

// FramedPreview is a holditem.Preview that adds a close control above the
// content. The control occupies the rightmost cells of the header row; the
// host maps clicks there to close.
func FramedPreview(content string, _ func()) string {
	width := lipgloss.Width(content)
	label := fit(closeLabel, width)
	header := strings.Repeat(" ", max(0, width-lipgloss.Width(label))) + closeHintStyle.Render(label)
	return header + "\n" + content
}

// CloseControlWidth is the width of the close control FramedPreview draws
// for content width cells wide.
func CloseControlWidth(width int) int {
	return lipgloss.Width(fit(closeLabel, width))
}
