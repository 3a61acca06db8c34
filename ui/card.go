package ui

import (
	"holdmenu/holditem"
	"holdmenu/ui/layout"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Card is the content of one held item.
type Card struct {
	Title    string
	Subtitle string
	Icon     string
	// Hint tells the user which gesture opens the menu.
	Hint string
}

type cardPalette struct {
	title, subtitle, hint lipgloss.Style
}

func paletteFor(dim bool) cardPalette {
	if dim {
		muted := lipgloss.NewStyle().Foreground(TextMuted).Faint(true)
		return cardPalette{title: muted, subtitle: muted, hint: muted}
	}
	return cardPalette{title: cardTitleStyle, subtitle: cardSubtitleStyle, hint: cardHintStyle}
}

// lines lays the card text out in a width x height box. Lines beyond height
// are dropped, lines wider than width are truncated.
func (c Card) lines(width, height int, deg layout.Degradation, p cardPalette) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	title := c.Title
	if c.Icon != "" && !deg.HideIcons {
		title = c.Icon + " " + title
	}
	out := []string{p.title.Render(fit(title, width))}
	if c.Subtitle != "" && !deg.HideSubtitles {
		out = append(out, p.subtitle.Render(fit(c.Subtitle, width)))
	}
	if c.Hint != "" && !deg.HideHints {
		out = append(out, p.hint.Render(fit(c.Hint, width)))
	}
	if len(out) > height {
		out = out[:height]
	}
	return out
}

func fit(s string, width int) string {
	return runewidth.Truncate(s, width, ellipsis)
}

// RenderCard draws an item in the grid. A transparent container leaves a
// blank hole for the preview to cover, a partially faded one is dimmed and a
// shrunk one gets the pressed frame.
func RenderCard(c Card, width, height int, s holditem.ContainerStyle, deg layout.Degradation) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if s.Opacity <= 0 {
		return Blank(width, height)
	}

	frame := cardStyle()
	if s.Scale < 1 {
		frame = pressedCardStyle()
	}
	dim := s.Opacity < 1
	if dim {
		frame = frame.BorderForeground(TextMuted)
	}
	return renderFramed(frame, c.lines(width-2, height-2, deg, paletteFor(dim)), width, height)
}

func renderFramed(frame lipgloss.Style, lines []string, width, height int) string {
	return frame.
		Width(max(0, width-2)).
		Height(max(0, height-2)).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

// Blank is a width x height block of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
