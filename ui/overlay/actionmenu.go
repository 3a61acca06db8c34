package overlay

import (
	"holdmenu/geometry"
	"holdmenu/menu"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// ActionMenu draws the contextual menu of the open held item from the
// published placement snapshot.
type ActionMenu struct {
	props     menu.Props
	width     int
	hideIcons bool
	// highlight is the row under the pointer, -1 for none.
	highlight int
}

// NewActionMenu creates a menu for props, width cells wide including its
// border.
func NewActionMenu(props menu.Props, width int) *ActionMenu {
	return &ActionMenu{
		props:     props,
		width:     max(width, 3),
		highlight: -1,
	}
}

// SetHideIcons drops row icons on narrow terminals.
func (m *ActionMenu) SetHideIcons(hide bool) {
	m.hideIcons = hide
}

// SetHighlight highlights item index, -1 for none.
func (m *ActionMenu) SetHighlight(index int) {
	m.highlight = index
}

// Height is the rendered height: one line per row and per separator plus the
// border.
func (m *ActionMenu) Height() int {
	return len(m.lines()) + 2
}

// Width is the rendered width.
func (m *ActionMenu) Width() int {
	return m.width
}

// Origin positions the menu against the active preview: below it for a top
// anchor, above it for a bottom anchor, aligned with the preview's left or
// right edge. The result is clamped to the screen.
func (m *ActionMenu) Origin(screenWidth, screenHeight int) (x, y int) {
	preview := m.props.PreviewRect()
	anchor := m.props.AnchorPosition
	h := m.Height()

	if anchor.IsTop() {
		y = preview.Bottom()
	} else {
		y = preview.Y - h
	}
	if anchor.IsLeft() {
		x = preview.X
	} else {
		x = preview.Right() - m.width
	}

	x = clamp(x, 0, max(0, screenWidth-m.width))
	y = clamp(y, 0, max(0, screenHeight-h))
	return x, y
}

// Bounds is the screen rectangle the menu occupies.
func (m *ActionMenu) Bounds(screenWidth, screenHeight int) geometry.Rect {
	x, y := m.Origin(screenWidth, screenHeight)
	return geometry.Rect{X: x, Y: y, Width: m.width, Height: m.Height()}
}

// RowAt maps a screen cell to the item under it. ok is false outside the
// rows and for separators, titles and disabled items.
func (m *ActionMenu) RowAt(screenWidth, screenHeight, x, y int) (index int, ok bool) {
	b := m.Bounds(screenWidth, screenHeight)
	if !b.Contains(x, y) {
		return -1, false
	}
	// Border columns and rows are not part of any row.
	if x == b.X || x == b.Right()-1 || y == b.Y || y == b.Bottom()-1 {
		return -1, false
	}
	line := y - b.Y - 1
	rows := m.lines()
	if line < 0 || line >= len(rows) || rows[line].item < 0 {
		return -1, false
	}
	it := m.props.Items[rows[line].item]
	if it.IsTitle || it.Disabled {
		return -1, false
	}
	return rows[line].item, true
}

type menuLine struct {
	// item is the index into Items, or -1 for a separator.
	item int
}

func (m *ActionMenu) lines() []menuLine {
	lines := make([]menuLine, 0, len(m.props.Items))
	for i, it := range m.props.Items {
		lines = append(lines, menuLine{item: i})
		if it.WithSeparator {
			lines = append(lines, menuLine{item: -1})
		}
	}
	return lines
}

// Render renders the menu.
func (m *ActionMenu) Render(opts ...WhitespaceOption) string {
	inner := m.width - 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#888888"))

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#DDDDDD"))

	destructiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444"))

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555555"))

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3C3C3C"))

	highlightStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("#3C3C4C"))

	var content strings.Builder
	for n, line := range m.lines() {
		if n > 0 {
			content.WriteString("\n")
		}
		if line.item < 0 {
			content.WriteString(separatorStyle.Render(strings.Repeat("─", inner)))
			continue
		}

		it := m.props.Items[line.item]
		label := truncate.StringWithTail(m.label(it), uint(inner), ellipsis)
		label += strings.Repeat(" ", max(0, inner-lipgloss.Width(label)))

		var style lipgloss.Style
		switch {
		case it.IsTitle:
			style = titleStyle
		case it.Disabled:
			style = disabledStyle
		case it.IsDestructive:
			style = destructiveStyle
		default:
			style = normalStyle
		}
		if line.item == m.highlight && !it.IsTitle && !it.Disabled {
			style = style.Inherit(highlightStyle)
		}
		content.WriteString(style.Render(label))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Width(inner)

	return borderStyle.Render(content.String())
}

func (m *ActionMenu) label(it menu.Item) string {
	if it.Icon == "" || m.hideIcons || it.IsTitle {
		return " " + it.Text
	}
	return " " + it.Icon + " " + it.Text
}
