package overlay

import (
	"github.com/charmbracelet/lipgloss"
)

// Notice is a boxed panel with a title and a body, drawn centered over the
// screen.
type Notice struct {
	title string
	body  string
	width int
}

// NewNotice creates a notice.
func NewNotice(title, body string) *Notice {
	return &Notice{title: title, body: body}
}

// SetWidth sets the content width. Zero sizes the box to its content.
func (n *Notice) SetWidth(width int) {
	n.width = width
}

// Render renders the notice.
func (n *Notice) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	if n.width > 0 {
		boxStyle = boxStyle.Width(n.width)
	}

	content := titleStyle.Render(n.title)
	if n.body != "" {
		content += "\n\n" + bodyStyle.Render(n.body)
	}
	return boxStyle.Render(content)
}
