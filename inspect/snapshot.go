package inspect

import (
	"fmt"
	"holdmenu/menu"
	"holdmenu/ui/layout"
	"strings"
	"time"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	Terminal TerminalInfo `json:"terminal"`

	// Menu is the shared menu state.
	Menu MenuInfo `json:"menu"`

	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"`
}

// MenuInfo mirrors the shared menu context.
type MenuInfo struct {
	State string `json:"state"`
	// Owner is the key of the item that last published props.
	Owner string `json:"owner,omitempty"`
	// Props is the published placement snapshot, absent before the first
	// publish.
	Props *menu.Props `json:"props,omitempty"`
}

// LayoutInfo contains the grid the items are laid out on.
type LayoutInfo struct {
	Mode        string          `json:"mode"`
	Columns     int             `json:"columns"`
	CardWidth   int             `json:"card_width"`
	CardHeight  int             `json:"card_height"`
	ContentTop  int             `json:"content_top"`
	MenuWidth   int             `json:"menu_width"`
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideSubtitles  bool `json:"hide_subtitles"`
	HideIcons      bool `json:"hide_icons"`
	HideHints      bool `json:"hide_hints"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int, orientation string) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height, Orientation: orientation}
	return s
}

// WithMenu copies the shared menu state.
func (s *Snapshot) WithMenu(ctx *menu.Context) *Snapshot {
	s.Menu = MenuInfo{
		State: ctx.State.Get().String(),
		Owner: ctx.Owner(),
	}
	if props := ctx.Props.Get(); !props.Empty() {
		s.Menu.Props = &props
	}
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:       c.Mode.String(),
		Columns:    c.Columns,
		CardWidth:  c.CardWidth,
		CardHeight: c.CardHeight,
		ContentTop: c.ContentTop,
		MenuWidth:  c.MenuWidth,
		Degradation: DegradationInfo{
			HideSubtitles:  d.HideSubtitles,
			HideIcons:      d.HideIcons,
			HideHints:      d.HideHints,
			ShowMinWarning: d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_subtitles", Threshold: layout.SubtitleHideHeight, Active: d.HideSubtitles, Dimension: "height"},
		{Name: "hide_icons", Threshold: layout.IconHideWidth, Active: d.HideIcons, Dimension: "width"},
		{Name: "hide_hints", Threshold: layout.HintHideWidth, Active: d.HideHints, Dimension: "width"},
		{Name: "min_warning", Threshold: layout.MinWidth, Active: d.ShowMinWarning, Dimension: "width"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d (%s)\n", s.Terminal.Width, s.Terminal.Height, s.Terminal.Orientation))

	b.WriteString("\n--- Menu ---\n")
	b.WriteString(fmt.Sprintf("State: %s\n", s.Menu.State))
	if s.Menu.Owner != "" {
		b.WriteString(fmt.Sprintf("Owner: %s\n", s.Menu.Owner))
	}
	if p := s.Menu.Props; p != nil {
		b.WriteString(fmt.Sprintf("Anchor: %s  Item: %d,%d %dx%d  Translate: %d  Menu height: %d\n",
			p.AnchorPosition, p.ItemX, p.ItemY, p.ItemWidth, p.ItemHeight, p.TransformValue, p.MenuHeight))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Grid: %d columns of %dx%d\n", s.Layout.Columns, s.Layout.CardWidth, s.Layout.CardHeight))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d at %d,%d)", node.Bounds.Width, node.Bounds.Height, node.Bounds.X, node.Bounds.Y))
	if !node.Visible {
		b.WriteString(" hidden")
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
