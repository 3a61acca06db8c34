package overlay

import (
	"holdmenu/geometry"
	"holdmenu/menu"
	"holdmenu/testing/snapshot"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProps(anchor geometry.Anchor) menu.Props {
	items := []menu.Item{
		{Text: "Edit", Icon: "+"},
		{Text: "Share", WithSeparator: true},
		{Text: "Delete", IsDestructive: true},
	}
	return menu.Props{
		ItemX:          10,
		ItemY:          5,
		ItemWidth:      20,
		ItemHeight:     4,
		TransformValue: -1,
		AnchorPosition: anchor,
		MenuHeight:     menu.Height(items),
		Items:          items,
	}
}

func TestActionMenuHeightMatchesPlacement(t *testing.T) {
	props := testProps(geometry.AnchorTopLeft)
	m := NewActionMenu(props, 24)
	assert.Equal(t, 6, m.Height())
	assert.Equal(t, props.MenuHeight, m.Height())
	assert.Equal(t, m.Height(), snapshot.Lines(m.Render()))
	assert.Equal(t, 24, snapshot.Width(m.Render()))
}

func TestActionMenuOrigin(t *testing.T) {
	tests := []struct {
		name   string
		anchor geometry.Anchor
		wantX  int
		wantY  int
	}{
		{"below preview, left aligned", geometry.AnchorTopLeft, 10, 8},
		{"below preview, right aligned", geometry.AnchorTopRight, 6, 8},
		{"above preview clamps to top", geometry.AnchorBottomLeft, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := NewActionMenu(testProps(tt.anchor), 24).Origin(80, 24)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestActionMenuOriginAboveTallPreview(t *testing.T) {
	props := testProps(geometry.AnchorBottomRight)
	props.ItemY = 16
	x, y := NewActionMenu(props, 24).Origin(80, 24)
	assert.Equal(t, 6, x)
	assert.Equal(t, 15-6, y)
}

func TestActionMenuRowAt(t *testing.T) {
	m := NewActionMenu(testProps(geometry.AnchorTopLeft), 24)

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"top border", 12, 8, -1, false},
		{"first row", 12, 9, 0, true},
		{"second row", 12, 10, 1, true},
		{"separator", 12, 11, -1, false},
		{"destructive row", 12, 12, 2, true},
		{"bottom border", 12, 13, -1, false},
		{"left border", 10, 9, -1, false},
		{"outside", 40, 9, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.RowAt(80, 24, tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActionMenuRowAtSkipsTitlesAndDisabled(t *testing.T) {
	props := testProps(geometry.AnchorTopLeft)
	props.Items = []menu.Item{
		{Text: "Actions", IsTitle: true},
		{Text: "Archive", Disabled: true},
		{Text: "Open"},
	}
	m := NewActionMenu(props, 24)

	_, ok := m.RowAt(80, 24, 12, 9)
	assert.False(t, ok)
	_, ok = m.RowAt(80, 24, 12, 10)
	assert.False(t, ok)
	got, ok := m.RowAt(80, 24, 12, 11)
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestActionMenuRender(t *testing.T) {
	m := NewActionMenu(testProps(geometry.AnchorTopLeft), 24)
	lines := strings.Split(snapshot.StripANSI(m.Render()), "\n")
	require.Len(t, lines, 6)

	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "+ Edit")
	assert.Contains(t, lines[2], "Share")
	assert.Contains(t, lines[3], strings.Repeat("─", 22))
	assert.Contains(t, lines[4], "Delete")
	assert.True(t, strings.HasPrefix(lines[5], "╰"))
}

func TestActionMenuHideIcons(t *testing.T) {
	m := NewActionMenu(testProps(geometry.AnchorTopLeft), 24)
	m.SetHideIcons(true)
	out := snapshot.StripANSI(m.Render())
	assert.NotContains(t, out, "+")
	assert.Contains(t, out, " Edit")
}

func TestActionMenuTruncatesLongLabels(t *testing.T) {
	props := testProps(geometry.AnchorTopLeft)
	props.Items = []menu.Item{{Text: "Move to another folder"}}
	m := NewActionMenu(props, 12)

	out := m.Render()
	assert.Equal(t, 12, snapshot.Width(out))
	assert.Contains(t, snapshot.StripANSI(out), ellipsis)
	assert.NotContains(t, snapshot.StripANSI(out), "folder")
}

func TestActionMenuHighlightKeepsLayout(t *testing.T) {
	m := NewActionMenu(testProps(geometry.AnchorTopLeft), 24)
	plain := snapshot.StripANSI(m.Render())
	m.SetHighlight(1)
	assert.Equal(t, plain, snapshot.StripANSI(m.Render()))
}
