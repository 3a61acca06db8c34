package overlay

import (
	"holdmenu/testing/snapshot"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripLines(s string) []string {
	return strings.Split(snapshot.StripANSI(s), "\n")
}

func TestPlaceOverlay(t *testing.T) {
	bg := "aaaaa\nbbbbb\nccccc"

	tests := []struct {
		name string
		x, y int
		fg   string
		want []string
	}{
		{"inside", 1, 1, "XY", []string{"aaaaa", "bXYbb", "ccccc"}},
		{"clamped right", 10, 1, "XY", []string{"aaaaa", "bbbXY", "ccccc"}},
		{"clamped bottom", 0, 9, "XY", []string{"aaaaa", "bbbbb", "XYccc"}},
		{"two lines", 3, 0, "12\n34", []string{"aaa12", "bbb34", "ccccc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceOverlay(tt.x, tt.y, tt.fg, bg, false, false)
			assert.Equal(t, tt.want, stripLines(got))
		})
	}
}

func TestPlaceOverlayCenter(t *testing.T) {
	bg := ".....\n.....\n....."
	got := PlaceOverlay(0, 0, "X", bg, false, true)
	assert.Equal(t, []string{".....", "..X..", "....."}, stripLines(got))
}

func TestPlaceOverlayPadsShortBackground(t *testing.T) {
	bg := "aaaaa\nb\nccccc"
	got := PlaceOverlay(2, 1, "XY", bg, false, false)
	assert.Equal(t, "b XY", stripLines(got)[1])

	got = PlaceOverlay(2, 1, "XY", bg, false, false, WithWhitespaceChars("~"))
	assert.Equal(t, "b~XY", stripLines(got)[1])
}

func TestPlaceOverlayKeepsBackgroundStyles(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	bg := red.Render("aaaaa") + "\n" + red.Render("bbbbb")
	got := PlaceOverlay(1, 0, "X", bg, false, false)
	assert.Equal(t, []string{"aXaaa", "bbbbb"}, stripLines(got))
}

func TestPlaceOverlayLargerThanBackground(t *testing.T) {
	fg := "XXXXXX\nXXXXXX\nXXXXXX\nXXXXXX"
	assert.Equal(t, fg, PlaceOverlay(0, 0, fg, "ab\ncd", false, false))
}

func TestPlaceOverlayShadow(t *testing.T) {
	bg := strings.Repeat(".......\n", 4) + "......."
	got := stripLines(PlaceOverlay(1, 1, "ab\ncd", bg, true, false))
	require.Len(t, got, 5)
	assert.Equal(t, ".ab ...", got[1])
	assert.Equal(t, ".cd░...", got[2])
	assert.Equal(t, ". ░░...", got[3])
}

func TestCutLeft(t *testing.T) {
	assert.Equal(t, "cde", cutLeft("abcde", 2))
	assert.Equal(t, "", cutLeft("abc", 5))

	styled := "\x1b[31mabc\x1b[0mdef"
	assert.Equal(t, "\x1b[31mbc\x1b[0mdef", cutLeft(styled, 1))
	assert.Equal(t, "ef", cutLeft(styled, 4))

	assert.Equal(t, " 本", cutLeft("日本", 1), "a split wide rune becomes padding")
}
