// Package snapshot provides assertions over rendered TUI output.
// Escape sequences are stripped so tests compare what a user would see.
package snapshot

import (
	"holdmenu/geometry"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// Snap provides snapshot assertions for one test
type Snap struct {
	t *testing.T
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertRegionContains checks that the cells inside r contain substr on one
// of their rows.
func (s *Snap) AssertRegionContains(actual string, r geometry.Rect, substr string) {
	s.t.Helper()
	for _, line := range Region(actual, r) {
		if strings.Contains(line, substr) {
			return
		}
	}
	s.t.Errorf("Region %+v does not contain %q\nRegion:\n%s", r, substr, strings.Join(Region(actual, r), "\n"))
}

// normalizeOutput strips ANSI codes and normalizes whitespace for comparison
func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes all escape sequences, including OSC hyperlinks.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines returns the line count of the rendered output (useful for height tests)
func Lines(s string) int {
	return len(strings.Split(s, "\n"))
}

// Width returns the maximum cell width of the rendered output
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// Region returns the plain text inside r, one string per row. Rows or
// columns outside the output are returned empty.
func Region(s string, r geometry.Rect) []string {
	lines := strings.Split(StripANSI(s), "\n")
	out := make([]string, 0, r.Height)
	for y := r.Y; y < r.Bottom(); y++ {
		if y < 0 || y >= len(lines) {
			out = append(out, "")
			continue
		}
		out = append(out, ansi.Cut(lines[y], r.X, r.Right()))
	}
	return out
}
