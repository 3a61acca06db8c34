package layout

import "holdmenu/geometry"

// Constraints holds the computed layout for the card grid.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// Grid
	Columns    int
	CardWidth  int
	CardHeight int
	ContentTop int
	// ContentHeight is the number of rows between the insets.
	ContentHeight int

	// MenuWidth is the action menu width for this terminal.
	MenuWidth int

	ShowMinWarning bool
}

// ComputeConstraints calculates the grid for the given terminal dimensions.
// insets are the rows reserved by the title and help bars.
func ComputeConstraints(width, height int, insets geometry.Insets) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		ContentTop:     insets.Top + RowGap,
		ContentHeight:  max(0, height-insets.Top-insets.Bottom-RowGap),
		MenuWidth:      MenuWidth(width),
	}
	if width < MinWidth || height < MinHeight {
		c.ShowMinWarning = true
	}

	c.CardHeight = ComputeDegradation(c).CardHeight()
	c.Columns, c.CardWidth = computeColumns(width, c.Mode.Columns())
	return c
}

// computeColumns shrinks the column count until cards reach CardMinWidth.
func computeColumns(width, want int) (int, int) {
	usable := width - GridMargin*2
	for cols := want; cols > 1; cols-- {
		w := (usable - (cols-1)*ColumnGap) / cols
		if w >= CardMinWidth {
			return cols, min(w, CardMaxWidth)
		}
	}
	return 1, clamp(usable, 1, CardMaxWidth)
}

// CardRect returns the position of card index in the grid.
func (c Constraints) CardRect(index int) geometry.Rect {
	cols := max(1, c.Columns)
	col, row := index%cols, index/cols
	return geometry.Rect{
		X:      GridMargin + col*(c.CardWidth+ColumnGap),
		Y:      c.ContentTop + row*(c.CardHeight+RowGap),
		Width:  c.CardWidth,
		Height: c.CardHeight,
	}
}

// Rows returns how many grid rows n cards occupy.
func (c Constraints) Rows(n int) int {
	cols := max(1, c.Columns)
	return (n + cols - 1) / cols
}

// MenuWidth is MenuWidthPercent of the horizontal span, clamped to the menu
// limits and never wider than the span.
func MenuWidth(span int) int {
	w := clamp(int(float64(span)*MenuWidthPercent), MenuMinWidth, MenuMaxWidth)
	return min(w, max(span, 1))
}

// ComputeOverlaySize calculates constrained overlay dimensions.
func ComputeOverlaySize(termWidth, termHeight int, preferredWidth, preferredHeight int) (int, int) {
	maxW := termWidth - OverlayMargin*2
	maxH := termHeight - OverlayMargin*2

	w := clamp(preferredWidth, OverlayMinWidth, min(maxW, OverlayMaxWidth))
	h := clamp(preferredHeight, OverlayMinHeight, min(maxH, OverlayMaxHeight))

	return max(w, 1), max(h, 1)
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
