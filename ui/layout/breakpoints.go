package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal that still gets a grid.
	MinWidth = 40

	// StandardWidth fits three card columns.
	StandardWidth = 100

	// FullWidth fits four card columns.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the shortest usable terminal.
	MinHeight = 12

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 30

	// FullHeight is the threshold for full layout.
	FullHeight = 45
)

// Card constraints
const (
	// CardMinWidth is the narrowest card that still shows a readable title.
	CardMinWidth = 16

	// CardMaxWidth prevents cards from over-stretching on wide terminals.
	CardMaxWidth = 30

	// CardHeight is a bordered card with title, subtitle and gesture hint.
	CardHeight = 5

	// CardCompactHeight drops the subtitle line.
	CardCompactHeight = 4

	// GridMargin is the left margin of the grid.
	GridMargin = 2

	// ColumnGap separates card columns.
	ColumnGap = 2

	// RowGap separates card rows.
	RowGap = 1
)

// Chrome
const (
	// TitleBarHeight is the row reserved at the top of the screen.
	TitleBarHeight = 1

	// HelpBarHeight is the row reserved at the bottom of the screen.
	HelpBarHeight = 1
)

// Menu constraints
const (
	// MenuMinWidth is the minimum action menu width including its border.
	MenuMinWidth = 18

	// MenuMaxWidth is the maximum action menu width including its border.
	MenuMaxWidth = 36

	// MenuWidthPercent is the share of the horizontal span the menu aims for.
	MenuWidthPercent = 0.6
)

// Overlay constraints
const (
	// OverlayMaxWidth is the maximum overlay width.
	OverlayMaxWidth = 80

	// OverlayMaxHeight is the maximum overlay height.
	OverlayMaxHeight = 25

	// OverlayMinWidth is the minimum overlay width.
	OverlayMinWidth = 30

	// OverlayMinHeight is the minimum overlay height.
	OverlayMinHeight = 6

	// OverlayMargin is the minimum margin from terminal edges.
	OverlayMargin = 2
)
