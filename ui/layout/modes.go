// Package layout provides responsive layout calculations for the card grid
// and the action menu.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals: four card columns.
	LayoutFull LayoutMode = iota

	// LayoutStandard is for medium terminals: three card columns.
	LayoutStandard

	// LayoutCompact is for small terminals: two card columns.
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size: a single column
	// under a size warning.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// Columns is the number of card columns the mode aims for.
func (m LayoutMode) Columns() int {
	switch m {
	case LayoutFull:
		return 4
	case LayoutStandard:
		return 3
	case LayoutCompact:
		return 2
	default:
		return 1
	}
}

// DetermineMode calculates the appropriate layout mode for the given dimensions.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}

	// The more restrictive dimension wins.
	widthMode := determineWidthMode(width)
	heightMode := determineHeightMode(height)
	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func determineWidthMode(width int) LayoutMode {
	switch {
	case width >= FullWidth:
		return LayoutFull
	case width >= StandardWidth:
		return LayoutStandard
	case width >= MinWidth:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

func determineHeightMode(height int) LayoutMode {
	switch {
	case height >= FullHeight:
		return LayoutFull
	case height >= StandardHeight:
		return LayoutStandard
	case height >= MinHeight:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}
