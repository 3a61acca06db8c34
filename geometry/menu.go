package geometry

// Menu sizing, in rows. The renderer lays the menu out itself; these values
// only feed the edge-avoidance math and must agree with it.
const (
	// MenuItemHeight is the height of one action row.
	MenuItemHeight = 1
	// ItemDividerHeight is the hairline between adjacent rows. Terminal rows
	// have no hairline, so it takes no space.
	ItemDividerHeight = 0
	// SeparatorHeight is the gap rendered after an item marked WithSeparator.
	SeparatorHeight = 1
	// MenuChromeHeight covers the top and bottom border of the menu box.
	MenuChromeHeight = 2
)

// EdgeMargin is the gap kept between a pushed-down preview and the top inset.
const EdgeMargin = 2

// MenuHeight returns the total height of a menu with itemCount rows of which
// separatorCount carry a trailing separator.
func MenuHeight(itemCount, separatorCount int) int {
	if itemCount <= 0 {
		return 0
	}
	return MenuItemHeight*itemCount +
		ItemDividerHeight*(itemCount-1) +
		SeparatorHeight*separatorCount +
		MenuChromeHeight
}
