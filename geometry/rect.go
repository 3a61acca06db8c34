// Package geometry holds the cell-based shapes and the pure placement helpers
// shared by the placement engine, the menu context and the renderer.
package geometry

// Dimensions is the natural size of a held item's content, as reported by
// the host layout.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is an absolute screen rectangle. X and Y are the top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Dimensions {
	return Dimensions{Width: r.Width, Height: r.Height}
}

// Insets are the rows reserved at the top and bottom of the screen (title
// bars, status lines) that the preview and menu must stay clear of.
type Insets struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}
