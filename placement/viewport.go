package placement

// Orientation of the screen relative to its natural (portrait) size.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Viewport is the screen size in its natural portrait orientation, captured
// once. The live spans are derived from it and the current orientation.
type Viewport struct {
	Width  int
	Height int
}

// Horizontal returns the live screen width for orientation o.
func (v Viewport) Horizontal(o Orientation) int {
	if o == Landscape {
		return v.Height
	}
	return v.Width
}

// Vertical returns the live screen height for orientation o.
func (v Viewport) Vertical(o Orientation) int {
	if o == Landscape {
		return v.Width
	}
	return v.Height
}

// OrientationOf reports the orientation of a live screen size. Square counts
// as portrait.
func OrientationOf(width, height int) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// ViewportFor returns the natural viewport of a screen whose live size is
// width x height.
func ViewportFor(width, height int) Viewport {
	if width > height {
		return Viewport{Width: height, Height: width}
	}
	return Viewport{Width: width, Height: height}
}
