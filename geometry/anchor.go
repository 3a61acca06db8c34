package geometry

import (
	"fmt"
	"strings"
)

// Anchor is the screen corner the menu visually grows from.
type Anchor string

const (
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
)

// DefaultAnchor is used until the first measurement computes a real origin.
const DefaultAnchor = AnchorTopRight

// Anchors lists every valid anchor.
var Anchors = []Anchor{AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight}

// IsTop reports whether the menu renders below the preview.
func (a Anchor) IsTop() bool {
	return strings.HasPrefix(string(a), "top")
}

// IsLeft reports whether the menu is aligned with the preview's left edge.
func (a Anchor) IsLeft() bool {
	return strings.HasSuffix(string(a), "left")
}

// Valid reports whether a is one of the four corners.
func (a Anchor) Valid() bool {
	for _, known := range Anchors {
		if a == known {
			return true
		}
	}
	return false
}

// ParseAnchor converts a config or flag value into an Anchor. The empty
// string means "no override" and is returned as-is.
func ParseAnchor(s string) (Anchor, error) {
	a := Anchor(strings.ToLower(strings.TrimSpace(s)))
	if a == "" || a.Valid() {
		return a, nil
	}
	return "", fmt.Errorf("invalid anchor position %q (want top-left, top-right, bottom-left or bottom-right)", s)
}

// Edge selects which edge of the preview lines up with the held item when the
// preview is taller than the item.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// ParseEdge converts a config or flag value into an Edge. Empty means top.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EdgeTop):
		return EdgeTop, nil
	case string(EdgeBottom):
		return EdgeBottom, nil
	default:
		return "", fmt.Errorf("invalid anchor edge %q (want top or bottom)", s)
	}
}

// TransformOrigin picks the corner the menu grows from. The horizontal half
// follows the preview's center relative to the middle of viewportSpan; the
// vertical half follows nearBottom. A center exactly on the midpoint counts as
// right.
func TransformOrigin(x, previewWidth, viewportSpan int, nearBottom bool) Anchor {
	// x + w/2 < span/2, kept in integers.
	left := 2*x+previewWidth < viewportSpan

	switch {
	case nearBottom && left:
		return AnchorBottomLeft
	case nearBottom:
		return AnchorBottomRight
	case left:
		return AnchorTopLeft
	default:
		return AnchorTopRight
	}
}
