// Package placement decides where a held item's floating preview goes and how
// far it must travel vertically so that the preview and its menu stay inside
// the safe area.
package placement

import (
	"holdmenu/geometry"
	"holdmenu/log"
	"holdmenu/menu"
)

// Ref names a node that can be measured.
type Ref string

// Measurer reports the absolute rectangle of a mounted node. ok is false while
// the node has not been laid out yet.
type Measurer interface {
	Measure(ref Ref) (rect geometry.Rect, ok bool)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(ref Ref) (geometry.Rect, bool)

// Measure calls f(ref).
func (f MeasureFunc) Measure(ref Ref) (geometry.Rect, bool) {
	return f(ref)
}

// Environment supplies the screen state polled on every computation.
type Environment interface {
	Viewport() Viewport
	Orientation() Orientation
	Insets() geometry.Insets
}

// Transform is the result of TransformValue. Y is the preview's top before
// activation; TY is the extra vertical translation applied once active.
type Transform struct {
	Y  int
	TY int
}

// Config is the per-item input of an Engine.
type Config struct {
	// Container is the held item in the regular layout.
	Container Ref
	// Preview is the floating copy rendered in the overlay.
	Preview Ref
	// AnchorOverride pins the transform origin. Empty means computed.
	AnchorOverride geometry.Anchor
	// Edge lines up the preview with the item's top or bottom.
	Edge geometry.Edge
	// NearBottom makes the computed origin a bottom corner.
	NearBottom bool
	// DisableMove keeps the preview exactly over the item.
	DisableMove bool
}

// Engine holds one item's placement state. It is owned by the item and is
// only touched from the UI loop.
type Engine struct {
	cfg      Config
	measurer Measurer
	env      Environment

	rect       geometry.Rect
	item       geometry.Dimensions
	menuHeight int
	origin     geometry.Anchor
}

// NewEngine creates an engine. Until the first successful Activate the rect
// is empty and the origin is the override or the default anchor.
func NewEngine(cfg Config, measurer Measurer, env Environment) *Engine {
	origin := cfg.AnchorOverride
	if origin == "" {
		origin = geometry.DefaultAnchor
	}
	if cfg.Edge == "" {
		cfg.Edge = geometry.EdgeTop
	}
	return &Engine{
		cfg:      cfg,
		measurer: measurer,
		env:      env,
		origin:   origin,
	}
}

// Activate measures the container and the preview and stores the absolute
// rect: position from the container, size from the preview. It returns false
// and leaves the previous state untouched if either node is not laid out yet;
// the caller retries on its next gesture tick.
func (e *Engine) Activate() bool {
	container, ok := e.measurer.Measure(e.cfg.Container)
	if !ok {
		log.LayoutTrace("measure %s: not ready", e.cfg.Container)
		return false
	}
	preview, ok := e.measurer.Measure(e.cfg.Preview)
	if !ok {
		log.LayoutTrace("measure %s: not ready", e.cfg.Preview)
		return false
	}

	e.rect = geometry.Rect{
		X:      container.X,
		Y:      container.Y,
		Width:  preview.Width,
		Height: preview.Height,
	}

	if e.cfg.AnchorOverride == "" {
		span := e.env.Viewport().Horizontal(e.env.Orientation())
		e.origin = geometry.TransformOrigin(e.rect.X, e.rect.Width, span, e.cfg.NearBottom)
	}
	log.LayoutTrace("measured %s rect=%+v origin=%s", e.cfg.Container, e.rect, e.origin)
	return true
}

// TransformValue computes the preview's resting top and the translation that
// keeps preview plus menu on screen. With a top origin the menu hangs below
// the preview; with a bottom origin it sits above. If both edges overflow the
// bottom check wins.
func (e *Engine) TransformValue() Transform {
	if e.cfg.DisableMove {
		return Transform{Y: e.rect.Y}
	}

	height := e.env.Viewport().Vertical(e.env.Orientation())
	insets := e.env.Insets()

	var y int
	switch e.cfg.Edge {
	case geometry.EdgeBottom:
		y = e.rect.Y - (e.rect.Height - e.item.Height)
	default:
		y = e.rect.Y
	}

	var topEdge, bottomEdge int
	if e.origin.IsTop() {
		topEdge = y - insets.Top
		bottomEdge = y + e.rect.Height + e.menuHeight + insets.Bottom
	} else {
		topEdge = y - e.menuHeight - insets.Top
		bottomEdge = y + e.rect.Height + insets.Bottom
	}

	tY := 0
	if topEdge < 0 {
		tY = -topEdge + geometry.EdgeMargin
	}
	if bottomEdge > height {
		tY = height - bottomEdge
	}

	return Transform{Y: y, TY: tY}
}

// Snapshot builds the menu props from the current measurement.
func (e *Engine) Snapshot(items []menu.Item, params menu.ActionParams) menu.Props {
	t := e.TransformValue()
	if params == nil {
		params = menu.ActionParams{}
	}
	return menu.Props{
		ItemHeight:     e.rect.Height,
		ItemWidth:      e.rect.Width,
		ItemX:          e.rect.X,
		ItemY:          t.Y,
		AnchorPosition: e.origin,
		MenuHeight:     e.menuHeight,
		Items:          items,
		TransformValue: t.TY,
		ActionParams:   params,
	}
}

// SetItemDimensions records the item's natural size from the host layout.
func (e *Engine) SetItemDimensions(d geometry.Dimensions) {
	e.item = d
}

// ItemDimensions returns the last reported natural size.
func (e *Engine) ItemDimensions() geometry.Dimensions {
	return e.item
}

// SetMenuHeight records the height of the item's menu.
func (e *Engine) SetMenuHeight(h int) {
	e.menuHeight = h
}

// MenuHeight returns the recorded menu height.
func (e *Engine) MenuHeight() int {
	return e.menuHeight
}

// Rect returns the last measured rect.
func (e *Engine) Rect() geometry.Rect {
	return e.rect
}

// Origin returns the current transform origin.
func (e *Engine) Origin() geometry.Anchor {
	return e.origin
}

// DisableMove reports whether movement is suppressed.
func (e *Engine) DisableMove() bool {
	return e.cfg.DisableMove
}
