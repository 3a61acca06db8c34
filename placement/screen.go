package placement

import (
	"holdmenu/geometry"
	"holdmenu/menu"
	"sync"
)

// Screen is the Environment of a terminal: the viewport and orientation come
// from the live window size, the insets from the shared menu context.
type Screen struct {
	mu          sync.RWMutex
	viewport    Viewport
	orientation Orientation
	ctx         *menu.Context
}

// NewScreen creates a Screen for a width x height window.
func NewScreen(ctx *menu.Context, width, height int) *Screen {
	s := &Screen{ctx: ctx}
	s.Resize(width, height)
	return s
}

// Resize records a new live window size.
func (s *Screen) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = ViewportFor(width, height)
	s.orientation = OrientationOf(width, height)
}

// Viewport implements Environment.
func (s *Screen) Viewport() Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// Orientation implements Environment.
func (s *Screen) Orientation() Orientation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orientation
}

// Insets implements Environment.
func (s *Screen) Insets() geometry.Insets {
	return s.ctx.Insets.Get()
}

// Size returns the live width and height.
func (s *Screen) Size() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport.Horizontal(s.orientation), s.viewport.Vertical(s.orientation)
}
