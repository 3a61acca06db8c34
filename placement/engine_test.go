package placement

import (
	"holdmenu/geometry"
	"holdmenu/menu"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv struct {
	viewport    Viewport
	orientation Orientation
	insets      geometry.Insets
}

func (f *fakeEnv) Viewport() Viewport       { return f.viewport }
func (f *fakeEnv) Orientation() Orientation { return f.orientation }
func (f *fakeEnv) Insets() geometry.Insets  { return f.insets }

type fakeMeasurer map[Ref]geometry.Rect

func (f fakeMeasurer) Measure(ref Ref) (geometry.Rect, bool) {
	r, ok := f[ref]
	return r, ok
}

const (
	containerRef Ref = "container"
	previewRef   Ref = "preview"
)

// newTestEngine builds an engine over an item at container whose preview has
// the same size, in a portrait 390x800 viewport.
func newTestEngine(t *testing.T, cfg Config, container geometry.Rect, menuHeight int) (*Engine, *fakeEnv, fakeMeasurer) {
	t.Helper()
	cfg.Container = containerRef
	cfg.Preview = previewRef
	env := &fakeEnv{viewport: Viewport{Width: 390, Height: 800}}
	m := fakeMeasurer{
		containerRef: container,
		previewRef:   {Width: container.Width, Height: container.Height},
	}
	e := NewEngine(cfg, m, env)
	e.SetItemDimensions(container.Size())
	e.SetMenuHeight(menuHeight)
	return e, env, m
}

func TestTransformValueBottomOverflow(t *testing.T) {
	e, _, _ := newTestEngine(t, Config{}, geometry.Rect{X: 300, Y: 700, Width: 80, Height: 200}, 150)
	require.True(t, e.Activate())
	require.Equal(t, geometry.AnchorTopRight, e.Origin())

	// 700 + 200 + 150 = 1050 > 800
	assert.Equal(t, Transform{Y: 700, TY: -250}, e.TransformValue())
}

func TestTransformValue(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		container geometry.Rect
		preview   *geometry.Rect
		menu      int
		insets    geometry.Insets
		expected  Transform
	}{
		{
			name:      "fits without moving",
			container: geometry.Rect{X: 10, Y: 100, Width: 80, Height: 50},
			menu:      100,
			expected:  Transform{Y: 100, TY: 0},
		},
		{
			name:      "top origin pushed below the top inset",
			container: geometry.Rect{X: 10, Y: 3, Width: 80, Height: 50},
			menu:      100,
			insets:    geometry.Insets{Top: 5},
			expected:  Transform{Y: 3, TY: 2 + geometry.EdgeMargin},
		},
		{
			name:      "top origin pulled above the bottom inset",
			container: geometry.Rect{X: 10, Y: 650, Width: 80, Height: 50},
			menu:      100,
			insets:    geometry.Insets{Bottom: 34},
			expected:  Transform{Y: 650, TY: 800 - (650 + 50 + 100 + 34)},
		},
		{
			name:      "bottom origin leaves room for the menu above",
			cfg:       Config{AnchorOverride: geometry.AnchorBottomLeft},
			container: geometry.Rect{X: 10, Y: 10, Width: 80, Height: 50},
			menu:      20,
			expected:  Transform{Y: 10, TY: 10 + geometry.EdgeMargin},
		},
		{
			name:      "bottom origin ignores menu at the bottom edge",
			cfg:       Config{AnchorOverride: geometry.AnchorBottomLeft},
			container: geometry.Rect{X: 10, Y: 700, Width: 80, Height: 90},
			menu:      300,
			expected:  Transform{Y: 700, TY: 0},
		},
		{
			name:      "bottom origin pulled up at the bottom edge",
			cfg:       Config{AnchorOverride: geometry.AnchorBottomRight},
			container: geometry.Rect{X: 10, Y: 760, Width: 80, Height: 90},
			menu:      300,
			insets:    geometry.Insets{Bottom: 10},
			expected:  Transform{Y: 760, TY: 800 - (760 + 90 + 10)},
		},
		{
			name:      "both edges overflow and the bottom check wins",
			container: geometry.Rect{X: 10, Y: -10, Width: 80, Height: 900},
			menu:      150,
			expected:  Transform{Y: -10, TY: 800 - (-10 + 900 + 150)},
		},
		{
			name:      "disabled movement keeps the measured top",
			cfg:       Config{DisableMove: true, Edge: geometry.EdgeBottom},
			container: geometry.Rect{X: 10, Y: 780, Width: 80, Height: 50},
			preview:   &geometry.Rect{Width: 80, Height: 60},
			menu:      150,
			expected:  Transform{Y: 780, TY: 0},
		},
		{
			name:      "bottom edge aligns a taller preview with the item bottom",
			cfg:       Config{Edge: geometry.EdgeBottom},
			container: geometry.Rect{X: 10, Y: 100, Width: 80, Height: 50},
			preview:   &geometry.Rect{Width: 80, Height: 56},
			menu:      40,
			expected:  Transform{Y: 94, TY: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, env, m := newTestEngine(t, tt.cfg, tt.container, tt.menu)
			env.insets = tt.insets
			if tt.preview != nil {
				m[previewRef] = *tt.preview
			}
			require.True(t, e.Activate())

			got := e.TransformValue()
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, e.TransformValue(), "TransformValue must be idempotent")
		})
	}
}

func TestActivateWithoutMeasurement(t *testing.T) {
	env := &fakeEnv{viewport: Viewport{Width: 390, Height: 800}}
	m := fakeMeasurer{containerRef: {X: 10, Y: 10, Width: 5, Height: 5}}
	e := NewEngine(Config{Container: containerRef, Preview: previewRef}, m, env)

	assert.False(t, e.Activate(), "preview not mounted yet")
	assert.True(t, e.Rect().IsEmpty())
	assert.Equal(t, geometry.DefaultAnchor, e.Origin())

	m[previewRef] = geometry.Rect{Width: 5, Height: 5}
	assert.True(t, e.Activate(), "retry succeeds once the preview is laid out")
	assert.Equal(t, geometry.Rect{X: 10, Y: 10, Width: 5, Height: 5}, e.Rect())
	assert.Equal(t, geometry.AnchorTopLeft, e.Origin())
}

func TestActivateKeepsAnchorOverride(t *testing.T) {
	e, _, _ := newTestEngine(t, Config{AnchorOverride: geometry.AnchorBottomRight},
		geometry.Rect{X: 0, Y: 100, Width: 10, Height: 10}, 10)
	require.True(t, e.Activate())
	assert.Equal(t, geometry.AnchorBottomRight, e.Origin())
}

func TestActivateNearBottom(t *testing.T) {
	e, _, _ := newTestEngine(t, Config{NearBottom: true},
		geometry.Rect{X: 10, Y: 100, Width: 100, Height: 10}, 10)
	require.True(t, e.Activate())
	assert.Equal(t, geometry.AnchorBottomLeft, e.Origin())
}

func TestLandscapeUsesSwappedSpans(t *testing.T) {
	env := &fakeEnv{viewport: Viewport{Width: 40, Height: 120}, orientation: Landscape}
	m := fakeMeasurer{
		containerRef: {X: 50, Y: 30, Width: 20, Height: 6},
		previewRef:   {Width: 20, Height: 6},
	}
	e := NewEngine(Config{Container: containerRef, Preview: previewRef}, m, env)
	e.SetItemDimensions(geometry.Dimensions{Width: 20, Height: 6})
	e.SetMenuHeight(8)
	require.True(t, e.Activate())

	// Live width is 120: center 60 is not left of 60.
	assert.Equal(t, geometry.AnchorTopRight, e.Origin())
	// Live height is 40: 30 + 6 + 8 = 44 overflows by 4.
	assert.Equal(t, Transform{Y: 30, TY: -4}, e.TransformValue())
}

func TestTransformKeepsCompositeInsideSafeArea(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	anchors := []geometry.Anchor{"", geometry.AnchorTopLeft, geometry.AnchorBottomLeft}

	for i := 0; i < 2000; i++ {
		height := 20 + rng.Intn(200)
		insets := geometry.Insets{Top: rng.Intn(4), Bottom: rng.Intn(4)}
		room := height - insets.Top - insets.Bottom - geometry.EdgeMargin
		if room < 2 {
			continue
		}
		previewHeight := 1 + rng.Intn(room-1)
		menuHeight := rng.Intn(room - previewHeight + 1)
		y := rng.Intn(height+40) - 20

		env := &fakeEnv{viewport: Viewport{Width: 100, Height: height}, insets: insets}
		m := fakeMeasurer{
			containerRef: {X: rng.Intn(100), Y: y, Width: 10, Height: previewHeight},
			previewRef:   {Width: 10, Height: previewHeight},
		}
		cfg := Config{Container: containerRef, Preview: previewRef, AnchorOverride: anchors[rng.Intn(len(anchors))]}
		e := NewEngine(cfg, m, env)
		e.SetItemDimensions(geometry.Dimensions{Width: 10, Height: previewHeight})
		e.SetMenuHeight(menuHeight)
		require.True(t, e.Activate())

		tv := e.TransformValue()
		top := tv.Y + tv.TY
		bottom := top + previewHeight
		if e.Origin().IsTop() {
			bottom += menuHeight
		} else {
			top -= menuHeight
		}

		assert.GreaterOrEqual(t, top, insets.Top, "case %d: y=%d h=%d menu=%d screen=%d origin=%s", i, y, previewHeight, menuHeight, height, e.Origin())
		assert.LessOrEqual(t, bottom, height-insets.Bottom, "case %d: y=%d h=%d menu=%d screen=%d origin=%s", i, y, previewHeight, menuHeight, height, e.Origin())
	}
}

func TestSnapshot(t *testing.T) {
	e, _, _ := newTestEngine(t, Config{}, geometry.Rect{X: 300, Y: 700, Width: 80, Height: 200}, 150)
	require.True(t, e.Activate())

	items := []menu.Item{{Text: "Reply"}, {Text: "Delete", IsDestructive: true}}
	props := e.Snapshot(items, nil)

	assert.Equal(t, menu.Props{
		ItemHeight:     200,
		ItemWidth:      80,
		ItemX:          300,
		ItemY:          700,
		AnchorPosition: geometry.AnchorTopRight,
		MenuHeight:     150,
		Items:          items,
		TransformValue: -250,
		ActionParams:   menu.ActionParams{},
	}, props)
}

func TestViewport(t *testing.T) {
	v := ViewportFor(120, 40)
	assert.Equal(t, Viewport{Width: 40, Height: 120}, v)
	assert.Equal(t, Landscape, OrientationOf(120, 40))
	assert.Equal(t, 120, v.Horizontal(Landscape))
	assert.Equal(t, 40, v.Vertical(Landscape))

	v = ViewportFor(30, 50)
	assert.Equal(t, Portrait, OrientationOf(30, 50))
	assert.Equal(t, 30, v.Horizontal(Portrait))
	assert.Equal(t, 50, v.Vertical(Portrait))
}

func TestScreen(t *testing.T) {
	ctx := menu.NewContext(geometry.Insets{Top: 1, Bottom: 1})
	s := NewScreen(ctx, 120, 40)

	w, h := s.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
	assert.Equal(t, Landscape, s.Orientation())
	assert.Equal(t, geometry.Insets{Top: 1, Bottom: 1}, s.Insets())

	ctx.Insets.Set(geometry.Insets{Top: 2})
	assert.Equal(t, geometry.Insets{Top: 2}, s.Insets())

	s.Resize(40, 60)
	w, h = s.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 60, h)
	assert.Equal(t, Portrait, s.Orientation())
}
