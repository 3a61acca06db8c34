package app

import (
	"context"
	"holdmenu/anim"
	"holdmenu/config"
	"holdmenu/geometry"
	"holdmenu/haptic"
	"holdmenu/holditem"
	"holdmenu/menu"
	"holdmenu/testing/harness"
	"holdmenu/testing/snapshot"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t     *testing.T
	h     *harness.Harness
	m     *home
	clock time.Time
	felt  map[haptic.Category]int
}

func newFixture(t *testing.T, cfg *config.Config, render bool) *fixture {
	t.Helper()
	return newSizedFixture(t, cfg, 80, 24, render)
}

func newSizedFixture(t *testing.T, cfg *config.Config, width, height int, render bool) *fixture {
	t.Helper()
	f := &fixture{t: t, clock: time.Unix(1_700_000_000, 0), felt: map[haptic.Category]int{}}
	f.m = newHome(context.Background(), cfg, haptic.TriggerFunc(func(c haptic.Category) { f.felt[c]++ }))
	f.m.now = func() time.Time { return f.clock }
	f.h = harness.New(t, f.m, width, height)
	if render {
		f.h.View()
	}
	return f
}

// advance runs frames until d has elapsed.
func (f *fixture) advance(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += anim.Frame {
		f.clock = f.clock.Add(anim.Frame)
		f.h.SendMsg(frameMsg(f.clock))
	}
}

func (f *fixture) hold(x, y int, d time.Duration) {
	f.h.Press(x, y)
	f.advance(d)
}

func (f *fixture) card(title string) *heldCard {
	f.t.Helper()
	for _, hc := range f.m.items {
		if hc.card.Title == title {
			return hc
		}
	}
	f.t.Fatalf("no card %q", title)
	return nil
}

func TestLayoutAt80x24(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)

	require.Len(t, f.m.items, len(demoCards))
	assert.Equal(t, geometry.Rect{X: 2, Y: 2, Width: 30, Height: 5}, f.card("Sunset").rect)
	assert.Equal(t, geometry.Rect{X: 34, Y: 14, Width: 30, Height: 5}, f.card("Harbour").rect)
	for _, hc := range f.m.items {
		assert.True(t, hc.onScreen, hc.card.Title)
	}

	view := f.h.View()
	assert.Equal(t, 24, snapshot.Lines(view))
	s := snapshot.New(t)
	s.AssertContains(view, "holdmenu")
	s.AssertContains(view, "hold · landscape")
	s.AssertRegionContains(view, f.card("Sunset").rect, "Sunset")
	s.AssertRegionContains(view, f.card("Sunset").rect, "hold for actions")
	s.AssertContains(view, "esc close menu")
}

func TestHoldOpensMenuAtCommonSizes(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		f := newSizedFixture(t, config.DefaultConfig(), size.Width, size.Height, true)
		r := f.card("Sunset").rect

		f.hold(r.X+1, r.Y+1, 500*time.Millisecond)
		require.True(t, f.m.menu.IsOpen())

		am := f.m.actionMenu(f.m.menu.Props.Get())
		b := am.Bounds(f.h.Width(), f.h.Height())
		assert.LessOrEqual(t, b.Bottom(), size.Height)
		snapshot.New(t).AssertRegionContains(f.h.View(), b, "Delete")
	})
}

func TestHoldOpensMenu(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	sunset := f.card("Sunset")

	f.hold(5, 3, 100*time.Millisecond)
	assert.False(t, f.m.menu.IsOpen(), "threshold not reached yet")

	f.advance(400 * time.Millisecond)
	require.True(t, f.m.menu.IsOpen())
	assert.True(t, sunset.item.IsActive())
	assert.Equal(t, sunset.item.Key(), f.m.menu.Owner())
	assert.Equal(t, 1, f.felt[haptic.ImpactLight])

	props := f.m.menu.Props.Get()
	assert.Equal(t, geometry.AnchorTopLeft, props.AnchorPosition)
	assert.Equal(t, 2, props.ItemY)
	assert.Equal(t, 0, props.TransformValue)

	view := f.h.View()
	s := snapshot.New(t)
	s.AssertRegionContains(view, geometry.Rect{X: 2, Y: 7, Width: 36, Height: 6}, "Edit")
	s.AssertRegionContains(view, geometry.Rect{X: 2, Y: 7, Width: 36, Height: 6}, "Delete")

	// Releasing after the menu opened leaves it open.
	f.h.Release(5, 3)
	f.advance(200 * time.Millisecond)
	assert.True(t, f.m.menu.IsOpen())
	assert.Equal(t, holditem.Active, sunset.item.Phase())
}

func TestReleaseBeforeThreshold(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)

	f.hold(5, 3, 100*time.Millisecond)
	f.h.Release(5, 3)
	f.advance(500 * time.Millisecond)

	assert.False(t, f.m.menu.IsOpen())
	assert.Equal(t, menu.StateIdle, f.m.menu.State.Get())
	assert.Equal(t, holditem.Resting, f.card("Sunset").item.Phase())
	assert.Zero(t, f.felt[haptic.ImpactLight])
	assert.False(t, f.m.ticking, "frames stop once nothing is in flight")
}

func TestDraggingOffCancels(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)

	f.hold(5, 3, 50*time.Millisecond)
	f.h.Motion(70, 20)
	f.advance(500 * time.Millisecond)

	assert.False(t, f.m.menu.IsOpen())
	assert.Nil(t, f.m.pressed)
}

func TestClickRowClosesMenu(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	f.hold(5, 3, 500*time.Millisecond)
	f.h.Release(5, 3)
	require.True(t, f.m.menu.IsOpen())

	f.h.Motion(10, 8)
	assert.Equal(t, 0, f.m.highlight)

	f.h.Press(10, 8)
	f.advance(300 * time.Millisecond)

	assert.Equal(t, menu.StateEnd, f.m.menu.State.Get())
	assert.False(t, f.card("Sunset").item.IsActive())
	assert.Equal(t, holditem.Resting, f.card("Sunset").item.Phase())
	assert.Equal(t, -1, f.m.highlight)
	snapshot.New(t).AssertNotContains(f.h.View(), "Delete")
}

func TestClickSeparatorKeepsMenuOpen(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	f.hold(5, 3, 500*time.Millisecond)
	f.h.Release(5, 3)

	f.h.Press(10, 10)
	assert.True(t, f.m.menu.IsOpen())
}

func TestClickOutsideClosesMenu(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	f.hold(5, 3, 500*time.Millisecond)
	f.h.Release(5, 3)

	// A click on another card closes the menu instead of starting a gesture.
	f.h.Press(40, 3)
	assert.False(t, f.m.menu.IsOpen())
	assert.Nil(t, f.m.pressed)
}

func TestEscClosesMenu(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	f.hold(5, 3, 500*time.Millisecond)
	f.h.Release(5, 3)

	f.h.SendSpecialKey(tea.KeyEsc)
	assert.Equal(t, menu.StateEnd, f.m.menu.State.Get())
}

func TestEscWhileHeldLeavesCardAtRest(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	sunset := f.card("Sunset")
	f.hold(5, 3, 500*time.Millisecond)
	require.True(t, f.m.menu.IsOpen())

	f.h.SendSpecialKey(tea.KeyEsc)
	f.advance(time.Second)

	assert.Equal(t, holditem.Resting, sunset.item.Phase())
	assert.InDelta(t, 1.0, sunset.item.Styles().Container.Scale, 1e-9)
	assert.False(t, f.m.driver.Active())
	assert.False(t, f.m.menu.IsOpen())
}

func TestPreviewTap(t *testing.T) {
	t.Run("ignored by default", func(t *testing.T) {
		f := newFixture(t, config.DefaultConfig(), true)
		f.hold(5, 3, 500*time.Millisecond)
		f.h.Release(5, 3)

		f.h.Press(5, 3)
		assert.True(t, f.m.menu.IsOpen())
	})

	t.Run("closes with close on tap", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.CloseOnTap = true
		f := newFixture(t, cfg, true)
		f.hold(5, 3, 500*time.Millisecond)
		f.h.Release(5, 3)

		f.h.Press(5, 3)
		assert.False(t, f.m.menu.IsOpen())
	})
}

func TestFramedPreviewCloseControl(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FramedPreview = true
	f := newFixture(t, cfg, true)

	sunset := f.card("Sunset")
	assert.Equal(t, 6, f.m.rects[sunset.item.PreviewRef()].Height)

	f.hold(5, 3, 500*time.Millisecond)
	f.h.Release(5, 3)
	require.True(t, f.m.menu.IsOpen())
	assert.Equal(t, 6, f.m.menu.Props.Get().ItemHeight)
	snapshot.New(t).AssertContains(f.h.View(), "✕ close")

	// The body of the preview does nothing without close on tap.
	f.h.Press(5, 4)
	assert.True(t, f.m.menu.IsOpen())

	f.h.Press(28, 2)
	assert.False(t, f.m.menu.IsOpen())
}

func TestTapOpensMenu(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ActivateOn = "tap"
	cfg.HapticFeedback = "Success"
	f := newFixture(t, cfg, true)

	f.h.Press(40, 3)
	f.advance(50 * time.Millisecond)
	f.h.Release(40, 3)
	f.advance(400 * time.Millisecond)

	require.True(t, f.m.menu.IsOpen())
	assert.Equal(t, f.card("Groceries").item.Key(), f.m.menu.Owner())
	assert.Equal(t, 1, f.felt[haptic.NotificationSuccess])
	snapshot.New(t).AssertContains(f.h.View(), "tap for actions")
}

func TestItemWithoutActionsNeverOpens(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	draft := f.card("Draft")

	f.hold(5, 15, 500*time.Millisecond)
	assert.False(t, f.m.menu.IsOpen())
	assert.Equal(t, menu.StateIdle, f.m.menu.State.Get())
	assert.Equal(t, holditem.Held, draft.item.Phase())

	f.h.Release(5, 15)
	f.advance(200 * time.Millisecond)
	assert.Equal(t, holditem.Resting, draft.item.Phase())
}

func TestBottomItemOpensAbove(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)

	f.hold(40, 15, 500*time.Millisecond)
	require.True(t, f.m.menu.IsOpen())
	assert.Equal(t, geometry.AnchorBottomRight, f.m.menu.Props.Get().AnchorPosition)

	am := f.m.actionMenu(f.m.menu.Props.Get())
	x, y := am.Origin(80, 24)
	assert.Equal(t, 28, x)
	assert.Equal(t, 10, y)
	snapshot.New(t).AssertRegionContains(f.h.View(), am.Bounds(80, 24), "Directions")
}

func TestAnchorOverrideFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AnchorPosition = "top-right"
	f := newFixture(t, cfg, true)

	f.hold(5, 3, 500*time.Millisecond)
	require.True(t, f.m.menu.IsOpen())
	assert.Equal(t, geometry.AnchorTopRight, f.m.menu.Props.Get().AnchorPosition)
}

func TestNothingMeasuredBeforeFirstFrame(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), false)

	f.hold(5, 3, 500*time.Millisecond)
	assert.False(t, f.m.menu.IsOpen())
	f.h.Release(5, 3)
	f.advance(200 * time.Millisecond)

	f.h.View()
	f.hold(5, 3, 500*time.Millisecond)
	assert.True(t, f.m.menu.IsOpen())
}

func TestResizeClosesMenu(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	f.hold(5, 3, 500*time.Millisecond)
	f.h.Release(5, 3)
	require.True(t, f.m.menu.IsOpen())

	f.h.Resize(120, 40)
	assert.Same(t, f.m, f.h.Model())
	assert.Equal(t, 120, f.h.Width())
	assert.False(t, f.m.menu.IsOpen())
	assert.Equal(t, 3, f.m.constraints.Columns)
}

func TestMinSizeWarning(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	f.h.Resize(30, 10)

	snapshot.New(t).AssertContains(f.h.View(), "Terminal too small")
	f.h.Press(5, 3)
	assert.Nil(t, f.m.pressed)
}

func TestHelpOverlay(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)

	f.h.SendKey("?")
	s := snapshot.New(t)
	s.AssertContains(f.h.View(), "Hold an item to open its actions.")
	s.AssertContains(f.h.View(), "haptic feedback: Medium")

	// Items do not take gestures under the help overlay.
	f.h.Press(5, 3)
	assert.Nil(t, f.m.pressed)

	f.h.SendSpecialKey(tea.KeyEsc)
	s.AssertNotContains(f.h.View(), "Hold an item to open its actions.")

	harness.NewKeySequence("?", "?").Play(f.h)
	assert.False(t, f.m.showHelp)
	f.h.Repeat(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, 3)
	assert.True(t, f.m.showHelp)
}

func TestQuit(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)

	cmd := f.h.SendKey("q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Zero(t, f.m.menu.State.Subscribers())
}

func TestInspectNode(t *testing.T) {
	f := newFixture(t, config.DefaultConfig(), true)
	assert.Len(t, f.m.InspectNode().Children, len(demoCards))

	f.hold(5, 3, 500*time.Millisecond)
	root := f.m.InspectNode()
	require.Len(t, root.Children, len(demoCards)+1)

	menuNode := root.Children[len(root.Children)-1]
	assert.Equal(t, "ActionMenu", menuNode.Type)
	assert.Equal(t, geometry.Rect{X: 2, Y: 7, Width: 36, Height: 6}, menuNode.Bounds)

	sunset := root.Children[0]
	assert.Equal(t, "active", sunset.State["phase"])
	assert.True(t, sunset.Children[0].Visible)

	text := f.m.snapshot().ToText()
	assert.Contains(t, text, "State: ACTIVE")
}
