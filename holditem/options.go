package holditem

import (
	"fmt"
	"holdmenu/geometry"
	"holdmenu/gesture"
	"holdmenu/haptic"
	"holdmenu/menu"
	"time"
)

// Preview wraps the floating copy of a held item. close ends the open menu and
// may be bound to a control inside the wrapper.
type Preview func(content string, close func()) string

// Passthrough is the default Preview: the content unchanged.
func Passthrough(content string, _ func()) string {
	return content
}

// Options configure one held item.
type Options struct {
	// Items are the rows of the item's menu. An empty list plays the press
	// animation but never opens a menu.
	Items []menu.Item
	// Bottom makes the computed transform origin a bottom corner.
	Bottom bool
	// DisableMove keeps the preview over the item instead of moving it on
	// screen.
	DisableMove bool
	// AnchorOverride pins the transform origin.
	AnchorOverride geometry.Anchor
	// ActivateOn selects the gesture. Empty means hold.
	ActivateOn gesture.Trigger
	// Haptic is the feedback severity on activation. Empty means the default;
	// haptic.None disables feedback.
	Haptic haptic.Mode
	// ActionParams are passed through to the menu renderer.
	ActionParams menu.ActionParams
	// CloseOnTap closes the menu when the preview itself is tapped.
	CloseOnTap bool
	// LongPressMinDuration is the hold threshold. Zero means the default.
	LongPressMinDuration time.Duration
	// AnchorEdge lines the preview up with the item's top or bottom edge.
	AnchorEdge geometry.Edge
	// Preview wraps the floating copy. Nil means Passthrough.
	Preview Preview
}

func (o Options) withDefaults() Options {
	if o.ActivateOn == "" {
		o.ActivateOn = gesture.Hold
	}
	if o.Haptic == "" {
		o.Haptic = haptic.DefaultMode
	}
	if o.LongPressMinDuration <= 0 {
		o.LongPressMinDuration = gesture.DefaultLongPressMinDuration
	}
	if o.AnchorEdge == "" {
		o.AnchorEdge = geometry.EdgeTop
	}
	if o.Preview == nil {
		o.Preview = Passthrough
	}
	if o.ActionParams == nil {
		o.ActionParams = menu.ActionParams{}
	}
	return o
}

// Validate reports options that cannot be honoured.
func (o Options) Validate() error {
	if o.AnchorOverride != "" && !o.AnchorOverride.Valid() {
		return fmt.Errorf("invalid anchor override %q", o.AnchorOverride)
	}
	if _, err := gesture.ParseTrigger(string(o.ActivateOn)); err != nil {
		return err
	}
	if _, err := haptic.ParseMode(string(o.Haptic)); err != nil {
		return err
	}
	if _, err := geometry.ParseEdge(string(o.AnchorEdge)); err != nil {
		return err
	}
	if o.LongPressMinDuration < 0 {
		return fmt.Errorf("long press duration must not be negative, got %s", o.LongPressMinDuration)
	}
	return nil
}

// isHold reports whether the item activates on a long press.
func (o Options) isHold() bool {
	return !o.ActivateOn.IsTap()
}
