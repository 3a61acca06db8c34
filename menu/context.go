// Package menu holds the state shared by every held item and the menu
// renderer: the global lifecycle, the placement snapshot of the open menu,
// and the safe-area insets.
package menu

import (
	"holdmenu/geometry"
	"holdmenu/log"
	"holdmenu/signal"
	"sync"
)

// State is the global menu lifecycle. Only one menu may be open at a time.
type State int

const (
	// StateIdle is the state before any menu has been opened.
	StateIdle State = iota
	// StateActive means a menu is open.
	StateActive
	// StateEnd means the open menu was closed.
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateActive:
		return "ACTIVE"
	case StateEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// Item is one row of the action menu.
type Item struct {
	Text          string `json:"text"`
	Icon          string `json:"icon,omitempty"`
	WithSeparator bool   `json:"with_separator,omitempty"`
	IsTitle       bool   `json:"is_title,omitempty"`
	IsDestructive bool   `json:"is_destructive,omitempty"`
	Disabled      bool   `json:"disabled,omitempty"`
}

// Height returns the menu height for items, counting separators.
func Height(items []Item) int {
	separators := 0
	for _, it := range items {
		if it.WithSeparator {
			separators++
		}
	}
	return geometry.MenuHeight(len(items), separators)
}

// ActionParams are caller-supplied arguments keyed by item text, handed to
// the renderer untouched.
type ActionParams map[string][]any

// Props is the placement snapshot the renderer draws the open menu from.
// Every field comes from the same measurement.
type Props struct {
	ItemHeight     int             `json:"item_height"`
	ItemWidth      int             `json:"item_width"`
	ItemX          int             `json:"item_x"`
	ItemY          int             `json:"item_y"`
	AnchorPosition geometry.Anchor `json:"anchor_position"`
	MenuHeight     int             `json:"menu_height"`
	Items          []Item          `json:"items"`
	TransformValue int             `json:"transform_value"`
	ActionParams   ActionParams    `json:"action_params"`
}

// Empty reports whether nothing has been published yet.
func (p Props) Empty() bool {
	return p.ItemWidth == 0 && p.ItemHeight == 0 && len(p.Items) == 0
}

// PreviewRect is where the active preview sits once translated.
func (p Props) PreviewRect() geometry.Rect {
	return geometry.Rect{X: p.ItemX, Y: p.ItemY + p.TransformValue, Width: p.ItemWidth, Height: p.ItemHeight}
}

// Context is created once per screen and passed by reference to every held
// item and to the renderer.
//
// Writers: only the item running an activation cycle publishes Props and
// moves State to ACTIVE. Exclusion between items is advisory; the renderer is
// expected to stop routing gestures to items while a menu is open. A second
// writer is logged and wins.
type Context struct {
	State  *signal.Value[State]
	Props  *signal.Value[Props]
	Insets *signal.Value[geometry.Insets]
	Items  *signal.Value[[]Item]

	mu    sync.Mutex
	owner string
}

// NewContext creates a context in the IDLE state.
func NewContext(insets geometry.Insets) *Context {
	return &Context{
		State:  signal.New(StateIdle),
		Props:  signal.New(Props{}),
		Insets: signal.New(insets),
		Items:  signal.New([]Item(nil)),
	}
}

// Publish stores a placement snapshot on behalf of owner.
func (c *Context) Publish(owner string, props Props) {
	c.mu.Lock()
	previous := c.owner
	c.owner = owner
	c.mu.Unlock()

	if previous != "" && previous != owner && c.State.Get() == StateActive {
		log.WarningLog.Printf("menu props from %s replaced props of open menu owned by %s", owner, previous)
	}
	log.LayoutTrace("publish owner=%s anchor=%s y=%d tY=%d menuHeight=%d",
		owner, props.AnchorPosition, props.ItemY, props.TransformValue, props.MenuHeight)
	c.Props.Set(props)
}

// Activate opens the menu for owner.
func (c *Context) Activate(owner string) {
	c.mu.Lock()
	current := c.owner
	c.mu.Unlock()
	if current != owner {
		log.WarningLog.Printf("%s opened the menu but the published props belong to %s", owner, current)
	}
	c.State.Set(StateActive)
}

// Close ends the open menu. Every mounted item observes the transition.
func (c *Context) Close() {
	c.State.Set(StateEnd)
}

// IsOpen reports whether a menu is currently open.
func (c *Context) IsOpen() bool {
	return c.State.Get() == StateActive
}

// Owner returns the key of the item that last published props.
func (c *Context) Owner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner
}

// SetItems records the item list most recently configured on an item.
func (c *Context) SetItems(items []Item) {
	c.Items.Set(items)
}
