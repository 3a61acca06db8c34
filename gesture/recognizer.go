// Package gesture turns raw press/release events into the active/finish
// callbacks that drive a held item, and decides which recognizer an item
// uses.
package gesture

import (
	"fmt"
	"strings"
	"time"
)

// Trigger selects the gesture that activates a held item.
type Trigger string

const (
	Hold      Trigger = "hold"
	Tap       Trigger = "tap"
	DoubleTap Trigger = "double-tap"
)

// ParseTrigger converts a config or flag value. Empty means Hold.
func ParseTrigger(s string) (Trigger, error) {
	switch t := Trigger(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return Hold, nil
	case Hold, Tap, DoubleTap:
		return t, nil
	default:
		return "", fmt.Errorf("invalid activation trigger %q (want hold, tap or double-tap)", s)
	}
}

// IsTap reports whether t is a tap-style trigger.
func (t Trigger) IsTap() bool {
	return t == Tap || t == DoubleTap
}

// Recognizer timing.
const (
	DefaultLongPressMinDuration = 150 * time.Millisecond
	TapMaxDuration              = 500 * time.Millisecond
	TapMaxDelay                 = 500 * time.Millisecond
)

// State of a recognizer between events.
type State int

const (
	Idle State = iota
	Began
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Began:
		return "began"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Handler receives recognizer callbacks. OnFinish fires once per gesture that
// got past Began, whether it ended in success, release, failure or cancel.
type Handler interface {
	OnActive()
	OnFinish()
}

// Recognizer consumes pointer events for one target. All methods run on the
// UI loop; Poll must be called regularly so time-based thresholds fire while
// no events arrive.
type Recognizer interface {
	Press(now time.Time)
	Release(now time.Time)
	Cancel(now time.Time)
	Poll(now time.Time)
	State() State
}

// LongPress activates once the pointer has been held for MinDuration and keeps
// reporting active on every poll until release.
type LongPress struct {
	MinDuration time.Duration

	handler   Handler
	state     State
	pressedAt time.Time
}

// NewLongPress creates a long-press recognizer. A non-positive minDuration
// uses the default.
func NewLongPress(minDuration time.Duration, h Handler) *LongPress {
	if minDuration <= 0 {
		minDuration = DefaultLongPressMinDuration
	}
	return &LongPress{MinDuration: minDuration, handler: h}
}

func (l *LongPress) Press(now time.Time) {
	if l.state != Idle {
		return
	}
	l.state = Began
	l.pressedAt = now
}

func (l *LongPress) Poll(now time.Time) {
	switch l.state {
	case Began:
		if now.Sub(l.pressedAt) >= l.MinDuration {
			l.state = Active
			l.handler.OnActive()
		}
	case Active:
		l.handler.OnActive()
	}
}

func (l *LongPress) Release(now time.Time) {
	if l.state == Began && now.Sub(l.pressedAt) >= l.MinDuration {
		l.state = Active
		l.handler.OnActive()
	}
	l.finish()
}

func (l *LongPress) Cancel(time.Time) {
	l.finish()
}

func (l *LongPress) State() State {
	return l.state
}

func (l *LongPress) finish() {
	if l.state == Idle {
		return
	}
	l.state = Idle
	l.handler.OnFinish()
}

// TapRecognizer activates after Taps quick taps. Each tap may last at most
// TapMaxDuration and consecutive taps may be at most TapMaxDelay apart.
type TapRecognizer struct {
	Taps int

	handler    Handler
	state      State
	pressed    bool
	count      int
	pressedAt  time.Time
	releasedAt time.Time
}

// NewTap creates a recognizer for n taps (at least one).
func NewTap(n int, h Handler) *TapRecognizer {
	if n < 1 {
		n = 1
	}
	return &TapRecognizer{Taps: n, handler: h}
}

func (t *TapRecognizer) Press(now time.Time) {
	if t.pressed {
		return
	}
	if t.state == Began && now.Sub(t.releasedAt) > TapMaxDelay {
		t.fail()
	}
	if t.state == Idle {
		t.state = Began
		t.count = 0
	}
	t.pressed = true
	t.pressedAt = now
}

func (t *TapRecognizer) Release(now time.Time) {
	if !t.pressed {
		return
	}
	t.pressed = false
	if now.Sub(t.pressedAt) > TapMaxDuration {
		t.fail()
		return
	}
	t.count++
	t.releasedAt = now
	if t.count < t.Taps {
		return
	}
	t.state = Active
	t.handler.OnActive()
	t.reset()
	t.handler.OnFinish()
}

func (t *TapRecognizer) Poll(now time.Time) {
	if t.state != Began {
		return
	}
	if t.pressed && now.Sub(t.pressedAt) > TapMaxDuration {
		t.fail()
		return
	}
	if !t.pressed && now.Sub(t.releasedAt) > TapMaxDelay {
		t.fail()
	}
}

func (t *TapRecognizer) Cancel(time.Time) {
	if t.state != Idle {
		t.fail()
	}
}

func (t *TapRecognizer) State() State {
	return t.state
}

func (t *TapRecognizer) fail() {
	t.reset()
	t.handler.OnFinish()
}

func (t *TapRecognizer) reset() {
	t.state = Idle
	t.pressed = false
	t.count = 0
}
