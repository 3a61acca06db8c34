package gesture

import (
	"holdmenu/log"
	"time"
)

// Target is what a binding drives: a handler that can also tell whether one of
// its animations is still settling.
type Target interface {
	Handler
	AnimationInProgress() bool
	Key() string
}

// Bind returns the recognizer for trigger, wired to target. Tap-style triggers
// skip activation work while the target is still animating, so repeated taps
// cannot stack animations; a single continuous hold cannot re-trigger and is
// not gated.
func Bind(trigger Trigger, minDuration time.Duration, target Target) Recognizer {
	g := &gate{trigger: trigger, target: target}
	switch trigger {
	case DoubleTap:
		return NewTap(2, g)
	case Tap:
		return NewTap(1, g)
	default:
		return NewLongPress(minDuration, g)
	}
}

type gate struct {
	trigger Trigger
	target  Target
}

func (g *gate) OnActive() {
	if g.trigger.IsTap() && g.target.AnimationInProgress() {
		log.GestureTrace(g.target.Key(), "%s ignored: animation in progress", g.trigger)
		return
	}
	g.target.OnActive()
}

func (g *gate) OnFinish() {
	g.target.OnFinish()
}
