// Package anim is the animation context. Every animated value is stepped by a
// Driver, and completion callbacks run inside Driver.Advance. Code that must
// run on the UI loop instead (haptics, anything touching the terminal) is
// handed over through the MainQueue, the only crossing between the two.
package anim

import (
	"holdmenu/log"
	"holdmenu/signal"
	"sync"
	"time"
)

// Frame is the step the driver is expected to be advanced by.
const Frame = time.Second / 60

// Driver steps animated values.
type Driver struct {
	values []*Value
	queue  *MainQueue
}

// NewDriver creates a driver with an empty main queue.
func NewDriver() *Driver {
	return &Driver{queue: &MainQueue{}}
}

// NewValue creates a value stepped by d.
func (d *Driver) NewValue(initial float64) *Value {
	v := &Value{cur: initial, changes: signal.New(initial)}
	d.values = append(d.values, v)
	return v
}

// Release stops stepping v. Its running animation, if any, is dropped without
// a callback.
func (d *Driver) Release(v *Value) {
	for i, existing := range d.values {
		if existing == v {
			d.values = append(d.values[:i], d.values[i+1:]...)
			break
		}
	}
	v.run = nil
	v.onDone = nil
}

// Advance moves every running animation forward by dt and fires completion
// callbacks for those that finished. It returns true while anything is still
// running.
func (d *Driver) Advance(dt time.Duration) bool {
	values := make([]*Value, len(d.values))
	copy(values, d.values)

	for _, v := range values {
		v.step(dt)
	}
	return d.Active()
}

// Active reports whether any value is animating.
func (d *Driver) Active() bool {
	for _, v := range d.values {
		if v.run != nil {
			return true
		}
	}
	return false
}

// Queue returns the queue drained by the UI loop.
func (d *Driver) Queue() *MainQueue {
	return d.queue
}

// RunOnMain schedules fn on the UI loop.
func (d *Driver) RunOnMain(fn func()) {
	d.queue.Post(fn)
}

// MainQueue carries work from the animation context to the UI loop.
type MainQueue struct {
	mu  sync.Mutex
	fns []func()
}

// Post appends fn. Safe from any goroutine.
func (q *MainQueue) Post(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.fns = append(q.fns, fn)
}

// Drain removes and returns everything posted so far, oldest first.
func (q *MainQueue) Drain() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	fns := q.fns
	q.fns = nil
	return fns
}

// Len returns the number of pending functions.
func (q *MainQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.fns)
}

// Value is an animated number. It is owned by the animation context: read it
// anywhere, but only start animations from the UI loop or from completion
// callbacks.
type Value struct {
	cur     float64
	run     runner
	onDone  func(finished bool)
	changes *signal.Value[float64]
}

// Get returns the current value.
func (v *Value) Get() float64 {
	return v.cur
}

// Set jumps to x, cancelling any running animation.
func (v *Value) Set(x float64) {
	v.cancel()
	v.update(x)
}

// Animate starts a. A running animation is cancelled first and its callback
// receives finished=false. onDone may be nil.
func (v *Value) Animate(a Animation, onDone func(finished bool)) {
	v.cancel()
	v.run = a.start(v.cur)
	v.onDone = onDone
}

// Running reports whether an animation is in flight.
func (v *Value) Running() bool {
	return v.run != nil
}

// Subscribe registers fn to run whenever the value changes.
func (v *Value) Subscribe(fn func(float64)) signal.Unsubscribe {
	return v.changes.Subscribe(fn)
}

func (v *Value) cancel() {
	if v.run == nil {
		return
	}
	cb := v.onDone
	v.run = nil
	v.onDone = nil
	if cb != nil {
		log.AnimationTrace("cancelled at %.3f", v.cur)
		cb(false)
	}
}

func (v *Value) update(x float64) {
	if x == v.cur {
		return
	}
	v.cur = x
	v.changes.Set(x)
}

func (v *Value) step(dt time.Duration) {
	if v.run == nil {
		return
	}
	run := v.run
	x, done := run.step(dt)
	v.update(x)
	// A subscriber may have replaced the animation while being notified.
	if !done || v.run != run {
		return
	}
	cb := v.onDone
	v.run = nil
	v.onDone = nil
	if cb != nil {
		cb(true)
	}
}
