// Package signal provides Value[T], an observable value used to push state
// changes to whoever renders them.
//
// Value[T] wraps a value and notifies subscribers when it is set. It replaces
// polling: placement, animation and lifecycle state publish through values
// and the rendering layer subscribes to the ones it draws from.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set() and Update() must only be called from the UI loop
//   - Subscribers run synchronously inside Set(), in subscription order
//
// Example usage:
//
//	state := signal.New(menu.StateIdle)
//	unsubscribe := state.Subscribe(func(s menu.State) {
//	    if s == menu.StateEnd { ... }
//	})
//	defer unsubscribe()
//	state.Set(menu.StateEnd)
package signal

import (
	"sync"
	"sync/atomic"
)

// Unsubscribe removes a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

type subscriber[T any] struct {
	fn     func(T)
	active atomic.Bool
}

// Value is an observable value of type T.
type Value[T any] struct {
	mu   sync.RWMutex
	v    T
	subs []*subscriber[T]
}

// New creates a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (s *Value[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set stores v and notifies every subscriber, even if v equals the previous
// value. Subscribers that need edge detection compare against their own copy.
func (s *Value[T]) Set(v T) {
	s.mu.Lock()
	s.v = v
	// Drop unsubscribed entries and snapshot the rest so subscribers may
	// subscribe or unsubscribe while being notified.
	active := make([]*subscriber[T], 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.active.Load() {
			active = append(active, sub)
		}
	}
	s.subs = active
	snapshot := make([]*subscriber[T], len(active))
	copy(snapshot, active)
	s.mu.Unlock()

	for _, sub := range snapshot {
		if sub.active.Load() {
			sub.fn(v)
		}
	}
}

// Update sets the value to fn(current).
func (s *Value[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Subscribe registers fn to run after every Set. It does not fire for the
// current value.
func (s *Value[T]) Subscribe(fn func(T)) Unsubscribe {
	sub := &subscriber[T]{fn: fn}
	sub.active.Store(true)

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		sub.active.Store(false)
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Value[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sub := range s.subs {
		if sub.active.Load() {
			n++
		}
	}
	return n
}
