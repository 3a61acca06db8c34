package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetNotifiesInOrder(t *testing.T) {
	v := New(0)
	var calls []string

	v.Subscribe(func(n int) { calls = append(calls, "first") })
	v.Subscribe(func(n int) { calls = append(calls, "second") })

	v.Set(3)

	assert.Equal(t, 3, v.Get())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestSubscribeDoesNotFireForCurrentValue(t *testing.T) {
	v := New("idle")
	fired := false
	v.Subscribe(func(string) { fired = true })
	assert.False(t, fired)
}

func TestUnsubscribe(t *testing.T) {
	v := New(0)
	count := 0
	unsubscribe := v.Subscribe(func(int) { count++ })

	v.Set(1)
	unsubscribe()
	unsubscribe()
	v.Set(2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, v.Subscribers())
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	v := New(0)
	var second int
	var unsubscribeSecond Unsubscribe

	v.Subscribe(func(int) { unsubscribeSecond() })
	unsubscribeSecond = v.Subscribe(func(n int) { second = n })

	v.Set(5)
	assert.Equal(t, 0, second, "subscriber removed mid-notification must not run")
}

func TestSubscribeDuringNotification(t *testing.T) {
	v := New(0)
	late := 0
	v.Subscribe(func(int) {
		v.Subscribe(func(n int) { late = n })
	})

	v.Set(1)
	assert.Equal(t, 0, late, "subscriber added mid-notification waits for the next Set")
	v.Set(2)
	assert.Equal(t, 2, late)
}

func TestUpdate(t *testing.T) {
	v := New(2)
	v.Update(func(n int) int { return n * 10 })
	assert.Equal(t, 20, v.Get())
}
