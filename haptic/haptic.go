// Package haptic maps the feedback severity a held item asks for onto the
// feedback a terminal can actually produce.
package haptic

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Mode is the severity requested by a held item.
type Mode string

const (
	Selection Mode = "Selection"
	Light     Mode = "Light"
	Medium    Mode = "Medium"
	Heavy     Mode = "Heavy"
	Success   Mode = "Success"
	Warning   Mode = "Warning"
	Error     Mode = "Error"
	None      Mode = "None"
)

// DefaultMode is used when an item does not specify one.
const DefaultMode = Medium

var modes = []Mode{Selection, Light, Medium, Heavy, Success, Warning, Error, None}

// ParseMode converts a config or flag value to a Mode, case-insensitively.
// The empty string is the default mode.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMode, nil
	}
	for _, m := range modes {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid haptic feedback %q", s)
}

// Category is the physical feedback actually produced.
type Category int

const (
	Soft Category = iota
	ImpactLight
	NotificationSuccess
)

func (c Category) String() string {
	switch c {
	case Soft:
		return "soft"
	case ImpactLight:
		return "impactLight"
	case NotificationSuccess:
		return "notificationSuccess"
	default:
		return "unknown"
	}
}

// Categorize maps a mode to its category. ok is false for None. An empty mode
// is treated as the default.
func Categorize(m Mode) (c Category, ok bool) {
	if m == "" {
		m = DefaultMode
	}
	switch m {
	case Selection:
		return Soft, true
	case Light, Medium, Heavy:
		return ImpactLight, true
	case Success, Warning, Error:
		return NotificationSuccess, true
	default:
		return 0, false
	}
}

// Trigger produces feedback. Implementations run on the UI loop.
type Trigger interface {
	Trigger(c Category)
}

// TriggerFunc adapts a function to Trigger.
type TriggerFunc func(c Category)

// Trigger calls f(c).
func (f TriggerFunc) Trigger(c Category) {
	f(c)
}

// Bell is the terminal's feedback: a BEL for impacts and notifications, and a
// brief reverse-video flash of the screen for notifications. Soft feedback is
// silent on a terminal and only counted.
type Bell struct {
	mu     sync.Mutex
	out    *termenv.Output
	counts map[Category]int
}

// NewBell writes feedback to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{
		out:    termenv.NewOutput(w),
		counts: make(map[Category]int),
	}
}

// Trigger implements Trigger.
func (b *Bell) Trigger(c Category) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts[c]++

	switch c {
	case ImpactLight:
		_, _ = io.WriteString(b.out, "\a")
	case NotificationSuccess:
		_, _ = io.WriteString(b.out, "\a")
		b.out.ReverseVideo()
		b.out.NormalVideo()
	}
}

// Count returns how many times c has been triggered.
func (b *Bell) Count(c Category) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[c]
}
