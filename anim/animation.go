package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Animation describes how a Value moves to a target. It is a plan; it starts
// running when handed to Value.Animate and always starts from the value's
// current position.
type Animation interface {
	start(from float64) runner
}

type runner interface {
	// step advances by dt and returns the new value and whether the
	// animation has reached its end.
	step(dt time.Duration) (float64, bool)
}

// Timing moves to `to` over d with ease-in-out quad easing. A zero duration
// jumps on the next frame.
func Timing(to float64, d time.Duration) Animation {
	return timing{to: to, duration: d}
}

type timing struct {
	to       float64
	duration time.Duration
}

func (t timing) start(from float64) runner {
	return &timingRunner{timing: t, from: from}
}

type timingRunner struct {
	timing
	from    float64
	elapsed time.Duration
}

func (r *timingRunner) step(dt time.Duration) (float64, bool) {
	r.elapsed += dt
	if r.duration <= 0 || r.elapsed >= r.duration {
		return r.to, true
	}
	p := easeInOutQuad(float64(r.elapsed) / float64(r.duration))
	return r.from + (r.to-r.from)*p, false
}

func easeInOutQuad(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - math.Pow(-2*p+2, 2)/2
}

// Delay holds the current value for d, then runs a.
func Delay(d time.Duration, a Animation) Animation {
	return delay{wait: d, next: a}
}

type delay struct {
	wait time.Duration
	next Animation
}

func (d delay) start(from float64) runner {
	return &delayRunner{delay: d, from: from}
}

type delayRunner struct {
	delay
	from    float64
	elapsed time.Duration
	inner   runner
}

func (r *delayRunner) step(dt time.Duration) (float64, bool) {
	if r.inner != nil {
		return r.inner.step(dt)
	}
	r.elapsed += dt
	if r.elapsed < r.wait {
		return r.from, false
	}
	r.inner = r.next.start(r.from)
	return r.inner.step(r.elapsed - r.wait)
}

// Sequence runs animations one after another, each starting where the
// previous one ended.
func Sequence(animations ...Animation) Animation {
	return sequence(animations)
}

type sequence []Animation

func (s sequence) start(from float64) runner {
	r := &sequenceRunner{steps: s, value: from}
	if len(s) > 0 {
		r.current = s[0].start(from)
	}
	return r
}

type sequenceRunner struct {
	steps   []Animation
	index   int
	current runner
	value   float64
}

func (r *sequenceRunner) step(dt time.Duration) (float64, bool) {
	if r.current == nil {
		return r.value, true
	}
	v, done := r.current.step(dt)
	r.value = v
	if !done {
		return v, false
	}
	r.index++
	if r.index >= len(r.steps) {
		r.current = nil
		return v, true
	}
	r.current = r.steps[r.index].start(v)
	return v, false
}

// SpringConfig describes a damped spring in physical terms.
type SpringConfig struct {
	Damping   float64
	Mass      float64
	Stiffness float64
	// RestDisplacement and RestSpeed decide when the spring has settled.
	RestDisplacement float64
	RestSpeed        float64
}

// DefaultSpring is the settle spring used for the preview's translation.
var DefaultSpring = SpringConfig{
	Damping:          33,
	Mass:             1.03,
	Stiffness:        500,
	RestDisplacement: 0.001,
	RestSpeed:        0.001,
}

// Spring moves to `to` following cfg, stepped at the driver's frame rate.
func Spring(to float64, cfg SpringConfig) Animation {
	return spring{to: to, cfg: cfg}
}

type spring struct {
	to  float64
	cfg SpringConfig
}

func (s spring) start(from float64) runner {
	angular := math.Sqrt(s.cfg.Stiffness / s.cfg.Mass)
	ratio := s.cfg.Damping / (2 * math.Sqrt(s.cfg.Stiffness*s.cfg.Mass))
	return &springRunner{
		spring: s,
		model:  harmonica.NewSpring(Frame.Seconds(), angular, ratio),
		pos:    from,
	}
}

type springRunner struct {
	spring
	model harmonica.Spring
	pos   float64
	vel   float64
	acc   time.Duration
}

// maxSpringFrames bounds a single step so a stalled loop cannot spin.
const maxSpringFrames = 600

func (r *springRunner) step(dt time.Duration) (float64, bool) {
	r.acc += dt
	for frames := 0; r.acc >= Frame && frames < maxSpringFrames; frames++ {
		r.pos, r.vel = r.model.Update(r.pos, r.vel, r.to)
		r.acc -= Frame
	}
	if math.Abs(r.pos-r.to) < r.cfg.RestDisplacement && math.Abs(r.vel) < r.cfg.RestSpeed {
		return r.to, true
	}
	return r.pos, false
}
