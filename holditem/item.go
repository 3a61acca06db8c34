// Package holditem is the activation state machine of a held item: it turns
// gesture callbacks into a measured, published and animated contextual menu
// activation, and exposes the animated styles the renderer draws the item and
// its floating preview with.
package holditem

import (
	"holdmenu/anim"
	"holdmenu/geometry"
	"holdmenu/gesture"
	"holdmenu/haptic"
	"holdmenu/log"
	"holdmenu/menu"
	"holdmenu/placement"
	"holdmenu/signal"
	"time"

	"github.com/google/uuid"
)

// Animation timings.
const (
	TransformDuration = 150 * time.Millisecond
	ScaleDownDuration = 210 * time.Millisecond
	HideDuration      = 100 * time.Millisecond
	ScaleDownValue    = 0.95
	ScaleBackDuration = TransformDuration / 2
)

// Phase is the local position of an item in its activation cycle.
type Phase int

const (
	// Resting is the idle phase.
	Resting Phase = iota
	// Measured means this press cycle has measured and published placement.
	Measured
	// ScalingDown means a hold is shrinking the item.
	ScalingDown
	// Settling means a tap is playing its down-then-up sequence.
	Settling
	// Held means the scale-down finished without opening a menu.
	Held
	// Active means this item's menu is open.
	Active
	// ScalingBack means the item is returning to full size after a release.
	ScalingBack
)

func (p Phase) String() string {
	switch p {
	case Resting:
		return "resting"
	case Measured:
		return "measured"
	case ScalingDown:
		return "scaling-down"
	case Settling:
		return "settling"
	case Held:
		return "held"
	case Active:
		return "active"
	case ScalingBack:
		return "scaling-back"
	default:
		return "unknown"
	}
}

// Item is one held item. Every method runs on the UI loop; animation callbacks
// run inside anim.Driver.Advance, which the UI loop also calls.
type Item struct {
	key    string
	opts   Options
	ctx    *menu.Context
	driver *anim.Driver
	engine *placement.Engine
	env    placement.Environment
	haptic haptic.Trigger
	recog  gesture.Recognizer

	phase Phase
	// active is the local active flag. It is only true while the global state
	// is ACTIVE and this item opened the menu.
	active bool
	// didMeasure is set once measurement succeeded in the current press
	// cycle and cleared when the gesture finishes.
	didMeasure bool
	// animationStarted gates tap-style activations while the tap sequence is
	// still playing.
	animationStarted bool
	// published is set once props were published in the current activation
	// cycle; promotion requires it.
	published bool
	// pressDone is set once the hold's press animation has run in the current
	// press cycle, or the menu it opened was closed while still held. The
	// long press keeps reporting active on every poll; none of those may
	// start another scale-down.
	pressDone bool

	scale          *anim.Value
	activeScale    *anim.Value
	containerAlpha *anim.Value
	previewAlpha   *anim.Value
	translateY     *anim.Value

	styles *signal.Value[Styles]
	unsubs []signal.Unsubscribe
}

// New creates an item bound to the shared context. measurer and env feed its
// placement engine; feedback receives haptic categories on the UI loop.
func New(ctx *menu.Context, driver *anim.Driver, measurer placement.Measurer, env placement.Environment, feedback haptic.Trigger, opts Options) *Item {
	opts = opts.withDefaults()
	key := "hold-item-" + uuid.NewString()

	i := &Item{
		key:    key,
		opts:   opts,
		ctx:    ctx,
		driver: driver,
		env:    env,
		haptic: feedback,
	}
	i.engine = placement.NewEngine(placement.Config{
		Container:      i.ContainerRef(),
		Preview:        i.PreviewRef(),
		AnchorOverride: opts.AnchorOverride,
		Edge:           opts.AnchorEdge,
		NearBottom:     opts.Bottom,
		DisableMove:    opts.DisableMove,
	}, measurer, env)
	i.engine.SetMenuHeight(menu.Height(opts.Items))

	i.scale = driver.NewValue(1)
	i.activeScale = driver.NewValue(1)
	i.containerAlpha = driver.NewValue(1)
	i.previewAlpha = driver.NewValue(0)
	i.translateY = driver.NewValue(0)
	i.styles = signal.New(Styles{})
	i.emit()

	for _, v := range []*anim.Value{i.scale, i.activeScale, i.containerAlpha, i.previewAlpha, i.translateY} {
		i.unsubs = append(i.unsubs, v.Subscribe(func(float64) { i.emit() }))
	}
	i.unsubs = append(i.unsubs,
		ctx.State.Subscribe(i.onState),
		ctx.Insets.Subscribe(func(geometry.Insets) { i.Relayout() }),
	)

	i.recog = gesture.Bind(opts.ActivateOn, opts.LongPressMinDuration, i)
	ctx.SetItems(opts.Items)
	return i
}

// Key returns the item's unique key.
func (i *Item) Key() string {
	return i.key
}

// ContainerRef names the item in the regular layout.
func (i *Item) ContainerRef() placement.Ref {
	return placement.Ref(i.key + "/container")
}

// PreviewRef names the floating preview.
func (i *Item) PreviewRef() placement.Ref {
	return placement.Ref(i.key + "/preview")
}

// Recognizer returns the gesture recognizer bound to the item.
func (i *Item) Recognizer() gesture.Recognizer {
	return i.recog
}

// Options returns the item's effective options.
func (i *Item) Options() Options {
	return i.opts
}

// Engine returns the item's placement engine.
func (i *Item) Engine() *placement.Engine {
	return i.engine
}

// Phase returns the current phase.
func (i *Item) Phase() Phase {
	return i.phase
}

// IsActive reports the local active flag.
func (i *Item) IsActive() bool {
	return i.active
}

// AnimationInProgress reports whether a tap sequence is still playing.
func (i *Item) AnimationInProgress() bool {
	return i.animationStarted
}

// OnActive handles the gesture's active callback. The first call of a press
// cycle measures and publishes placement; later calls retry measurement
// until it succeeds. Unless the item is already active, the press animation
// starts, and its completion promotes the item.
func (i *Item) OnActive() {
	if !i.didMeasure {
		if i.engine.Activate() {
			i.ctx.Publish(i.key, i.engine.Snapshot(i.opts.Items, i.opts.ActionParams))
			i.didMeasure = true
			i.published = true
			if !i.pressAnimating() {
				i.setPhase(Measured)
			}
			i.emit()
		} else {
			if !i.active {
				i.published = false
			}
			log.GestureTrace(i.key, "measurement not ready, retrying on next tick")
		}
	}

	if i.active || i.pressDone {
		return
	}
	if i.pressAnimating() {
		return
	}

	if i.opts.isHold() {
		i.scaleHold()
	} else {
		i.scaleTap()
	}
}

// OnFinish handles release or cancel of the gesture.
func (i *Item) OnFinish() {
	i.didMeasure = false
	i.pressDone = false
	if i.opts.isHold() {
		i.scaleBack()
	}
}

func (i *Item) pressAnimating() bool {
	return i.scale.Running() && (i.phase == ScalingDown || i.phase == Settling)
}

func (i *Item) scaleHold() {
	i.setPhase(ScalingDown)
	i.scale.Animate(anim.Timing(ScaleDownValue, ScaleDownDuration), i.onCompletion)
}

func (i *Item) scaleTap() {
	i.animationStarted = true
	i.setPhase(Settling)
	i.scale.Animate(anim.Sequence(
		anim.Timing(ScaleDownValue, ScaleDownDuration),
		anim.Timing(1, ScaleBackDuration),
	), i.onCompletion)
}

func (i *Item) scaleBack() {
	if !i.active {
		i.setPhase(ScalingBack)
	}
	i.scale.Animate(anim.Timing(1, ScaleBackDuration), func(finished bool) {
		if finished && i.phase == ScalingBack {
			i.setPhase(Resting)
		}
	})
}

// onCompletion runs in the animation context when the press animation ends.
func (i *Item) onCompletion(finished bool) {
	i.animationStarted = false

	if !finished {
		return
	}
	if i.opts.isHold() {
		i.pressDone = true
	}
	if len(i.opts.Items) == 0 {
		log.GestureTrace(i.key, "press animation finished with no menu items; menu not opened")
		i.settleWithoutMenu()
		return
	}
	if !i.published {
		log.GestureTrace(i.key, "press animation finished before placement was published; menu not opened")
		i.settleWithoutMenu()
		return
	}

	i.ctx.Activate(i.key)
	i.setActive(true)
	i.scaleBack()

	if c, ok := haptic.Categorize(i.opts.Haptic); ok && i.haptic != nil {
		feedback := i.haptic
		i.driver.RunOnMain(func() { feedback.Trigger(c) })
	}
}

func (i *Item) settleWithoutMenu() {
	if i.opts.isHold() {
		i.setPhase(Held)
		return
	}
	i.setPhase(Resting)
}

// onState reacts to the global lifecycle. Every mounted item observes END;
// only the one whose local flag was set resets.
func (i *Item) onState(s menu.State) {
	if s != menu.StateEnd {
		return
	}
	wasActive := i.active
	if !wasActive {
		return
	}
	i.published = false
	if i.opts.isHold() && i.recog != nil && i.recog.State() == gesture.Active {
		i.pressDone = true
	}
	i.setActive(false)
	i.setPhase(Resting)
}

// Close drives the global state to END.
func (i *Item) Close() {
	i.ctx.Close()
}

// PreviewTap handles a tap on the floating preview.
func (i *Item) PreviewTap() {
	if i.opts.CloseOnTap {
		i.Close()
	}
}

// RenderPreview wraps content with the item's preview wrapper.
func (i *Item) RenderPreview(content string) string {
	return i.opts.Preview(content, i.Close)
}

// SetItems replaces the menu rows and mirrors them into the shared context.
func (i *Item) SetItems(items []menu.Item) {
	i.opts.Items = items
	i.engine.SetMenuHeight(menu.Height(items))
	i.ctx.SetItems(items)
	i.emit()
}

// Dispose releases the item's animated values and subscriptions.
func (i *Item) Dispose() {
	for _, u := range i.unsubs {
		u()
	}
	i.unsubs = nil
	for _, v := range []*anim.Value{i.scale, i.activeScale, i.containerAlpha, i.previewAlpha, i.translateY} {
		i.driver.Release(v)
	}
}

func (i *Item) setPhase(p Phase) {
	if i.phase == p {
		return
	}
	log.GestureTrace(i.key, "%s -> %s", i.phase, p)
	i.phase = p
}

// setActive flips the local flag and restarts the style animations that
// depend on it.
func (i *Item) setActive(active bool) {
	if i.active == active {
		return
	}
	i.active = active
	if active {
		i.setPhase(Active)
		i.containerAlpha.Set(0)
		i.previewAlpha.Set(1)
		i.activeScale.Set(i.scale.Get())
		i.activeScale.Animate(anim.Timing(1, TransformDuration), nil)
	} else {
		i.containerAlpha.Animate(anim.Delay(TransformDuration, anim.Timing(1, 0)), nil)
		i.previewAlpha.Animate(anim.Delay(TransformDuration, anim.Timing(0, HideDuration)), nil)
	}
	i.retarget()
	i.emit()
}

// retarget points the preview translation at its current target.
func (i *Item) retarget() {
	switch {
	case i.engine.DisableMove():
		i.translateY.Set(0)
	case i.active:
		i.translateY.Animate(anim.Spring(float64(i.engine.TransformValue().TY), anim.DefaultSpring), nil)
	case i.translateY.Get() != 0 || i.translateY.Running():
		i.translateY.Animate(anim.Timing(0, TransformDuration), nil)
	}
}
