package holditem

import (
	"holdmenu/geometry"
	"holdmenu/log"
	"holdmenu/signal"
)

// ContainerStyle is how the item is drawn in the regular layout.
type ContainerStyle struct {
	Opacity float64
	Scale   float64
}

// PreviewStyle is how the floating preview is drawn in the overlay.
type PreviewStyle struct {
	Top        int
	Left       int
	Width      int
	Height     int
	Opacity    float64
	TranslateY float64
	Scale      float64
	// PointerEvents is true only while the item's menu is open.
	PointerEvents bool
}

// Styles is the complete render state of an item.
type Styles struct {
	Container ContainerStyle
	Preview   PreviewStyle
}

// Visible reports whether any part of the preview should be drawn.
func (p PreviewStyle) Visible() bool {
	return p.Opacity > 0
}

// Styles returns the current styles.
func (i *Item) Styles() Styles {
	return i.styles.Get()
}

// Watch calls fn whenever the styles change.
func (i *Item) Watch(fn func(Styles)) signal.Unsubscribe {
	return i.styles.Subscribe(fn)
}

// OnLayout records the item's natural size from the host layout.
func (i *Item) OnLayout(d geometry.Dimensions) {
	if d == i.engine.ItemDimensions() {
		return
	}
	i.engine.SetItemDimensions(d)
	i.emit()
}

// Relayout recomputes everything derived from the screen: the preview's
// resting top and, while active, the translation target.
func (i *Item) Relayout() {
	if i.active {
		i.retarget()
	}
	i.emit()
}

func (i *Item) compute() Styles {
	t := i.engine.TransformValue()
	rect := i.engine.Rect()
	dims := i.engine.ItemDimensions()

	s := Styles{
		Container: ContainerStyle{
			Opacity: i.containerAlpha.Get(),
			Scale:   i.scale.Get(),
		},
		Preview: PreviewStyle{
			Top:           t.Y,
			Left:          rect.X,
			Width:         dims.Width,
			Height:        dims.Height,
			Opacity:       i.previewAlpha.Get(),
			TranslateY:    i.translateY.Get(),
			Scale:         i.scale.Get(),
			PointerEvents: i.active,
		},
	}
	if i.active {
		s.Container.Scale = i.activeScale.Get()
		s.Preview.Scale = i.activeScale.Get()
	}
	if i.engine.DisableMove() {
		s.Preview.TranslateY = 0
	}
	return s
}

func (i *Item) emit() {
	if i.styles == nil {
		return
	}
	s := i.compute()
	if s == i.styles.Get() {
		return
	}
	log.AnimationTrace("%s styles %+v", i.key, s)
	i.styles.Set(s)
}
