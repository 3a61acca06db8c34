package app

import (
	"context"
	"fmt"
	"holdmenu/anim"
	"holdmenu/config"
	"holdmenu/geometry"
	"holdmenu/gesture"
	"holdmenu/haptic"
	"holdmenu/holditem"
	"holdmenu/inspect"
	"holdmenu/log"
	"holdmenu/menu"
	"holdmenu/placement"
	"holdmenu/signal"
	"holdmenu/ui"
	"holdmenu/ui/layout"
	"holdmenu/ui/overlay"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxFrameStep caps how far one frame advances the animations after a stall.
const maxFrameStep = 100 * time.Millisecond

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, cfg, haptic.NewBell(os.Stderr)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // press, release and drag
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// heldCard is a card on screen together with the held item driving it.
type heldCard struct {
	card ui.Card
	item *holditem.Item
	rect geometry.Rect
	// onScreen is false when the grid has no room for the card.
	onScreen bool
}

type home struct {
	ctx context.Context
	cfg *config.Config
	// trigger is the gesture every card answers to.
	trigger gesture.Trigger

	keys keyMap
	help help.Model

	// -- Menu collaborators --

	menu     *menu.Context
	driver   *anim.Driver
	screen   *placement.Screen
	feedback haptic.Trigger

	items []*heldCard
	// rects is the measurement cache the placement engines read.
	rects map[placement.Ref]geometry.Rect
	// rendered is false until the first frame has been drawn. Nothing can be
	// measured before that.
	rendered bool

	// -- Layout --

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	// -- Input --

	// pressed is the card receiving the current pointer gesture.
	pressed *heldCard
	// ticking is true while a frame tick is scheduled.
	ticking   bool
	lastFrame time.Time
	now       func() time.Time

	showHelp bool
	// highlight is the menu row under the pointer, -1 for none.
	highlight int

	unsubs []signal.Unsubscribe
}

func newHome(ctx context.Context, cfg *config.Config, feedback haptic.Trigger) *home {
	insets := geometry.Insets{
		Top:    layout.TitleBarHeight + cfg.SafeAreaTop,
		Bottom: layout.HelpBarHeight + cfg.SafeAreaBottom,
	}

	m := &home{
		ctx:       ctx,
		cfg:       cfg,
		keys:      newKeyMap(),
		help:      help.New(),
		menu:      menu.NewContext(insets),
		driver:    anim.NewDriver(),
		feedback:  feedback,
		rects:     make(map[placement.Ref]geometry.Rect),
		now:       time.Now,
		highlight: -1,
	}
	m.screen = placement.NewScreen(m.menu, 0, 0)

	base, err := cfg.ItemOptions()
	if err != nil {
		log.ErrorLog.Printf("invalid item options, using defaults: %v", err)
		base = holditem.Options{}
	}
	if cfg.FramedPreview {
		base.Preview = ui.FramedPreview
	}
	m.trigger = base.ActivateOn
	if m.trigger == "" {
		m.trigger = gesture.Hold
	}

	measurer := placement.MeasureFunc(m.measure)
	for _, d := range demoCards {
		opts := base
		opts.Items = d.items
		opts.ActionParams = d.params
		opts.Bottom = d.bottom
		if err := opts.Validate(); err != nil {
			log.ErrorLog.Printf("skipping %q: %v", d.card.Title, err)
			continue
		}

		hc := &heldCard{card: d.card}
		hc.card.Hint = hintFor(opts.ActivateOn)
		hc.item = holditem.New(m.menu, m.driver, measurer, m.screen, feedback, opts)
		m.items = append(m.items, hc)
	}

	m.unsubs = append(m.unsubs, m.menu.State.Subscribe(m.onMenuState))
	return m
}

func (m *home) measure(ref placement.Ref) (geometry.Rect, bool) {
	if !m.rendered {
		return geometry.Rect{}, false
	}
	r, ok := m.rects[ref]
	return r, ok
}

// updateHandleWindowSizeEvent lays the cards out for the new size and
// refreshes the measurement cache.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	insets := m.menu.Insets.Get()
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height, insets)
	m.degradation = layout.ComputeDegradation(m.constraints)

	// The cards move under an open menu, so it cannot stay attached.
	if m.menu.IsOpen() {
		m.menu.Close()
	}
	if m.pressed != nil {
		m.pressed.item.Recognizer().Cancel(m.now())
		m.pressed = nil
	}

	contentBottom := msg.Height - insets.Bottom
	for i, hc := range m.items {
		hc.rect = m.constraints.CardRect(i)
		hc.onScreen = !m.degradation.ShowMinWarning && hc.rect.Bottom() <= contentBottom && hc.rect.Right() <= msg.Width

		m.rects[hc.item.ContainerRef()] = hc.rect
		wrapped := hc.item.RenderPreview(ui.Blank(hc.rect.Width, hc.rect.Height))
		m.rects[hc.item.PreviewRef()] = geometry.Rect{
			X:      hc.rect.X,
			Y:      hc.rect.Y,
			Width:  lipgloss.Width(wrapped),
			Height: lipgloss.Height(wrapped),
		}
		hc.item.OnLayout(hc.rect.Size())
	}
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case frameMsg:
		return m, m.handleFrame(time.Time(msg))
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Close):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.menu.IsOpen() {
			m.menu.Close()
			return m, m.startTicking()
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	for _, u := range m.unsubs {
		u()
	}
	m.unsubs = nil
	for _, hc := range m.items {
		hc.item.Dispose()
	}
	log.GetProfiler().LogStats()
	return m, tea.Quit
}

func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	now := m.now()

	// The release that ends a hold arrives after the menu it opened.
	if msg.Action == tea.MouseActionRelease && m.pressed != nil {
		hc := m.pressed
		m.pressed = nil
		hc.item.Recognizer().Release(now)
		return m.startTicking()
	}

	if m.menu.IsOpen() {
		return m.handleOpenMenuMouse(msg)
	}
	if m.showHelp || m.degradation.ShowMinWarning {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		hc := m.cardAt(msg.X, msg.Y)
		if hc == nil {
			return nil
		}
		m.pressed = hc
		hc.item.Recognizer().Press(now)
		return m.startTicking()
	case tea.MouseActionMotion:
		if m.pressed != nil && !m.pressed.rect.Contains(msg.X, msg.Y) {
			log.GestureTrace(m.pressed.item.Key(), "pointer left the item")
			m.pressed.item.Recognizer().Cancel(now)
			m.pressed = nil
			return m.startTicking()
		}
	}
	return nil
}

// handleOpenMenuMouse routes the pointer while a menu is open. Items do not
// receive gestures: a click on a row or anywhere outside the menu and the
// preview closes it.
func (m *home) handleOpenMenuMouse(msg tea.MouseMsg) tea.Cmd {
	props := m.menu.Props.Get()
	am := m.actionMenu(props)

	if msg.Action == tea.MouseActionMotion {
		if row, ok := am.RowAt(m.width, m.height, msg.X, msg.Y); ok {
			m.highlight = row
		} else {
			m.highlight = -1
		}
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if row, ok := am.RowAt(m.width, m.height, msg.X, msg.Y); ok {
		it := props.Items[row]
		log.InfoLog.Printf("menu action %q selected, params %v", it.Text, props.ActionParams[it.Text])
		m.menu.Close()
		return m.startTicking()
	}
	if am.Bounds(m.width, m.height).Contains(msg.X, msg.Y) {
		return nil
	}

	if owner := m.activeCard(); owner != nil {
		r := m.previewRect(owner)
		if r.Contains(msg.X, msg.Y) {
			if m.cfg.FramedPreview && msg.Y == r.Y && msg.X >= r.Right()-ui.CloseControlWidth(r.Width) {
				owner.item.Close()
			} else {
				owner.item.PreviewTap()
			}
			return m.startTicking()
		}
	}

	m.menu.Close()
	return m.startTicking()
}

func (m *home) cardAt(x, y int) *heldCard {
	for _, hc := range m.items {
		if hc.onScreen && hc.rect.Contains(x, y) {
			return hc
		}
	}
	return nil
}

func (m *home) activeCard() *heldCard {
	for _, hc := range m.items {
		if hc.item.IsActive() {
			return hc
		}
	}
	return nil
}

// previewRect is where the card's floating preview is drawn this frame.
func (m *home) previewRect(hc *heldCard) geometry.Rect {
	s := hc.item.Styles().Preview
	size := m.rects[hc.item.PreviewRef()]
	return geometry.Rect{
		X:      s.Left,
		Y:      s.Top + int(math.Round(s.TranslateY)),
		Width:  size.Width,
		Height: size.Height,
	}
}

func (m *home) actionMenu(props menu.Props) *overlay.ActionMenu {
	am := overlay.NewActionMenu(props, layout.MenuWidth(m.width))
	am.SetHideIcons(m.degradation.HideIcons)
	am.SetHighlight(m.highlight)
	return am
}

// frameMsg advances gestures and animations by one frame.
type frameMsg time.Time

func (m *home) tick() tea.Cmd {
	return tea.Tick(anim.Frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *home) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.tick()
}

// handleFrame polls every recognizer, steps the animations and runs the work
// they handed to the UI loop. Ticking stops once nothing is in flight.
func (m *home) handleFrame(now time.Time) tea.Cmd {
	dt := anim.Frame
	if !m.lastFrame.IsZero() {
		dt = min(max(now.Sub(m.lastFrame), 0), maxFrameStep)
	}
	m.lastFrame = now

	for _, hc := range m.items {
		hc.item.Recognizer().Poll(now)
	}
	m.driver.Advance(dt)
	for _, fn := range m.driver.Queue().Drain() {
		fn()
	}

	if m.busy() {
		m.ticking = true
		return m.tick()
	}
	m.ticking = false
	m.lastFrame = time.Time{}
	return nil
}

func (m *home) busy() bool {
	if m.driver.Active() || m.driver.Queue().Len() > 0 {
		return true
	}
	for _, hc := range m.items {
		if hc.item.Recognizer().State() != gesture.Idle {
			return true
		}
	}
	return false
}

func (m *home) onMenuState(s menu.State) {
	log.InfoLog.Printf("menu %s (owner %s)", s, m.menu.Owner())
	if s != menu.StateActive {
		m.highlight = -1
	}
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("could not write inspect snapshot: %v", err)
	}
}

func (m *home) snapshot() *inspect.Snapshot {
	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height, m.screen.Orientation().String()).
		WithMenu(m.menu).
		WithLayout(m.constraints, m.degradation).
		WithComponents(m.InspectNode())
}

// InspectNode implements inspect.Introspectable.
func (m *home) InspectNode() *inspect.Node {
	root := inspect.NewNode("Screen").WithBounds(geometry.Rect{Width: m.width, Height: m.height})
	for _, hc := range m.items {
		node := inspect.NewNode("HeldItem").
			WithID(hc.item.Key()).
			WithBounds(hc.rect).
			WithVisible(hc.onScreen).
			WithContent(hc.card.Title).
			WithState("phase", hc.item.Phase().String()).
			WithState("active", hc.item.IsActive())

		s := hc.item.Styles().Preview
		node.AddChild(inspect.NewNode("Preview").
			WithBounds(m.previewRect(hc)).
			WithVisible(s.Visible()).
			WithState("opacity", s.Opacity).
			WithState("translate_y", s.TranslateY))
		root.AddChild(node)
	}
	if m.menu.IsOpen() {
		am := m.actionMenu(m.menu.Props.Get())
		root.AddChild(inspect.NewNode("ActionMenu").
			WithID(m.menu.Owner()).
			WithBounds(am.Bounds(m.width, m.height)))
	}
	return root
}

func (m *home) View() string {
	defer log.GetProfiler().StartRender(log.FrameComponent)()
	m.rendered = true

	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.degradation.ShowMinWarning {
		return ui.MinSizeWarning(m.width, m.height)
	}

	view := ui.Blank(m.width, m.height)
	view = overlay.PlaceOverlay(0, 0, ui.TitleBar(m.width, "holdmenu", m.titleInfo()), view, false, false)
	view = overlay.PlaceOverlay(0, m.height-layout.HelpBarHeight, m.help.ShortHelpView(m.keys.ShortHelp()), view, false, false)

	for _, hc := range m.items {
		if !hc.onScreen {
			continue
		}
		card := ui.RenderCard(hc.card, hc.rect.Width, hc.rect.Height, hc.item.Styles().Container, m.degradation)
		view = overlay.PlaceOverlay(hc.rect.X, hc.rect.Y, card, view, false, false)
	}

	for _, hc := range m.items {
		s := hc.item.Styles().Preview
		if !hc.onScreen || !s.Visible() {
			continue
		}
		content := ui.RenderPreview(hc.card, s.Width, s.Height, s, m.degradation)
		r := m.previewRect(hc)
		view = overlay.PlaceOverlay(r.X, r.Y, hc.item.RenderPreview(content), view, false, false)
	}

	if m.menu.IsOpen() {
		done := log.GetProfiler().StartRender("action-menu")
		am := m.actionMenu(m.menu.Props.Get())
		x, y := am.Origin(m.width, m.height)
		log.RenderTrace("action-menu", "owner=%s at %d,%d", m.menu.Owner(), x, y)
		view = overlay.PlaceOverlay(x, y, am.Render(), view, false, false)
		done()
	}

	if m.showHelp {
		n := overlay.NewNotice("holdmenu", m.helpText())
		w, _ := layout.ComputeOverlaySize(m.width, m.height, 50, 12)
		n.SetWidth(w - 2)
		view = overlay.PlaceOverlay(0, 0, n.Render(), view, true, true)
	}
	return view
}

func (m *home) titleInfo() string {
	return fmt.Sprintf("%s · %s", m.trigger, m.screen.Orientation())
}

func (m *home) helpText() string {
	var b strings.Builder
	verb := string(m.trigger)
	b.WriteString(fmt.Sprintf("%s%s an item to open its actions.\n", strings.ToUpper(verb[:1]), verb[1:]))
	b.WriteString("Click a row or outside the menu to close it.\n\n")
	b.WriteString(fmt.Sprintf("haptic feedback: %s\n", m.cfg.HapticFeedback))
	b.WriteString(fmt.Sprintf("anchor edge: %s\n", m.cfg.AnchorEdge))
	b.WriteString(fmt.Sprintf("close on tap: %v\n\n", m.cfg.CloseOnTap))
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	return b.String()
}
