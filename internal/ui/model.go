package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"studyreel/internal/carousel"
	"studyreel/internal/config"
	"studyreel/internal/deck"
	"studyreel/internal/domain"
	"studyreel/internal/eventbus"
	"studyreel/internal/ui/views"
)

const (
	wheelStepPx   = 3 * views.CellWidthPx
	statusTimeout = 3 * time.Second
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger

	// carousel engine, driven from Update
	sched   *Scheduler
	surface *carousel.Surface
	engine  *carousel.Engine
	opts    carousel.Options

	deck      *domain.Deck
	deckPath  string
	lastIndex int

	width    int
	height   int
	layout   views.Layout
	keys     keyMap
	help     help.Model
	renderer *views.Renderer
	helpText *HelpRenderer
	helpOps  *HelpOps

	pressed     bool // a drag started inside the strip
	hovering    bool
	manualPause bool
	inPagerMode bool

	status    string
	statusErr bool
	statusSeq int

	subs carousel.Scope

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model showing d. The engine is mounted right away
// and stays mounted until Close.
func NewModel(bus eventbus.EventBus, cfg *config.Config, d *domain.Deck, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if d == nil {
		d = &domain.Deck{}
	}
	opts, err := cfg.CarouselOptions()
	if err != nil {
		return nil, err
	}

	sched := NewScheduler(carousel.DefaultFrameInterval)
	surface := carousel.NewSurface()
	engine, err := carousel.NewEngine(surface, sched, opts, logger)
	if err != nil {
		return nil, err
	}

	keys := newKeyMap()
	m := &Model{
		bus:       bus,
		config:    cfg,
		logger:    logger.Named("ui"),
		sched:     sched,
		surface:   surface,
		engine:    engine,
		opts:      opts,
		deck:      d,
		deckPath:  d.Path,
		lastIndex: -1,
		keys:      keys,
		help:      help.New(),
		renderer:  views.NewRenderer(),
		helpText:  NewHelpRenderer(keys),
		helpOps:   NewHelpOps(nil),
	}

	engine.SetItemCount(d.Len())
	engine.Mount()
	m.subs.Add(engine.OnChange(m.onViewChange))
	m.onViewChange(engine.View())
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Engine exposes the carousel engine
func (m *Model) Engine() *carousel.Engine {
	return m.engine
}

// Close tears down the engine; no timers or frames fire afterwards
func (m *Model) Close() {
	m.subs.Close()
	m.engine.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.sched.Cmd()
}

// Update handles messages. Whatever the engine scheduled while handling msg
// is returned along with the handler's own command.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.holdManualPause()
	return m, tea.Batch(cmd, m.sched.Cmd())
}

// holdManualPause cancels any timer autoplay re-armed on its own (hover
// leave, item count or boundary change) while space has it paused
func (m *Model) holdManualPause() {
	if m.manualPause && m.engine.View().AutoplayRunning {
		m.engine.PauseAutoPlay()
	}
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	if m.sched.Handle(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()

	case tea.KeyMsg:
		if m.inPagerMode {
			return nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.inPagerMode {
			return nil
		}
		m.handleMouse(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case deckLoadedMsg:
		if msg.err != nil {
			return m.setStatus(fmt.Sprintf("reload failed: %v", msg.err), true)
		}
		m.setDeck(msg.deck)
		return m.setStatus(fmt.Sprintf("deck reloaded, %d items", msg.deck.Len()), false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case helpPagerMsg:
		m.inPagerMode = false
		if !m.manualPause {
			m.engine.ResumeAutoPlay()
		}
		if msg.err != nil {
			return m.setStatus(fmt.Sprintf("help: %v", msg.err), true)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.engine.ScrollTo(carousel.DirectionLeft)

	case key.Matches(msg, m.keys.Next):
		m.engine.ScrollTo(carousel.DirectionRight)

	case key.Matches(msg, m.keys.First):
		m.engine.ScrollToIndex(0)

	case key.Matches(msg, m.keys.Last):
		m.engine.ScrollToIndex(m.deck.Len() - 1)

	case key.Matches(msg, m.keys.Jump):
		if len(msg.Runes) == 1 {
			m.engine.SelectIndex(int(msg.Runes[0] - '1'))
		}

	case key.Matches(msg, m.keys.Pause):
		return m.togglePause()

	case key.Matches(msg, m.keys.Reload):
		return m.reloadDeck()

	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(m.helpText.RenderHelpContent(m.opts, m.deckPath))
	}
	return nil
}

func (m *Model) togglePause() tea.Cmd {
	if !m.opts.AutoPlay {
		return m.setStatus("autoplay is off", false)
	}
	v := m.engine.View()
	if !m.manualPause && (v.AutoplayRunning || v.AutoplayPaused) {
		m.manualPause = true
		m.engine.PauseAutoPlay()
		return m.setStatus("autoplay paused", false)
	}
	// also resumes after an indicator click stopped it
	m.manualPause = false
	m.engine.ResumeAutoPlay()
	return m.setStatus("autoplay resumed", false)
}

// handleMouse maps terminal mouse events to surface notifications:
// presses and drags in the strip are pointer events, motion in and out of
// the carousel is hover, wheel is native scrolling.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	now := m.sched.Now()
	m.updateHover(msg.X, msg.Y, now)

	switch msg.Button {
	case tea.MouseButtonWheelRight, tea.MouseButtonWheelDown:
		if m.layout.InCarousel(msg.X, msg.Y) {
			m.surface.ScrollBy(wheelStepPx)
		}
		return
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelUp:
		if m.layout.InCarousel(msg.X, msg.Y) {
			m.surface.ScrollBy(-wheelStepPx)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if idx, ok := m.layout.IndicatorAt(msg.X, msg.Y); ok {
			m.engine.SelectIndex(idx)
			return
		}
		if dir, ok := m.layout.NavAt(msg.X, msg.Y); ok {
			m.engine.ScrollTo(dir)
			return
		}
		if m.layout.InStrip(msg.X, msg.Y) {
			m.pressed = true
			m.dispatch(carousel.PointerDown, msg.X, msg.Y, now)
		}

	case tea.MouseActionMotion:
		if m.pressed {
			m.dispatch(carousel.PointerMove, msg.X, msg.Y, now)
		}

	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.dispatch(carousel.PointerUp, msg.X, msg.Y, now)
		}
	}
}

func (m *Model) updateHover(x, y int, now time.Time) {
	inside := m.layout.InCarousel(x, y)
	if inside == m.hovering {
		return
	}
	m.hovering = inside
	if inside {
		m.dispatch(carousel.PointerEnter, x, y, now)
	} else {
		m.dispatch(carousel.PointerLeave, x, y, now)
	}
}

func (m *Model) dispatch(kind carousel.PointerKind, x, y int, now time.Time) bool {
	px, py := m.layout.ToPx(x, y)
	return m.surface.DispatchPointer(&carousel.PointerEvent{Kind: kind, X: px, Y: py, Time: now})
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DeckLoadedEvent:
		if e.Deck == nil {
			return nil
		}
		m.setDeck(e.Deck)
		return m.setStatus(fmt.Sprintf("deck updated, %d items", e.Deck.Len()), false)
	case eventbus.DeckErrorEvent:
		return m.setStatus(fmt.Sprintf("deck error: %v", e.Err), true)
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	}
	return nil
}

// setDeck swaps the items; the engine learns the new count before the next
// message is handled
func (m *Model) setDeck(d *domain.Deck) {
	m.deck = d
	if d.Path != "" {
		m.deckPath = d.Path
	}
	m.engine.SetItemCount(d.Len())
	m.relayout()
}

func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.layout = views.ComputeLayout(views.LayoutParams{
		Width:        m.width,
		Height:       m.height,
		ItemCount:    m.deck.Len(),
		ItemsPerView: m.opts.ItemsPerView,
		GapPx:        m.opts.Gap,
		CardHeight:   m.config.UI.CardHeight,
	})
	m.surface.Layout(m.layout.ScrollExtentPx(), m.layout.ViewportExtentPx())
}

func (m *Model) onViewChange(v carousel.View) {
	if v.CurrentIndex == m.lastIndex || v.ItemCount == 0 {
		return
	}
	m.lastIndex = v.CurrentIndex

	item, _ := m.deck.At(v.CurrentIndex)
	m.logger.Debug("slide changed", zap.Int("index", v.CurrentIndex), zap.String("item", item.ID))
	if m.bus != nil {
		m.bus.Publish(eventbus.SlideChangedEvent{Index: v.CurrentIndex, ItemID: item.ID, Total: v.ItemCount})
	}
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = msg
	m.statusErr = isErr
	if isErr {
		m.logger.Warn("status", zap.String("message", msg))
	}
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *Model) reloadDeck() tea.Cmd {
	if m.deckPath == "" {
		return m.setStatus("no deck file to reload", true)
	}
	path := m.deckPath
	return func() tea.Msg {
		d, err := deck.LoadFile(path)
		return deckLoadedMsg{deck: d, err: err}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return m.setStatus("help pager unavailable", true)
	}
	m.engine.PauseAutoPlay()
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	state := views.ViewState{
		Layout:         m.layout,
		Title:          m.deck.Title,
		Items:          m.deck.Items,
		Carousel:       m.engine.View(),
		OffsetPx:       m.surface.Geometry().Offset,
		ManualPause:    m.manualPause,
		ShowIndicators: m.config.UI.ShowIndicators,
		StatusMessage:  m.status,
		StatusError:    m.statusErr,
	}
	if m.config.UI.ShowHelpBar {
		state.HelpLine = m.help.View(m.keys)
	}
	return m.renderer.Render(state)
}
