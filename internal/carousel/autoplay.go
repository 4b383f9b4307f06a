package carousel

import (
	"time"

	"go.uber.org/zap"
)

// armKey holds every input that decides whether and how the timer runs.
// Any change re-creates the timer.
type armKey struct {
	autoPlay       bool
	interval       time.Duration
	loop           bool
	itemCount      int
	canScrollRight bool
	paused         bool
}

// Autoplay advances the carousel on a timer. It never writes the viewport,
// it only issues commands through the Coordinator.
type Autoplay struct {
	coord  *Coordinator
	sched  Scheduler
	opts   Options
	logger *zap.Logger

	ticker  *Ticker
	paused  bool // hover pause
	started bool
	key     armKey
	ticks   int

	scope Scope
}

// NewAutoplay creates a stopped controller driving coord
func NewAutoplay(coord *Coordinator, sched Scheduler, opts Options, logger *zap.Logger) *Autoplay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Autoplay{
		coord:  coord,
		sched:  sched,
		opts:   opts,
		logger: logger.Named("autoplay"),
		ticker: NewTicker(sched),
	}
}

// Start subscribes to state and hover changes and arms the timer when allowed
func (a *Autoplay) Start() {
	if a.started {
		return
	}
	a.started = true
	a.scope.Add(a.coord.OnChange(func(State) { a.evaluate(false) }))
	a.scope.Add(a.coord.surface.OnPointer(func(ev *PointerEvent) {
		switch ev.Kind {
		case PointerEnter:
			a.SetHovering(true)
		case PointerLeave:
			a.SetHovering(false)
		}
	}))
	a.evaluate(true)
}

// Close cancels the timer and releases subscriptions
func (a *Autoplay) Close() {
	a.started = false
	a.scope.Close()
	a.ticker.Cancel()
}

// SetOptions applies new options, re-arming when a timer input changed
func (a *Autoplay) SetOptions(opts Options) {
	a.opts = opts
	if !opts.PauseOnHover {
		a.paused = false
	}
	a.evaluate(false)
}

// SetHovering is the pointer-enter/leave switch
func (a *Autoplay) SetHovering(hovering bool) {
	if hovering && !a.opts.PauseOnHover {
		return
	}
	if a.paused == hovering {
		return
	}
	a.paused = hovering
	a.logger.Debug("hover pause", zap.Bool("paused", hovering))
	a.evaluate(false)
}

// Pause cancels the live timer without touching the hover flag. The timer
// comes back on the next input change or on Resume.
func (a *Autoplay) Pause() {
	a.ticker.Cancel()
}

// Resume re-arms the timer now if autoplay is allowed to run
func (a *Autoplay) Resume() {
	a.evaluate(true)
}

// Paused reports the hover pause flag
func (a *Autoplay) Paused() bool {
	return a.paused
}

// Running reports whether a timer is live
func (a *Autoplay) Running() bool {
	return a.ticker.Active()
}

// Ticks counts timer ticks handled
func (a *Autoplay) Ticks() int {
	return a.ticks
}

func (a *Autoplay) currentKey() armKey {
	st := a.coord.State()
	return armKey{
		autoPlay:       a.opts.AutoPlay,
		interval:       a.opts.AutoPlayInterval,
		loop:           a.opts.Loop,
		itemCount:      st.ItemCount,
		canScrollRight: st.CanScrollRight,
		paused:         a.paused,
	}
}

func (a *Autoplay) evaluate(force bool) {
	if !a.started {
		return
	}
	key := a.currentKey()
	if key == a.key && !force {
		return
	}
	a.key = key
	a.ticker.Cancel()
	if !key.autoPlay || key.itemCount == 0 || key.paused || key.interval <= 0 {
		return
	}
	a.ticker.Arm(key.interval, a.tick)
}

func (a *Autoplay) tick() {
	a.ticks++
	st := a.coord.State()
	switch {
	case st.CanScrollRight:
		a.coord.ScrollTo(DirectionRight)
	case a.opts.Loop:
		a.logger.Debug("looping to start")
		a.coord.ScrollToIndex(0)
	default:
		a.logger.Debug("reached end, stopping")
		a.ticker.Cancel()
	}
}
