// Package carousel is a headless carousel interaction engine: a scroll/index
// coordinator with gesture recognition, an autoplay controller and the
// composition root wiring them to a Surface and a Scheduler.
//
// All types are single-goroutine. Every callback, whether a frame, a timer or
// a surface notification, runs on the goroutine driving the Scheduler.
package carousel

import (
	"time"

	"go.uber.org/zap"
)

// View is the read-only state consumed by indicators and navigation buttons
type View struct {
	CurrentIndex    int
	ItemCount       int
	CanScrollLeft   bool
	CanScrollRight  bool
	ItemsPerView    ItemsPerView
	Gap             float64
	AutoPlay        bool
	AutoplayRunning bool
	AutoplayPaused  bool
	PendingIndex    int // indicator target waiting for its transition, -1 when none
}

// Engine composes the Coordinator and the Autoplay controller
type Engine struct {
	surface  *Surface
	sched    Scheduler
	opts     Options
	logger   *zap.Logger
	coord    *Coordinator
	autoplay *Autoplay

	transition   Handle
	pendingIndex int
	mounted      bool
	changes      listeners[View]
	scope        Scope
}

// NewEngine validates opts and builds an unmounted engine
func NewEngine(surface *Surface, sched Scheduler, opts Options, logger *zap.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	coord := NewCoordinator(surface, sched, opts, logger)
	return &Engine{
		surface:      surface,
		sched:        sched,
		opts:         opts,
		logger:       logger.Named("engine"),
		coord:        coord,
		autoplay:     NewAutoplay(coord, sched, opts, logger),
		pendingIndex: -1,
	}, nil
}

// Mount starts the coordinator first so Autoplay only ever reads flags the
// coordinator has already derived
func (e *Engine) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true
	e.coord.Mount()
	e.scope.Add(e.coord.OnChange(func(State) { e.notify() }))
	e.autoplay.Start()
	e.logger.Debug("mounted",
		zap.Int("items", e.coord.ItemCount()),
		zap.Bool("autoplay", e.opts.AutoPlay))
}

// Close tears everything down. No callback fires afterwards.
func (e *Engine) Close() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.cancelTransition()
	e.autoplay.Close()
	e.scope.Close()
	e.coord.Unmount()
	e.logger.Debug("closed")
}

// SetItemCount propagates a new item count to both controllers before
// returning
func (e *Engine) SetItemCount(n int) {
	if n == e.coord.ItemCount() {
		return
	}
	e.coord.SetItemCount(n)
	e.autoplay.evaluate(false)
	if e.pendingIndex >= n {
		e.cancelTransition()
	}
}

// SetOptions validates and applies new options to both controllers
func (e *Engine) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	e.opts = opts
	e.coord.SetOptions(opts)
	e.autoplay.SetOptions(opts)
	e.notify()
	return nil
}

// Options returns the active options
func (e *Engine) Options() Options {
	return e.opts
}

// ScrollTo pages in dir
func (e *Engine) ScrollTo(dir Direction) {
	e.coord.ScrollTo(dir)
}

// ScrollToIndex scrolls to index right away
func (e *Engine) ScrollToIndex(index int) {
	e.coord.ScrollToIndex(index)
}

// SelectIndex handles a direct indicator click. Autoplay is paused and the
// scroll runs as a low-priority transition on the next frame, after any
// live-scroll recomputation already queued; a newer click replaces an older
// pending one.
func (e *Engine) SelectIndex(index int) {
	if !e.mounted || e.coord.ItemCount() == 0 {
		return
	}
	e.autoplay.Pause()
	e.cancelTransition()
	e.pendingIndex = clampIndex(index, e.coord.ItemCount())
	e.transition = e.sched.RequestFrame(func(time.Time) {
		target := e.pendingIndex
		e.transition = nil
		e.pendingIndex = -1
		e.coord.ScrollToIndex(target)
		e.notify()
	})
	e.notify()
}

func (e *Engine) cancelTransition() {
	if e.transition != nil {
		e.transition.Cancel()
		e.transition = nil
	}
	e.pendingIndex = -1
}

// PauseAutoPlay cancels the live autoplay timer for a one-off interruption
func (e *Engine) PauseAutoPlay() {
	e.autoplay.Pause()
	e.notify()
}

// ResumeAutoPlay re-arms autoplay if it is allowed to run
func (e *Engine) ResumeAutoPlay() {
	e.autoplay.Resume()
	e.notify()
}

// View snapshots the state for presentational leaves
func (e *Engine) View() View {
	st := e.coord.State()
	return View{
		CurrentIndex:    st.CurrentIndex,
		ItemCount:       st.ItemCount,
		CanScrollLeft:   st.CanScrollLeft,
		CanScrollRight:  st.CanScrollRight,
		ItemsPerView:    e.opts.ItemsPerView,
		Gap:             e.opts.Gap,
		AutoPlay:        e.opts.AutoPlay,
		AutoplayRunning: e.autoplay.Running(),
		AutoplayPaused:  e.autoplay.Paused(),
		PendingIndex:    e.pendingIndex,
	}
}

// OnChange subscribes to View changes
func (e *Engine) OnChange(fn func(View)) *Subscription {
	return e.changes.add(fn)
}

func (e *Engine) notify() {
	e.changes.emit(e.View())
}

// Surface returns the scrollable surface the engine drives
func (e *Engine) Surface() *Surface {
	return e.surface
}

// Coordinator exposes the scroll/index coordinator
func (e *Engine) Coordinator() *Coordinator {
	return e.coord
}

// Autoplay exposes the autoplay controller
func (e *Engine) Autoplay() *Autoplay {
	return e.autoplay
}
