package carousel

import (
	"time"

	"go.uber.org/zap"
)

// State is the derived, read-only position of the carousel
type State struct {
	CurrentIndex int
	ItemCount    int
	Boundaries
}

// Stats counts coordinator activity
type Stats struct {
	ScrollEvents   int // scroll notifications received
	Recomputations int // index/boundary recomputations performed
	ScrollCommands int // ScrollTo/ScrollToIndex requests that started an animation
	Swipes         int // gestures that committed a scroll
}

// Coordinator is the single writer of the viewport position. It derives the
// active index from the surface, turns gestures into scroll commands and
// coalesces scroll notifications to one recomputation per frame.
type Coordinator struct {
	surface *Surface
	sched   Scheduler
	opts    Options
	logger  *zap.Logger

	itemCount int
	state     State
	gesture   Gesture
	stats     Stats

	recompute Handle // pending coalesced recomputation
	anim      *scrollAnimation
	animFrame Handle

	scope     Scope
	mounted   bool
	observers listeners[State]
}

// NewCoordinator creates a coordinator for surface. It does nothing until Mount.
func NewCoordinator(surface *Surface, sched Scheduler, opts Options, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		surface: surface,
		sched:   sched,
		opts:    opts,
		logger:  logger.Named("coordinator"),
	}
}

// Mount subscribes to the surface and computes the initial state
func (c *Coordinator) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.scope.Add(c.surface.OnScroll(func(Geometry) { c.handleScroll() }))
	c.scope.Add(c.surface.OnResize(func(Geometry) { c.handleResize() }))
	c.scope.Add(c.surface.OnPointer(c.handlePointer))
	c.recomputeNow()
}

// Unmount releases every listener, pending frame and running animation
func (c *Coordinator) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.scope.Close()
	c.cancelRecompute()
	c.stopAnimation()
	c.gesture = c.gesture.Cancel()
}

// Mounted reports whether the coordinator is listening
func (c *Coordinator) Mounted() bool {
	return c.mounted
}

// State returns the last recomputed state
func (c *Coordinator) State() State {
	return c.state
}

// Gesture returns the current gesture session
func (c *Coordinator) Gesture() Gesture {
	return c.gesture
}

// Stats returns activity counters
func (c *Coordinator) Stats() Stats {
	return c.stats
}

// Options returns the active options
func (c *Coordinator) Options() Options {
	return c.opts
}

// Animating reports whether a smooth scroll is in progress
func (c *Coordinator) Animating() bool {
	return c.anim != nil
}

// OnChange subscribes to state changes. fn runs synchronously on the
// scheduler goroutine.
func (c *Coordinator) OnChange(fn func(State)) *Subscription {
	return c.observers.add(fn)
}

// SetOptions replaces the options and recomputes with the new item width rule
func (c *Coordinator) SetOptions(opts Options) {
	c.opts = opts
	if !opts.EnableTouch {
		c.gesture = c.gesture.Cancel()
	}
	if c.mounted {
		c.recomputeNow()
	}
}

// SetItemCount updates the item count and recomputes synchronously so the
// next event never sees a stale count
func (c *Coordinator) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	if n == c.itemCount {
		return
	}
	c.itemCount = n
	if c.mounted {
		c.recomputeNow()
	} else {
		c.state.ItemCount = n
		c.state.CurrentIndex = clampIndex(c.state.CurrentIndex, n)
	}
}

// ItemCount returns the current item count
func (c *Coordinator) ItemCount() int {
	return c.itemCount
}

// ScrollTo moves one page (PageFraction of the viewport) in dir
func (c *Coordinator) ScrollTo(dir Direction) {
	g := c.surface.Geometry()
	if !c.mounted || !g.Measured() {
		return
	}
	delta := PageFraction * g.ViewportExtent
	if dir == DirectionLeft {
		delta = -delta
	}
	c.smoothScroll(c.scrollBase() + delta)
}

// ScrollToIndex brings index to the leading edge. Out-of-range indices are
// clamped to the first or last item.
func (c *Coordinator) ScrollToIndex(index int) {
	g := c.surface.Geometry()
	if !c.mounted || c.itemCount == 0 || !g.Measured() {
		return
	}
	index = clampIndex(index, c.itemCount)
	c.smoothScroll(IndexOffset(g, index, c.itemCount))
}

// scrollBase is where a relative command starts from: the running
// animation's target, otherwise the live offset
func (c *Coordinator) scrollBase() float64 {
	if c.anim != nil {
		return c.anim.to
	}
	return c.surface.Geometry().Offset
}

func (c *Coordinator) smoothScroll(target float64) {
	g := c.surface.Geometry()
	target = g.Clamp(target)
	if target == g.Offset && c.anim == nil {
		return
	}
	c.stopAnimation()
	c.stats.ScrollCommands++
	c.anim = &scrollAnimation{
		from:     g.Offset,
		to:       target,
		start:    c.sched.Now(),
		duration: ScrollDuration,
		easing:   EaseOutCubic,
	}
	c.logger.Debug("smooth scroll",
		zap.Float64("from", g.Offset),
		zap.Float64("to", target))
	c.animFrame = c.sched.RequestFrame(c.stepAnimation)
}

func (c *Coordinator) stepAnimation(now time.Time) {
	c.animFrame = nil
	if c.anim == nil {
		return
	}
	offset, done := c.anim.at(now)
	if done {
		c.anim = nil
	}
	c.surface.setOffset(offset)
	if !done {
		c.animFrame = c.sched.RequestFrame(c.stepAnimation)
	}
}

func (c *Coordinator) stopAnimation() {
	if c.animFrame != nil {
		c.animFrame.Cancel()
		c.animFrame = nil
	}
	c.anim = nil
}

// handleScroll coalesces notifications: only the first one in a frame
// schedules work, the frame callback reads the latest geometry
func (c *Coordinator) handleScroll() {
	c.stats.ScrollEvents++
	if c.recompute != nil {
		return
	}
	c.recompute = c.sched.RequestFrame(func(time.Time) {
		c.recompute = nil
		c.recomputeNow()
	})
}

func (c *Coordinator) handleResize() {
	c.recomputeNow()
}

func (c *Coordinator) cancelRecompute() {
	if c.recompute != nil {
		c.recompute.Cancel()
		c.recompute = nil
	}
}

func (c *Coordinator) recomputeNow() {
	c.stats.Recomputations++
	g := c.surface.Geometry()
	next := State{
		CurrentIndex: DeriveIndex(g, c.itemCount, c.opts.ItemsPerView),
		ItemCount:    c.itemCount,
		Boundaries:   DeriveBoundaries(g),
	}
	if next == c.state {
		return
	}
	prev := c.state
	c.state = next
	if prev.CurrentIndex != next.CurrentIndex {
		c.logger.Debug("index changed",
			zap.Int("from", prev.CurrentIndex),
			zap.Int("to", next.CurrentIndex),
			zap.Int("items", next.ItemCount))
	}
	c.observers.emit(next)
}

func (c *Coordinator) handlePointer(ev *PointerEvent) {
	if !c.opts.EnableTouch {
		return
	}
	switch ev.Kind {
	case PointerDown:
		c.gesture = c.gesture.Begin(ev.X, ev.Y, ev.Time)
	case PointerMove:
		var suppress bool
		c.gesture, suppress = c.gesture.Move(ev.X, ev.Y)
		if suppress {
			ev.PreventDefault()
		}
	case PointerUp:
		var swipe Swipe
		c.gesture, swipe = c.gesture.End(ev.X, ev.Time, c.opts.SwipeThreshold)
		if swipe.Commit {
			c.stats.Swipes++
			c.logger.Debug("swipe committed",
				zap.String("direction", string(swipe.Direction)),
				zap.Float64("distance", swipe.Distance),
				zap.Float64("velocity", swipe.Velocity))
			c.ScrollTo(swipe.Direction)
		}
	case PointerCancel:
		c.gesture = c.gesture.Cancel()
	}
}
