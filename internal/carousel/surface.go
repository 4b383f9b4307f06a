package carousel

import (
	"math"
	"time"
)

// Geometry is the measured state of the scrollable viewport, in px
type Geometry struct {
	Offset         float64
	ScrollExtent   float64
	ViewportExtent float64
}

// Measured reports whether layout has happened
func (g Geometry) Measured() bool {
	return g.ViewportExtent > 0 && g.ScrollExtent > 0
}

// MaxOffset is the largest valid Offset
func (g Geometry) MaxOffset() float64 {
	return math.Max(0, g.ScrollExtent-g.ViewportExtent)
}

// Clamp limits offset to the valid scroll range
func (g Geometry) Clamp(offset float64) float64 {
	if offset < 0 || math.IsNaN(offset) {
		return 0
	}
	if max := g.MaxOffset(); offset > max {
		return max
	}
	return offset
}

// PointerKind identifies a pointer notification
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
	PointerEnter
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is one touch/pointer notification delivered to the surface
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	Time time.Time

	defaultPrevented bool
}

// PreventDefault stops the host from applying its native scroll for this event
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Surface models the scrollable element: it holds the geometry and emits
// scroll, resize and pointer notifications to subscribers.
type Surface struct {
	geom    Geometry
	scroll  listeners[Geometry]
	resize  listeners[Geometry]
	pointer listeners[*PointerEvent]
}

// NewSurface creates an unmeasured surface
func NewSurface() *Surface {
	return &Surface{}
}

// Geometry returns the current measurements
func (s *Surface) Geometry() Geometry {
	return s.geom
}

// Layout records new extents from the host layout pass. The offset is only
// moved when it no longer fits, in which case a scroll notification follows
// the resize notification.
func (s *Surface) Layout(scrollExtent, viewportExtent float64) {
	s.geom.ScrollExtent = math.Max(0, scrollExtent)
	s.geom.ViewportExtent = math.Max(0, viewportExtent)
	clamped := s.geom.Clamp(s.geom.Offset)
	moved := clamped != s.geom.Offset
	s.geom.Offset = clamped

	s.resize.emit(s.geom)
	if moved {
		s.scroll.emit(s.geom)
	}
}

// ScrollBy applies a native (wheel) scroll
func (s *Surface) ScrollBy(delta float64) bool {
	return s.setOffset(s.geom.Offset + delta)
}

// setOffset moves the viewport and emits a scroll notification when it changed
func (s *Surface) setOffset(offset float64) bool {
	offset = s.geom.Clamp(offset)
	if offset == s.geom.Offset {
		return false
	}
	s.geom.Offset = offset
	s.scroll.emit(s.geom)
	return true
}

// DispatchPointer delivers ev to pointer listeners and reports whether native
// handling was suppressed
func (s *Surface) DispatchPointer(ev *PointerEvent) bool {
	if ev == nil {
		return false
	}
	s.pointer.emit(ev)
	return ev.DefaultPrevented()
}

// OnScroll subscribes to scroll notifications
func (s *Surface) OnScroll(fn func(Geometry)) *Subscription {
	return s.scroll.add(fn)
}

// OnResize subscribes to resize notifications
func (s *Surface) OnResize(fn func(Geometry)) *Subscription {
	return s.resize.add(fn)
}

// OnPointer subscribes to pointer notifications
func (s *Surface) OnPointer(fn func(*PointerEvent)) *Subscription {
	return s.pointer.add(fn)
}

// Listeners counts live subscriptions across all event sources
func (s *Surface) Listeners() int {
	return s.scroll.len() + s.resize.len() + s.pointer.len()
}
