package carousel

import (
	"math"
	"time"
)

// GesturePhase is the recognizer state of one touch interaction
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	// GestureSensing: touching, axis not decided yet
	GestureSensing
	// GestureDragging: horizontal intent locked, native scroll suppressed
	GestureDragging
	// GestureIgnoring: vertical intent, left to native scrolling
	GestureIgnoring
)

func (p GesturePhase) String() string {
	switch p {
	case GestureIdle:
		return "idle"
	case GestureSensing:
		return "sensing"
	case GestureDragging:
		return "dragging"
	case GestureIgnoring:
		return "ignoring"
	default:
		return "unknown"
	}
}

// Gesture is an immutable gesture session. Transitions return the next value.
type Gesture struct {
	Phase     GesturePhase
	StartX    float64
	StartY    float64
	StartTime time.Time
}

// Swipe is the outcome of ending a gesture
type Swipe struct {
	Commit    bool
	Direction Direction
	Distance  float64 // startX - endX
	Velocity  float64 // px/ms
	Threshold float64 // effective threshold that was applied
}

// IsDragging reports whether the axis lock picked horizontal
func (g Gesture) IsDragging() bool {
	return g.Phase == GestureDragging
}

// Begin starts a new session, discarding any previous one
func (g Gesture) Begin(x, y float64, at time.Time) Gesture {
	return Gesture{
		Phase:     GestureSensing,
		StartX:    x,
		StartY:    y,
		StartTime: at,
	}
}

// Move advances the session and reports whether native scrolling must be
// suppressed for this move.
func (g Gesture) Move(x, y float64) (Gesture, bool) {
	switch g.Phase {
	case GestureDragging:
		return g, true
	case GestureSensing:
		diffX := math.Abs(x - g.StartX)
		diffY := math.Abs(y - g.StartY)
		if diffX > diffY && diffX > AxisLockThreshold {
			g.Phase = GestureDragging
			return g, true
		}
		if diffY > diffX && diffY > AxisLockThreshold {
			g.Phase = GestureIgnoring
		}
		return g, false
	default:
		return g, false
	}
}

// End closes the session. Only a dragging session can commit a swipe; the
// returned gesture is always idle.
func (g Gesture) End(x float64, at time.Time, swipeThreshold float64) (Gesture, Swipe) {
	if g.Phase != GestureDragging {
		return Gesture{}, Swipe{}
	}

	diff := g.StartX - x
	distance := math.Abs(diff)
	durationMs := float64(at.Sub(g.StartTime)) / float64(time.Millisecond)

	var velocity float64
	switch {
	case durationMs > 0:
		velocity = distance / durationMs
	case distance > 0:
		velocity = math.Inf(1)
	}

	threshold := swipeThreshold
	if velocity > FlickVelocity {
		threshold = swipeThreshold * FlickThresholdFactor
	}

	s := Swipe{
		Distance:  diff,
		Velocity:  velocity,
		Threshold: threshold,
	}
	if distance > threshold {
		s.Commit = true
		if diff > 0 {
			s.Direction = DirectionRight
		} else {
			s.Direction = DirectionLeft
		}
	}
	return Gesture{}, s
}

// Cancel discards the session
func (g Gesture) Cancel() Gesture {
	return Gesture{}
}
