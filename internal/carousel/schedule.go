package carousel

import "time"

// Handle cancels a scheduled callback. Cancel is idempotent and safe after the
// callback already ran.
type Handle interface {
	Cancel()
}

// Scheduler is the only source of time for the engine. Implementations run every
// callback on the caller's goroutine so engine state never needs locking.
type Scheduler interface {
	Now() time.Time
	// RequestFrame runs fn once at the next frame boundary. Callbacks requested
	// while a frame is running wait for the following frame.
	RequestFrame(fn func(now time.Time)) Handle
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Handle
}

// HandleFunc adapts a plain function to Handle
type HandleFunc func()

// Cancel calls f
func (f HandleFunc) Cancel() {
	if f != nil {
		f()
	}
}

// Ticker is the owned handle of a repeating timer. It holds at most one
// scheduled callback; arming again replaces the previous one.
type Ticker struct {
	sched    Scheduler
	handle   Handle
	interval time.Duration
	fn       func()
	gen      uint64
}

// NewTicker creates an idle ticker
func NewTicker(sched Scheduler) *Ticker {
	return &Ticker{sched: sched}
}

// Arm cancels any live timer and starts a new one firing fn every interval
func (t *Ticker) Arm(interval time.Duration, fn func()) {
	t.Cancel()
	if interval <= 0 || fn == nil {
		return
	}
	t.interval = interval
	t.fn = fn
	t.schedule()
}

func (t *Ticker) schedule() {
	gen := t.gen
	t.handle = t.sched.AfterFunc(t.interval, func() {
		if gen != t.gen {
			return
		}
		// next period is booked before fn runs so fn may Cancel or re-Arm
		t.schedule()
		t.fn()
	})
}

// Cancel stops the timer. Ticks already delivered but not yet run are dropped.
func (t *Ticker) Cancel() {
	t.gen++
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
}

// Active reports whether a timer is live
func (t *Ticker) Active() bool {
	return t.handle != nil
}

// Interval of the live timer, zero when idle
func (t *Ticker) Interval() time.Duration {
	if !t.Active() {
		return 0
	}
	return t.interval
}
