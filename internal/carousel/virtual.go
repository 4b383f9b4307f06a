package carousel

import (
	"sort"
	"time"
)

// DefaultFrameInterval is one 60Hz frame
const DefaultFrameInterval = 16 * time.Millisecond

type virtualEntry struct {
	due       time.Time
	seq       uint64
	fn        func()
	frameFn   func(time.Time)
	cancelled bool
}

func (e *virtualEntry) Cancel() { e.cancelled = true }

// VirtualScheduler is a deterministic Scheduler driven by explicit calls to
// Advance and Frame. It is used by tests and by headless hosts.
type VirtualScheduler struct {
	origin        time.Time
	now           time.Time
	lastFrame     time.Time
	frameInterval time.Duration
	seq           uint64
	frames        []*virtualEntry
	timers        []*virtualEntry
	framesRun     int
}

// NewVirtualScheduler starts the virtual clock at start
func NewVirtualScheduler(start time.Time) *VirtualScheduler {
	return &VirtualScheduler{
		origin:        start,
		now:           start,
		lastFrame:     start,
		frameInterval: DefaultFrameInterval,
	}
}

// Now returns the virtual time
func (s *VirtualScheduler) Now() time.Time {
	return s.now
}

// RequestFrame queues fn for the next frame
func (s *VirtualScheduler) RequestFrame(fn func(now time.Time)) Handle {
	s.seq++
	e := &virtualEntry{seq: s.seq, frameFn: fn}
	s.frames = append(s.frames, e)
	return e
}

// AfterFunc queues fn to run once d has elapsed on the virtual clock
func (s *VirtualScheduler) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	e := &virtualEntry{due: s.now.Add(d), seq: s.seq, fn: fn}
	s.timers = append(s.timers, e)
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due.Equal(s.timers[j].due) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due.Before(s.timers[j].due)
	})
	return e
}

// Frame runs the callbacks queued so far at the current virtual time and
// returns how many ran. Callbacks they request wait for the next frame.
func (s *VirtualScheduler) Frame() int {
	pending := s.frames
	s.frames = nil
	s.lastFrame = s.now
	s.framesRun++

	ran := 0
	for _, e := range pending {
		if e.cancelled {
			continue
		}
		e.cancelled = true
		e.frameFn(s.now)
		ran++
	}
	return ran
}

// Advance moves the clock forward by d, running due timers and any frame
// boundaries (every DefaultFrameInterval) that have queued callbacks.
func (s *VirtualScheduler) Advance(d time.Duration) {
	end := s.now.Add(d)
	for {
		s.pruneTimers()

		var timer *virtualEntry
		if len(s.timers) > 0 && !s.timers[0].due.After(end) {
			timer = s.timers[0]
		}
		frameDue, frameOK := s.nextFrameDue()
		frameOK = frameOK && !frameDue.After(end)

		switch {
		case timer != nil && (!frameOK || !frameDue.Before(timer.due)):
			s.timers = s.timers[1:]
			s.now = timer.due
			timer.cancelled = true
			timer.fn()
		case frameOK:
			s.now = frameDue
			s.Frame()
		default:
			s.now = end
			return
		}
	}
}

// nextFrameDue is the next frame boundary at or after now, if any frame is queued
func (s *VirtualScheduler) nextFrameDue() (time.Time, bool) {
	live := false
	for _, e := range s.frames {
		if !e.cancelled {
			live = true
			break
		}
	}
	if !live {
		return time.Time{}, false
	}
	k := s.now.Sub(s.origin) / s.frameInterval
	due := s.origin.Add(k * s.frameInterval)
	if due.Before(s.now) || !due.After(s.lastFrame) {
		due = due.Add(s.frameInterval)
	}
	return due, true
}

func (s *VirtualScheduler) pruneTimers() {
	live := s.timers[:0]
	for _, e := range s.timers {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	s.timers = live
}

// PendingFrames counts queued frame callbacks that have not been cancelled
func (s *VirtualScheduler) PendingFrames() int {
	n := 0
	for _, e := range s.frames {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// PendingTimers counts live timers
func (s *VirtualScheduler) PendingTimers() int {
	n := 0
	for _, e := range s.timers {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// FramesRun counts frames flushed so far
func (s *VirtualScheduler) FramesRun() int {
	return s.framesRun
}
