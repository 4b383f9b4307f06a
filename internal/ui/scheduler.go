package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"studyreel/internal/carousel"
)

// frameMsg flushes the frame callbacks queued since the last frame
type frameMsg time.Time

// timerMsg fires one AfterFunc callback
type timerMsg struct {
	id uint64
}

type frameEntry struct {
	fn        func(time.Time)
	cancelled bool
}

func (e *frameEntry) Cancel() { e.cancelled = true }

// Scheduler implements carousel.Scheduler on top of bubbletea commands.
// Callbacks run inside Update, so the engine never sees another goroutine.
// Commands produced by scheduling are collected and returned by Cmd.
type Scheduler struct {
	now           func() time.Time
	frameInterval time.Duration

	frames     []*frameEntry
	frameArmed bool

	nextID uint64
	timers map[uint64]func()

	pending []tea.Cmd
}

var _ carousel.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a scheduler ticking frames every frameInterval
func NewScheduler(frameInterval time.Duration) *Scheduler {
	if frameInterval <= 0 {
		frameInterval = carousel.DefaultFrameInterval
	}
	return &Scheduler{
		now:           time.Now,
		frameInterval: frameInterval,
		timers:        make(map[uint64]func()),
	}
}

// Now returns the wall clock
func (s *Scheduler) Now() time.Time {
	return s.now()
}

// RequestFrame queues fn for the next frame. One tick is in flight at a time.
func (s *Scheduler) RequestFrame(fn func(time.Time)) carousel.Handle {
	e := &frameEntry{fn: fn}
	s.frames = append(s.frames, e)
	if !s.frameArmed {
		s.frameArmed = true
		s.pending = append(s.pending, tea.Tick(s.frameInterval, func(t time.Time) tea.Msg {
			return frameMsg(t)
		}))
	}
	return e
}

// AfterFunc runs fn once d has elapsed. Cancelling drops the callback; the
// tick still arrives and is ignored.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) carousel.Handle {
	s.nextID++
	id := s.nextID
	s.timers[id] = fn
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return carousel.HandleFunc(func() {
		delete(s.timers, id)
	})
}

// Handle runs the callbacks for a scheduler message and reports whether msg
// belonged to the scheduler
func (s *Scheduler) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case frameMsg:
		s.frameArmed = false
		pending := s.frames
		s.frames = nil
		for _, e := range pending {
			if e.cancelled {
				continue
			}
			e.cancelled = true
			e.fn(time.Time(msg))
		}
		return true
	case timerMsg:
		fn, ok := s.timers[msg.id]
		if !ok {
			return true
		}
		delete(s.timers, msg.id)
		fn()
		return true
	}
	return false
}

// Cmd drains the commands scheduled since the last call
func (s *Scheduler) Cmd() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending reports queued frame callbacks and live timers
func (s *Scheduler) Pending() (frames, timers int) {
	for _, e := range s.frames {
		if !e.cancelled {
			frames++
		}
	}
	return frames, len(s.timers)
}
