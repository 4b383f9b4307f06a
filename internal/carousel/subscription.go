package carousel

// Subscription is the lifetime of one listener registration. Release is
// idempotent and safe on a nil receiver.
type Subscription struct {
	release  func()
	released bool
}

func newSubscription(release func()) *Subscription {
	return &Subscription{release: release}
}

// Release unregisters the listener
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.release != nil {
		s.release()
	}
}

// Active reports whether the listener is still registered
func (s *Subscription) Active() bool {
	return s != nil && !s.released
}

// Scope owns subscriptions and scheduled handles and releases all of them at once
type Scope struct {
	subs    []*Subscription
	handles []Handle
}

// Add takes ownership of sub
func (s *Scope) Add(sub *Subscription) {
	s.subs = append(s.subs, sub)
}

// Defer takes ownership of a scheduled handle
func (s *Scope) Defer(h Handle) {
	if h != nil {
		s.handles = append(s.handles, h)
	}
}

// Len counts owned resources
func (s *Scope) Len() int {
	return len(s.subs) + len(s.handles)
}

// Close releases everything in reverse acquisition order
func (s *Scope) Close() {
	for i := len(s.handles) - 1; i >= 0; i-- {
		s.handles[i].Cancel()
	}
	for i := len(s.subs) - 1; i >= 0; i-- {
		s.subs[i].Release()
	}
	s.handles = nil
	s.subs = nil
}

type listener[T any] struct {
	id int
	fn func(T)
}

// listeners is an ordered listener list; emit snapshots it so listeners may
// unsubscribe while being notified
type listeners[T any] struct {
	nextID int
	items  []listener[T]
}

func (l *listeners[T]) add(fn func(T)) *Subscription {
	l.nextID++
	id := l.nextID
	l.items = append(l.items, listener[T]{id: id, fn: fn})
	return newSubscription(func() {
		for i, it := range l.items {
			if it.id == id {
				l.items = append(l.items[:i:i], l.items[i+1:]...)
				return
			}
		}
	})
}

func (l *listeners[T]) emit(v T) {
	snapshot := make([]listener[T], len(l.items))
	copy(snapshot, l.items)
	for _, it := range snapshot {
		if l.has(it.id) {
			it.fn(v)
		}
	}
}

func (l *listeners[T]) has(id int) bool {
	for _, it := range l.items {
		if it.id == id {
			return true
		}
	}
	return false
}

func (l *listeners[T]) len() int {
	return len(l.items)
}
