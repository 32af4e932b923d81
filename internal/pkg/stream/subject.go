package stream

import "sync"

// Subject holds the latest value and replays it to every new subscriber.
type Subject[T any] struct {
	mu      sync.RWMutex
	value   T
	nextID  uint64
	entries map[uint64]*entry[T]
}

type entry[T any] struct {
	fn     func(T)
	active bool
}

// Subscription releases a subscriber registered with Subscribe.
type Subscription interface {
	Unsubscribe()
}

type subscription[T any] struct {
	subject *Subject[T]
	id      uint64
	once    sync.Once
}

// NewSubject creates a subject seeded with initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		value:   initial,
		entries: make(map[uint64]*entry[T]),
	}
}

// Current returns the latest published value.
func (s *Subject[T]) Current() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Publish replaces the current value and delivers it to all subscribers.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	s.value = v
	targets := make([]*entry[T], 0, len(s.entries))
	for _, e := range s.entries {
		targets = append(targets, e)
	}
	s.mu.Unlock()

	for _, e := range targets {
		s.deliver(e, v)
	}
}

// Subscribe registers fn and immediately calls it with the current value.
func (s *Subject[T]) Subscribe(fn func(T)) Subscription {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	e := &entry[T]{fn: fn, active: true}
	s.entries[id] = e
	current := s.value
	s.mu.Unlock()

	s.deliver(e, current)

	return &subscription[T]{subject: s, id: id}
}

// Subscribers returns the number of live subscriptions.
func (s *Subject[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Subject[T]) deliver(e *entry[T], v T) {
	s.mu.RLock()
	active := e.active
	s.mu.RUnlock()
	if !active {
		return
	}
	e.fn(v)
}

func (s *subscription[T]) Unsubscribe() {
	s.once.Do(func() {
		s.subject.mu.Lock()
		if e, ok := s.subject.entries[s.id]; ok {
			e.active = false
			delete(s.subject.entries, s.id)
		}
		s.subject.mu.Unlock()
	})
}
