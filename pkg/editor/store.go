package editor

import (
	"sync"

	"github.com/goliatone/go-cardgen/pkg/document"
)

// Store serializes dispatches against a single State value. It exists for
// hosts that drive the reducer from multiple goroutines; the reducer itself
// stays pure.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners []func(State)
}

// NewStore creates a store seeded with the given document.
func NewStore(doc document.TemplateDocument) *Store {
	return &Store{state: NewState(doc)}
}

// Dispatch reduces the action into the store's state and notifies listeners
// when the state changed.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	next := Reduce(s.state, a)
	s.state = next
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener invoked after every dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
