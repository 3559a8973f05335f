package input

import "sync"

// State buffers actions between the key poller goroutine and the tick loop
type State struct {
	mu      sync.Mutex
	pending []Action
}

// NewState creates an empty action buffer
func NewState() *State {
	return &State{
		pending: make([]Action, 0, 16),
	}
}

// Press records an action for the next tick
func (s *State) Press(a Action) {
	if a == ActionNone {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, a)
	s.mu.Unlock()
}

// Drain returns pending actions in press order and empties the buffer
func (s *State) Drain() []Action {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	out := make([]Action, len(s.pending))
	copy(out, s.pending)
	s.pending = s.pending[:0]
	return out
}
