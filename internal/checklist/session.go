package checklist

import "sync"

// Session holds the checked state for every checklist opened during this
// run. State is keyed by file path and kept only in memory: closing the
// viewer resets every checklist, which is the expected behavior between
// flights.
type Session struct {
	mu      sync.Mutex
	checked map[string][]bool
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{checked: make(map[string][]bool)}
}

// Checked returns the state slice for a checklist with n items, creating it
// on first access. The returned slice is a copy.
func (s *Session) Checked(path string, n int) []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.ensure(path, n)
	out := make([]bool, len(state))
	copy(out, state)
	return out
}

// Toggle flips one item and returns its new state.
func (s *Session) Toggle(path string, index, n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.ensure(path, n)
	if index < 0 || index >= len(state) {
		return false
	}
	state[index] = !state[index]
	return state[index]
}

// Progress reports how many of the checklist's n items are checked.
func (s *Session) Progress(path string, n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.ensure(path, n)
	count := 0
	for _, c := range state {
		if c {
			count++
		}
	}
	return count
}

// Complete reports whether every item of a non-empty checklist is checked.
func (s *Session) Complete(path string, n int) bool {
	return n > 0 && s.Progress(path, n) == n
}

// UncheckAll clears every item of one checklist.
func (s *Session) UncheckAll(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.checked[path]
	for i := range state {
		state[i] = false
	}
}

// Forget drops state for files that no longer exist, keyed by the surviving
// paths. Called after a library rescan.
func (s *Session) Forget(keep map[string]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for path := range s.checked {
		if !keep[path] {
			delete(s.checked, path)
		}
	}
}

// ensure resizes the state slice when the underlying file changed length.
// Existing item states are preserved where the index still exists.
func (s *Session) ensure(path string, n int) []bool {
	state, ok := s.checked[path]
	if !ok || len(state) != n {
		resized := make([]bool, n)
		copy(resized, state)
		s.checked[path] = resized
		state = resized
	}
	return state
}
