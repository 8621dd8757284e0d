package router

import "time"

// StackEntry represents a single screen on the navigation stack.
type StackEntry struct {
	Screen Screen
	Pushed time.Time
}

// Stack holds the live screens, bottom first.
// The top entry is the current screen.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a screen on top of the stack.
func (s *Stack) Push(screen Screen, pushed time.Time) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Pushed: pushed,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IndexOf returns the position of screen counted from the bottom, or -1.
func (s *Stack) IndexOf(screen Screen) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Screen == screen {
			return i
		}
	}
	return -1
}

// Screens returns the screens bottom first.
func (s *Stack) Screens() []Screen {
	screens := make([]Screen, len(s.entries))
	for i, e := range s.entries {
		screens[i] = e.Screen
	}
	return screens
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
