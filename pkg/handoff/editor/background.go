package editor

import (
	"sync"

	"github.com/BrandonKowalski/handoff/pkg/handoff/beatmap"
)

// Background is the shared backdrop drawn behind the editor screens.
type Background struct {
	Beatmap        *beatmap.Working
	ParallaxAmount float64
}

// BackgroundStack owns the backdrop shared by every screen on the router.
type BackgroundStack struct {
	mu      sync.Mutex
	current Background
	updates int
}

// NewBackgroundStack creates a stack showing working.
func NewBackgroundStack(working *beatmap.Working) *BackgroundStack {
	return &BackgroundStack{current: Background{Beatmap: working}}
}

// Apply mutates the current background in place.
func (s *BackgroundStack) Apply(fn func(b *Background)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.current)
	s.updates++
}

// Current returns a copy of the current background.
func (s *BackgroundStack) Current() Background {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Updates returns how many times Apply ran.
func (s *BackgroundStack) Updates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}
