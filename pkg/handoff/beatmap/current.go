package beatmap

import (
	"sync"

	"go.uber.org/atomic"
)

// Current is the globally selected working beatmap.
type Current struct {
	value atomic.Pointer[Working]

	mu        sync.Mutex
	listeners []func(prev, next *Working)
}

// NewCurrent creates a Current holding initial.
func NewCurrent(initial *Working) *Current {
	c := &Current{}
	c.value.Store(initial)
	return c
}

// Get returns the selected beatmap.
func (c *Current) Get() *Working {
	return c.value.Load()
}

// Set replaces the selected beatmap and notifies listeners.
func (c *Current) Set(next *Working) {
	prev := c.value.Swap(next)

	c.mu.Lock()
	listeners := append([]func(prev, next *Working){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
}

// OnChange registers fn to be called after every Set.
func (c *Current) OnChange(fn func(prev, next *Working)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}
