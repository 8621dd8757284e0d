package router

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	// ErrEmptyStack is returned when exiting or ticking with no screen.
	ErrEmptyStack = errors.New("router: stack is empty")

	// ErrScreenNotInStack is returned by MakeCurrent for unknown screens.
	ErrScreenNotInStack = errors.New("router: screen not in stack")

	// ErrAlreadyInStack is returned when pushing a screen that is already live.
	ErrAlreadyInStack = errors.New("router: screen already in stack")

	// ErrNilScreen is returned when pushing nil.
	ErrNilScreen = errors.New("router: nil screen")
)

// Event is a navigation event reported to OnChange listeners.
type Event int

const (
	EventPushed Event = iota
	EventSuspended
	EventResumed
	EventExited
)

func (e Event) String() string {
	switch e {
	case EventPushed:
		return "pushed"
	case EventSuspended:
		return "suspended"
	case EventResumed:
		return "resumed"
	case EventExited:
		return "exited"
	default:
		return "unknown"
	}
}

// ChangeFunc observes navigation events.
type ChangeFunc func(event Event, screen Screen)

// Router owns the screen stack and drives screen lifecycles.
// It is meant to be used from a single UI goroutine; hooks may call back into
// the router (a screen may push or make another screen current from its hooks).
type Router struct {
	stack     *Stack
	logger    *slog.Logger
	listeners []ChangeFunc
	now       func() time.Time
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for navigation events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithClock overrides the clock used to stamp stack entries.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		r.now = now
	}
}

// New creates a new Router with an empty stack.
func New(opts ...Option) *Router {
	r := &Router{
		stack:  NewStack(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnChange registers a listener for navigation events.
func (r *Router) OnChange(fn ChangeFunc) *Router {
	r.listeners = append(r.listeners, fn)
	return r
}

// Current returns the screen on top of the stack, or nil.
func (r *Router) Current() Screen {
	if entry := r.stack.Peek(); entry != nil {
		return entry.Screen
	}
	return nil
}

// IsCurrent reports whether screen is on top of the stack.
func (r *Router) IsCurrent(screen Screen) bool {
	current := r.Current()
	return current != nil && current == screen
}

// Stack returns the navigation stack.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Push suspends the current screen and makes screen current.
// The new screen receives OnEntering followed by LogoArriving(false).
func (r *Router) Push(screen Screen) error {
	if screen == nil {
		return ErrNilScreen
	}
	if r.stack.IndexOf(screen) >= 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyInStack, screen.Name())
	}

	if prev := r.Current(); prev != nil {
		if s, ok := prev.(Suspender); ok {
			s.OnSuspending()
		}
		r.notify(EventSuspended, prev)
	}

	r.stack.Push(screen, r.now())
	r.logger.Debug("screen pushed", "screen", screen.Name(), "depth", r.stack.Len())

	if e, ok := screen.(Enterer); ok {
		e.OnEntering()
	}
	r.notify(EventPushed, screen)

	// The logo only arrives on the current screen.
	if !r.IsCurrent(screen) {
		return nil
	}
	return r.logoArriving(screen, false)
}

// Exit removes the current screen and resumes the one below it. Screens below
// that are not valid for resume are exited too.
func (r *Router) Exit() error {
	if r.stack.IsEmpty() {
		return ErrEmptyStack
	}

	r.exitTop()

	for {
		next := r.Current()
		if next == nil {
			return nil
		}
		if v, ok := next.(ResumeValidator); ok && !v.ValidForResume() {
			r.logger.Debug("screen not valid for resume", "screen", next.Name())
			r.exitTop()
			continue
		}
		return r.resume(next)
	}
}

// MakeCurrent exits every screen above screen and resumes it.
// It is a no-op when screen is already current.
func (r *Router) MakeCurrent(screen Screen) error {
	idx := r.stack.IndexOf(screen)
	if idx < 0 {
		return ErrScreenNotInStack
	}
	if idx == r.stack.Len()-1 {
		return nil
	}

	for r.stack.Len()-1 > idx {
		r.exitTop()
	}
	return r.resume(screen)
}

// Tick updates the current screen.
func (r *Router) Tick() error {
	current := r.Current()
	if current == nil {
		return ErrEmptyStack
	}
	if u, ok := current.(Updater); ok {
		if err := u.Update(); err != nil {
			return fmt.Errorf("router: screen %s update error: %w", current.Name(), err)
		}
	}
	return nil
}

func (r *Router) exitTop() {
	entry := r.stack.Pop()
	if entry == nil {
		return
	}
	if e, ok := entry.Screen.(Exiter); ok {
		e.OnExiting()
	}
	r.logger.Debug("screen exited", "screen", entry.Screen.Name(), "depth", r.stack.Len())
	r.notify(EventExited, entry.Screen)
}

func (r *Router) resume(screen Screen) error {
	if res, ok := screen.(Resumer); ok {
		res.OnResuming()
	}
	r.notify(EventResumed, screen)
	return r.logoArriving(screen, true)
}

func (r *Router) logoArriving(screen Screen, resuming bool) error {
	l, ok := screen.(LogoReceiver)
	if !ok {
		return nil
	}
	if err := l.LogoArriving(resuming); err != nil {
		return fmt.Errorf("router: screen %s logo arriving error: %w", screen.Name(), err)
	}
	return nil
}

func (r *Router) notify(event Event, screen Screen) {
	for _, fn := range r.listeners {
		fn(event, screen)
	}
}
