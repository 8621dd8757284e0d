package transition

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"
)

// pending is the single armed transition slot.
type pending[T Target] struct {
	target     T
	generation uint64
	armed      bool
}

// Controller owns at most one pending transition and fires it when the host
// signals that it is safe to navigate away.
type Controller[T Target] struct {
	host   Host[T]
	logger *slog.Logger
	name   string

	slot       pending[T]
	generation atomic.Uint64
	state      atomic.Int32
	resumable  atomic.Bool
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

// WithLogger sets the logger used for scheduling and fire events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName labels log lines with the owning screen's name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New creates an idle Controller driving host.
func New[T Target](host Host[T], opts ...Option) *Controller[T] {
	o := options{
		logger: slog.Default(),
		name:   "transition",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller[T]{
		host:   host,
		logger: o.logger,
		name:   o.name,
	}
}

// ScheduleSwitch replaces any pending transition with one to target, marks the
// controller resumable and asks the host to make it current. The push itself
// happens later, from OnAnimationArriving(false) or Update.
//
// If the downstream state is still on top after the host was asked to return
// control, the switch is dropped.
func (c *Controller[T]) ScheduleSwitch(target T) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	c.invalidate()
	c.resumable.Store(true)

	c.host.RequestBecomeCurrent()

	if c.State() == StateTransitioned {
		c.resumable.Store(false)
		c.logger.Warn("switch discarded, host did not return control",
			"controller", c.name, "target", target)
		return nil
	}

	c.slot = pending[T]{
		target:     target,
		generation: c.generation.Load(),
		armed:      true,
	}
	c.setState(StateAwaitingAnimation)
	// Resumed clears the flag when the host hands control back.
	c.resumable.Store(true)

	c.logger.Debug("switch scheduled",
		"controller", c.name, "target", target, "generation", c.slot.generation)
	return nil
}

// CancelPending discards the pending transition, if any, and clears the
// resumable flag. It never retracts a push that already happened.
func (c *Controller[T]) CancelPending() {
	c.invalidate()
	c.resumable.Store(false)

	if c.State() == StateAwaitingAnimation {
		c.setState(StateIdle)
		c.logger.Debug("switch cancelled", "controller", c.name)
	}
}

// OnAnimationArriving is the host's animation-arrival signal. A fresh
// activation fires the pending transition; a resume leaves it armed.
func (c *Controller[T]) OnAnimationArriving(resuming bool) error {
	if resuming {
		return nil
	}
	return c.fire()
}

// Update is the host's per-frame tick while the owning screen is current.
// It fires a transition armed while the screen was resuming.
func (c *Controller[T]) Update() error {
	return c.fire()
}

// Resumed tells the controller that the downstream state returned control.
func (c *Controller[T]) Resumed() {
	if c.State() != StateTransitioned {
		return
	}
	c.resumable.Store(false)
	c.setState(StateIdle)
	c.logger.Debug("control returned", "controller", c.name)
}

// State returns the current lifecycle state.
func (c *Controller[T]) State() State {
	return State(c.state.Load())
}

// ValidForResume reports whether the owning screen may be resumed when the
// screen above it exits.
func (c *Controller[T]) ValidForResume() bool {
	return c.resumable.Load()
}

// Generation returns the id the next fire check compares against.
// It increases on every ScheduleSwitch and CancelPending.
func (c *Controller[T]) Generation() uint64 {
	return c.generation.Load()
}

// Pending returns the armed target, if any.
func (c *Controller[T]) Pending() (T, bool) {
	if !c.live() {
		var zero T
		return zero, false
	}
	return c.slot.target, true
}

func (c *Controller[T]) fire() error {
	if !c.live() {
		return nil
	}

	target := c.slot.target
	c.slot = pending[T]{}

	c.logger.Debug("switch firing", "controller", c.name, "target", target)

	c.host.ApplyBackground(target)

	// PushState may re-enter the controller.
	c.setState(StateTransitioned)
	if err := c.host.PushState(target); err != nil {
		c.setState(StateIdle)
		return err
	}

	c.resumable.Store(false)
	return nil
}

func (c *Controller[T]) live() bool {
	return c.slot.armed && c.slot.generation == c.generation.Load()
}

// invalidate makes any armed slot stale.
func (c *Controller[T]) invalidate() {
	c.generation.Inc()
	c.slot = pending[T]{}
}

func (c *Controller[T]) setState(s State) {
	c.state.Store(int32(s))
}
