package transition

import (
	"errors"
	"testing"
)

type difficulty string

func (d difficulty) Validate() error {
	if d == "" {
		return errors.New("empty difficulty")
	}
	return nil
}

// recordingHost captures every outbound call.
type recordingHost struct {
	becomeCurrent int
	backgrounds   []difficulty
	pushes        []difficulty
	pushErr       error

	// onBecomeCurrent runs inside RequestBecomeCurrent, e.g. to resume the controller.
	onBecomeCurrent func()
}

func (h *recordingHost) RequestBecomeCurrent() {
	h.becomeCurrent++
	if h.onBecomeCurrent != nil {
		h.onBecomeCurrent()
	}
}

func (h *recordingHost) ApplyBackground(target difficulty) {
	h.backgrounds = append(h.backgrounds, target)
}

func (h *recordingHost) PushState(target difficulty) error {
	if h.pushErr != nil {
		return h.pushErr
	}
	h.pushes = append(h.pushes, target)
	return nil
}

func newTestController() (*Controller[difficulty], *recordingHost) {
	host := &recordingHost{}
	return New[difficulty](host), host
}

func mustSchedule(t *testing.T, c *Controller[difficulty], target difficulty) {
	t.Helper()
	if err := c.ScheduleSwitch(target); err != nil {
		t.Fatalf("schedule %q failed: %v", target, err)
	}
}

func TestScheduleSwitchDefersPush(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "easy")

	if len(host.pushes) != 0 {
		t.Fatalf("expected no push before arrival, got %v", host.pushes)
	}
	if host.becomeCurrent != 1 {
		t.Errorf("expected 1 become-current request, got %d", host.becomeCurrent)
	}
	if !c.ValidForResume() {
		t.Error("expected controller to be resumable after scheduling")
	}
	if c.State() != StateAwaitingAnimation {
		t.Errorf("expected state %s, got %s", StateAwaitingAnimation, c.State())
	}
	if target, ok := c.Pending(); !ok || target != "easy" {
		t.Errorf("expected pending easy, got %q (armed=%v)", target, ok)
	}
}

func TestLastScheduleWins(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "a")
	mustSchedule(t, c, "b")

	if err := c.OnAnimationArriving(false); err != nil {
		t.Fatalf("arrival failed: %v", err)
	}

	if len(host.pushes) != 1 || host.pushes[0] != "b" {
		t.Fatalf("expected single push of b, got %v", host.pushes)
	}
	if c.State() != StateTransitioned {
		t.Errorf("expected state %s, got %s", StateTransitioned, c.State())
	}
	if c.ValidForResume() {
		t.Error("expected controller to be non-resumable after push")
	}
}

func TestCancelSuppressesFire(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "a")
	c.CancelPending()

	if err := c.OnAnimationArriving(false); err != nil {
		t.Fatalf("arrival failed: %v", err)
	}

	if len(host.pushes) != 0 {
		t.Fatalf("expected no push after cancel, got %v", host.pushes)
	}
	if c.State() != StateIdle {
		t.Errorf("expected state %s, got %s", StateIdle, c.State())
	}
	if c.ValidForResume() {
		t.Error("expected cancel to clear resumable flag")
	}
}

func TestFireIsSingleShot(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "a")

	for i := 0; i < 3; i++ {
		if err := c.OnAnimationArriving(false); err != nil {
			t.Fatalf("arrival %d failed: %v", i, err)
		}
		if err := c.Update(); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}
	}

	if len(host.pushes) != 1 {
		t.Fatalf("expected exactly one push, got %v", host.pushes)
	}
}

func TestResumingArrivalIsInert(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "a")

	if err := c.OnAnimationArriving(true); err != nil {
		t.Fatalf("arrival failed: %v", err)
	}

	if len(host.pushes) != 0 {
		t.Fatalf("expected no push on resume, got %v", host.pushes)
	}
	if target, ok := c.Pending(); !ok || target != "a" {
		t.Errorf("expected a to stay armed, got %q (armed=%v)", target, ok)
	}

	if err := c.Update(); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(host.pushes) != 1 || host.pushes[0] != "a" {
		t.Errorf("expected update to fire a, got %v", host.pushes)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	tests := []struct {
		name     string
		schedule bool
		cancels  int
	}{
		{name: "idle single cancel", cancels: 1},
		{name: "idle double cancel", cancels: 2},
		{name: "armed single cancel", schedule: true, cancels: 1},
		{name: "armed double cancel", schedule: true, cancels: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, host := newTestController()
			if tt.schedule {
				mustSchedule(t, c, "a")
			}
			for i := 0; i < tt.cancels; i++ {
				c.CancelPending()
			}

			if c.State() != StateIdle {
				t.Errorf("expected state %s, got %s", StateIdle, c.State())
			}
			if c.ValidForResume() {
				t.Error("expected non-resumable")
			}
			if _, ok := c.Pending(); ok {
				t.Error("expected nothing pending")
			}
			if err := c.OnAnimationArriving(false); err != nil {
				t.Fatalf("arrival failed: %v", err)
			}
			if len(host.pushes) != 0 {
				t.Errorf("expected no push, got %v", host.pushes)
			}
		})
	}
}

func TestCancelAfterFireKeepsTransition(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "a")
	if err := c.OnAnimationArriving(false); err != nil {
		t.Fatalf("arrival failed: %v", err)
	}

	c.CancelPending()

	if c.State() != StateTransitioned {
		t.Errorf("expected state %s, got %s", StateTransitioned, c.State())
	}
	if len(host.pushes) != 1 {
		t.Errorf("expected the fired push to stand, got %v", host.pushes)
	}
}

func TestCancelThenRescheduleScenario(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "difficulty-7k")
	c.CancelPending()
	mustSchedule(t, c, "difficulty-4k")

	if err := c.OnAnimationArriving(false); err != nil {
		t.Fatalf("arrival failed: %v", err)
	}

	if len(host.pushes) != 1 || host.pushes[0] != "difficulty-4k" {
		t.Fatalf("expected single push of difficulty-4k, got %v", host.pushes)
	}
	if len(host.backgrounds) != 1 || host.backgrounds[0] != "difficulty-4k" {
		t.Fatalf("expected background synced to difficulty-4k, got %v", host.backgrounds)
	}
}

func TestScheduleSwitchRejectsInvalidTarget(t *testing.T) {
	c, host := newTestController()

	mustSchedule(t, c, "a")
	before := c.Generation()

	err := c.ScheduleSwitch("")
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	if c.Generation() != before {
		t.Errorf("expected generation to stay %d, got %d", before, c.Generation())
	}
	if host.becomeCurrent != 1 {
		t.Errorf("expected no extra become-current request, got %d", host.becomeCurrent)
	}
	if target, ok := c.Pending(); !ok || target != "a" {
		t.Errorf("expected a to stay armed, got %q (armed=%v)", target, ok)
	}
}

func TestArrivalWithNothingArmed(t *testing.T) {
	c, host := newTestController()

	if err := c.OnAnimationArriving(false); err != nil {
		t.Fatalf("arrival failed: %v", err)
	}
	if len(host.pushes) != 0 || len(host.backgrounds) != 0 {
		t.Errorf("expected no host calls, got pushes=%v backgrounds=%v", host.pushes, host.backgrounds)
	}
	if c.State() != StateIdle {
		t.Errorf("expected state %s, got %s", StateIdle, c.State())
	}
}

func TestPushErrorPropagatesUnmodified(t *testing.T) {
	c, host := newTestController()
	pushErr := errors.New("editor failed to load")
	host.pushErr = pushErr

	mustSchedule(t, c, "a")

	if err := c.OnAnimationArriving(false); err != pushErr {
		t.Fatalf("expected the host error unchanged, got %v", err)
	}
	if c.State() != StateIdle {
		t.Errorf("expected state %s after failed push, got %s", StateIdle, c.State())
	}

	host.pushErr = nil
	if err := c.OnAnimationArriving(false); err != nil {
		t.Fatalf("second arrival failed: %v", err)
	}
	if len(host.pushes) != 0 {
		t.Errorf("expected failed switch not to be retried, got %v", host.pushes)
	}
}

func TestScheduleWhileTransitioned(t *testing.T) {
	t.Run("host returns control", func(t *testing.T) {
		c, host := newTestController()
		mustSchedule(t, c, "a")
		if err := c.OnAnimationArriving(false); err != nil {
			t.Fatalf("arrival failed: %v", err)
		}

		host.onBecomeCurrent = c.Resumed
		mustSchedule(t, c, "b")

		if c.State() != StateAwaitingAnimation {
			t.Fatalf("expected state %s, got %s", StateAwaitingAnimation, c.State())
		}
		if err := c.Update(); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if len(host.pushes) != 2 || host.pushes[1] != "b" {
			t.Errorf("expected pushes [a b], got %v", host.pushes)
		}
	})

	t.Run("host keeps downstream on top", func(t *testing.T) {
		c, host := newTestController()
		mustSchedule(t, c, "a")
		if err := c.OnAnimationArriving(false); err != nil {
			t.Fatalf("arrival failed: %v", err)
		}

		mustSchedule(t, c, "b")

		if c.State() != StateTransitioned {
			t.Fatalf("expected state %s, got %s", StateTransitioned, c.State())
		}
		if _, ok := c.Pending(); ok {
			t.Error("expected switch to be discarded")
		}
		if c.ValidForResume() {
			t.Error("expected discarded switch to leave controller non-resumable")
		}
		if err := c.Update(); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if len(host.pushes) != 1 {
			t.Errorf("expected only the first push, got %v", host.pushes)
		}
	})
}

func TestResumedReturnsToIdle(t *testing.T) {
	c, _ := newTestController()

	// Resumed outside Transitioned is ignored.
	mustSchedule(t, c, "a")
	c.Resumed()
	if c.State() != StateAwaitingAnimation {
		t.Fatalf("expected state %s, got %s", StateAwaitingAnimation, c.State())
	}

	if err := c.OnAnimationArriving(false); err != nil {
		t.Fatalf("arrival failed: %v", err)
	}
	c.Resumed()

	if c.State() != StateIdle {
		t.Errorf("expected state %s, got %s", StateIdle, c.State())
	}
	if c.ValidForResume() {
		t.Error("expected non-resumable after control returned")
	}
}

func TestGenerationAdvances(t *testing.T) {
	c, _ := newTestController()

	start := c.Generation()
	mustSchedule(t, c, "a")
	mustSchedule(t, c, "b")
	c.CancelPending()

	if got := c.Generation(); got != start+3 {
		t.Errorf("expected generation %d, got %d", start+3, got)
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateIdle:              "Idle",
		StateAwaitingAnimation: "AwaitingAnimation",
		StateTransitioned:      "Transitioned",
		State(42):              "Unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int32(state), got, want)
		}
	}
}
