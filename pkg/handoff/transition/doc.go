// Package transition defers a screen push until the owning screen is ready
// to navigate away.
//
// A Controller holds at most one pending transition. Scheduling a new one
// replaces the previous target, cancelling discards it, and the push only
// happens once the host reports that the intro animation has arrived (or, after
// a resume, on the screen's next update).
//
// # Basic Usage
//
//	c := transition.New[*beatmap.Info](host)
//
//	// Any number of calls before the push; the last one wins.
//	_ = c.ScheduleSwitch(easy)
//	_ = c.ScheduleSwitch(hard)
//
//	// Host callback once the logo has arrived on a fresh activation.
//	if err := c.OnAnimationArriving(false); err != nil {
//	    // construction or push of the downstream screen failed
//	}
//
// Each ScheduleSwitch bumps a generation counter. The armed transition records
// the generation it was created with and only fires while that generation is
// still current, so cancelled or superseded transitions are no-ops.
//
// The controller is not safe for concurrent mutation. ScheduleSwitch,
// CancelPending, OnAnimationArriving, Update and Resumed must all be called
// from the host's UI loop. State, ValidForResume and Generation may be called from any goroutine.
package transition
