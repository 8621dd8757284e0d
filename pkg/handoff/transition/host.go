package transition

// Target is a payload identifying what to transition to.
// Validate only checks that the payload is usable (non-nil, well formed);
// the controller never looks inside it.
type Target interface {
	Validate() error
}

// Host is the navigation framework the controller drives.
type Host[T Target] interface {
	// RequestBecomeCurrent asks the host to make the controller's screen the
	// active one again. The host may call Resumed synchronously.
	RequestBecomeCurrent()

	// ApplyBackground syncs shared background visuals to target.
	// Called at fire time, before PushState.
	ApplyBackground(target T)

	// PushState constructs the downstream state for target and pushes it.
	PushState(target T) error
}
