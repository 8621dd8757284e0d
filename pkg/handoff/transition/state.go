package transition

// State is the lifecycle position of a Controller.
type State int32

const (
	StateIdle              State = iota // Nothing armed, downstream not pushed
	StateAwaitingAnimation              // A switch is armed and waiting for the fire check
	StateTransitioned                   // Downstream state pushed; waiting for control to return
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingAnimation:
		return "AwaitingAnimation"
	case StateTransitioned:
		return "Transitioned"
	default:
		return "Unknown"
	}
}
