package router

// Screen is anything the router can put on the stack.
// Screens are compared by identity, so implementations should be pointers.
type Screen interface {
	Name() string
}

// The lifecycle hooks below are optional. The router calls the ones a screen
// implements.

// Enterer is notified right after the screen is pushed.
type Enterer interface {
	OnEntering()
}

// Suspender is notified when another screen is pushed on top.
type Suspender interface {
	OnSuspending()
}

// Resumer is notified when the screen becomes current again.
type Resumer interface {
	OnResuming()
}

// Exiter is notified when the screen leaves the stack.
type Exiter interface {
	OnExiting()
}

// LogoReceiver gets the logo arrival signal each time the screen becomes
// current. resuming is false on the first activation.
type LogoReceiver interface {
	LogoArriving(resuming bool) error
}

// Updater is ticked once per Router.Tick while current.
type Updater interface {
	Update() error
}

// ResumeValidator lets a screen decline being resumed. When the screen above
// it exits and ValidForResume returns false, it is exited as well.
type ResumeValidator interface {
	ValidForResume() bool
}
