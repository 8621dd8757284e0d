// Package router provides a screen stack with explicit lifecycle hooks.
//
// Screens are pushed on top of each other. The router suspends the screen
// being covered, resumes the one being uncovered and forwards the logo
// arrival signal to whichever screen just became current. Lifecycle hooks are
// optional interfaces, so a screen only implements what it needs.
//
// # Basic Usage
//
//	r := router.New()
//
//	_ = r.Push(songSelect)
//	_ = r.Push(loader)    // loader.LogoArriving(false)
//
//	// Later, from the editor:
//	_ = r.MakeCurrent(loader) // exits the editor, loader.LogoArriving(true)
//
//	// Once per frame:
//	_ = r.Tick()
//
// # Resume Validity
//
// A screen implementing ResumeValidator can refuse to be resumed. When the
// screen above it exits, the router exits it as well and keeps unwinding until
// it finds a screen that accepts. This is how a transitional screen disappears
// together with the screen it pushed.
//
// MakeCurrent does not consult ResumeValidator for its target; the caller
// asked for that screen explicitly.
package router
