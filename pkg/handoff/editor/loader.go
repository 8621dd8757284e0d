// Package editor provides the beatmap editor screen and the transitional
// loader screen that pushes it.
//
// The loader sits between song select and the editor. Switching difficulty
// from inside the editor returns to the loader, which pushes a fresh editor
// for the new difficulty once it is current again. That way the switch never
// backs out to song select.
package editor

import (
	"log/slog"

	"github.com/BrandonKowalski/handoff/pkg/handoff"
	"github.com/BrandonKowalski/handoff/pkg/handoff/beatmap"
	"github.com/BrandonKowalski/handoff/pkg/handoff/constants"
	"github.com/BrandonKowalski/handoff/pkg/handoff/router"
	"github.com/BrandonKowalski/handoff/pkg/handoff/transition"
)

// Dependencies are the services the editor screens need.
type Dependencies struct {
	Router     *router.Router
	Beatmaps   *beatmap.Manager
	Current    *beatmap.Current
	Background *BackgroundStack
	Logger     *slog.Logger // defaults to handoff.GetInternalLogger()

	// EditorFactory builds the editor the loader pushes. Defaults to NewEditor
	// on Router.
	EditorFactory func(loader *Loader, working *beatmap.Working) *Editor
}

// Loader is the transitional screen that pushes the editor.
type Loader struct {
	deps       Dependencies
	initial    *beatmap.Info
	controller *transition.Controller[*beatmap.Info]
	spinner    Spinner
	editor     *Editor
}

// NewLoader creates a loader. When initial is non-nil the editor is pushed
// for it as soon as the loader's logo arrives.
func NewLoader(deps Dependencies, initial *beatmap.Info) *Loader {
	if deps.Logger == nil {
		deps.Logger = handoff.GetInternalLogger()
	}
	if deps.EditorFactory == nil {
		r := deps.Router
		deps.EditorFactory = func(loader *Loader, working *beatmap.Working) *Editor {
			return NewEditor(loader, r, working)
		}
	}

	l := &Loader{
		deps:    deps,
		initial: initial,
	}
	l.controller = transition.New[*beatmap.Info](loaderHost{l},
		transition.WithLogger(deps.Logger),
		transition.WithName(l.Name()),
	)
	return l
}

func (l *Loader) Name() string { return "editor loader" }

// BackgroundParallaxAmount is the parallax applied to the background while
// the loader is current.
func (l *Loader) BackgroundParallaxAmount() float64 { return 0.1 }

// AllowBackButton is false: the loader is never exited by the user directly.
func (l *Loader) AllowBackButton() bool { return false }

func (l *Loader) HideOverlaysOnEnter() bool { return true }

// DisallowExternalBeatmapRulesetChanges is true: only the loader changes the
// current beatmap while it is on the stack.
func (l *Loader) DisallowExternalBeatmapRulesetChanges() bool { return true }

// Load shows the busy indicator.
func (l *Loader) Load() {
	l.spinner.Show(handoff.Localize(constants.MessageLoadingEditor, nil))
}

// Spinner returns the busy indicator.
func (l *Loader) Spinner() Spinner {
	return l.spinner
}

// State returns the state of the pending editor switch.
func (l *Loader) State() transition.State {
	return l.controller.State()
}

// Editor returns the most recently pushed editor, or nil.
func (l *Loader) Editor() *Editor {
	return l.editor
}

// ScheduleDifficultySwitch returns to the loader and pushes a new editor for
// info once the loader is current. Later calls replace earlier ones.
// The spinner label only changes when the switch was actually armed.
func (l *Loader) ScheduleDifficultySwitch(info *beatmap.Info) error {
	if err := l.controller.ScheduleSwitch(info); err != nil {
		return err
	}
	if l.controller.State() != transition.StateAwaitingAnimation {
		return nil
	}
	l.spinner.Show(handoff.Localize(constants.MessageSwitching, map[string]any{
		"Difficulty": info.Version,
	}))
	return nil
}

// CancelPendingDifficultySwitch drops a scheduled switch.
func (l *Loader) CancelPendingDifficultySwitch() {
	l.controller.CancelPending()
}

func (l *Loader) OnEntering() {
	if l.spinner.Label == "" {
		l.Load()
	}
	if l.initial == nil {
		return
	}
	if err := l.ScheduleDifficultySwitch(l.initial); err != nil {
		l.deps.Logger.Error("Failed to schedule initial beatmap", "beatmap", l.initial, "error", err)
	}
}

// LogoArriving pushes the editor on a fresh activation. The push cannot happen
// in OnEntering: pushing makes the loader non-current before its logo arrives.
func (l *Loader) LogoArriving(resuming bool) error {
	return l.controller.OnAnimationArriving(resuming)
}

func (l *Loader) Update() error {
	return l.controller.Update()
}

func (l *Loader) OnSuspending() {
	l.spinner.Hide()
}

func (l *Loader) OnResuming() {
	l.controller.Resumed()
	l.spinner.Show(l.spinner.Label)
}

func (l *Loader) OnExiting() {
	l.controller.CancelPending()
}

// ValidForResume is true only while a switch is on its way.
func (l *Loader) ValidForResume() bool {
	return l.controller.ValidForResume()
}

// loaderHost connects the loader's controller to the router and beatmap services.
type loaderHost struct {
	l *Loader
}

func (h loaderHost) RequestBecomeCurrent() {
	if err := h.l.deps.Router.MakeCurrent(h.l); err != nil {
		h.l.deps.Logger.Error("Failed to make loader current", "error", err)
	}
}

func (h loaderHost) ApplyBackground(info *beatmap.Info) {
	working := h.l.deps.Beatmaps.GetWorkingBeatmap(info)
	h.l.deps.Current.Set(working)

	// The loader is the one screen after song select that changes the current
	// beatmap, so the shared background has to follow or the editor would
	// replace it with a new one.
	h.l.deps.Background.Apply(func(b *Background) {
		b.Beatmap = working
		b.ParallaxAmount = h.l.BackgroundParallaxAmount()
	})
}

func (h loaderHost) PushState(info *beatmap.Info) error {
	e := h.l.deps.EditorFactory(h.l, h.l.deps.Current.Get())
	if err := h.l.deps.Router.Push(e); err != nil {
		return handoff.NewInfrastructureError("push_editor", err)
	}
	h.l.editor = e
	h.l.deps.Logger.Debug("Editor pushed", "beatmap", info)
	return nil
}
