package editor

import (
	"errors"

	"github.com/BrandonKowalski/handoff/pkg/handoff"
	"github.com/BrandonKowalski/handoff/pkg/handoff/beatmap"
	"github.com/BrandonKowalski/handoff/pkg/handoff/constants"
	"github.com/BrandonKowalski/handoff/pkg/handoff/router"
)

// ErrNotCurrent is returned when an editor that is not on top tries to exit.
var ErrNotCurrent = errors.New("editor: not the current screen")

// Editor edits a single difficulty. Switching difficulty goes through the
// loader that pushed it.
type Editor struct {
	loader  *Loader
	router  *router.Router
	beatmap *beatmap.Working
	exited  bool
}

// NewEditor creates an editor for working, owned by loader.
func NewEditor(loader *Loader, r *router.Router, working *beatmap.Working) *Editor {
	return &Editor{
		loader:  loader,
		router:  r,
		beatmap: working,
	}
}

func (e *Editor) Name() string { return "editor" }

// Beatmap returns the beatmap being edited.
func (e *Editor) Beatmap() *beatmap.Working {
	return e.beatmap
}

// Title is the localized editor title.
func (e *Editor) Title() string {
	if e.beatmap.IsDefault() {
		return handoff.Localize(constants.MessageNoBeatmap, nil)
	}
	return handoff.Localize(constants.MessageEditing, map[string]any{
		"Beatmap": e.beatmap.String(),
	})
}

// SwitchDifficulty leaves this editor and opens info in a new one.
func (e *Editor) SwitchDifficulty(info *beatmap.Info) error {
	return e.loader.ScheduleDifficultySwitch(info)
}

// CancelDifficultySwitch drops a switch requested with SwitchDifficulty.
func (e *Editor) CancelDifficultySwitch() {
	e.loader.CancelPendingDifficultySwitch()
}

// Exit leaves the editor. The loader leaves with it unless a switch is pending.
func (e *Editor) Exit() error {
	if !e.router.IsCurrent(e) {
		return ErrNotCurrent
	}
	return e.router.Exit()
}

func (e *Editor) OnExiting() {
	e.exited = true
}

// Exited reports whether the editor has left the stack.
func (e *Editor) Exited() bool {
	return e.exited
}
