// Package beatmap holds the beatmap lookup services the editor screens depend on.
// It is an in-memory stand-in for the real beatmap store: no beatmap files are
// parsed or imported here.
package beatmap

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInfo is returned by Info.Validate.
	ErrInvalidInfo = errors.New("beatmap: invalid info")

	// ErrNotFound is returned when a beatmap is not known to the manager.
	ErrNotFound = errors.New("beatmap: not found")
)

// Info identifies a single difficulty.
type Info struct {
	ID      int    `yaml:"id"`
	SetID   int    `yaml:"-"`
	Version string `yaml:"version"` // difficulty name
	Ruleset string `yaml:"ruleset"`
	Hash    string `yaml:"hash"`
}

// Validate reports whether info can be used to look up a beatmap.
func (i *Info) Validate() error {
	if i == nil {
		return fmt.Errorf("%w: nil", ErrInvalidInfo)
	}
	if i.ID <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidInfo, i.ID)
	}
	if i.Version == "" {
		return fmt.Errorf("%w: id %d has no version", ErrInvalidInfo, i.ID)
	}
	return nil
}

func (i *Info) String() string {
	if i == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d [%s]", i.ID, i.Version)
}

// Working is a beatmap loaded for use by a screen.
type Working struct {
	Info     *Info
	Title    string
	Artist   string
	LoadedAt time.Time
}

// IsDefault reports whether w is the placeholder returned for unknown beatmaps.
func (w *Working) IsDefault() bool {
	return w == nil || w.Info == nil
}

func (w *Working) String() string {
	if w.IsDefault() {
		return "no beatmaps available"
	}
	return fmt.Sprintf("%s - %s [%s]", w.Artist, w.Title, w.Info.Version)
}
