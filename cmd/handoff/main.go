// Command handoff walks the editor loader through a difficulty switch and
// logs every navigation step.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BrandonKowalski/handoff/pkg/handoff"
	"github.com/BrandonKowalski/handoff/pkg/handoff/beatmap"
	"github.com/BrandonKowalski/handoff/pkg/handoff/editor"
	"github.com/BrandonKowalski/handoff/pkg/handoff/router"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type songSelect struct{}

func (s *songSelect) Name() string { return "song select" }

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	catalogPath := flag.String("catalog", "", "path to a YAML beatmap catalog (built-in catalog if empty)")
	flag.Parse()

	if err := run(*configPath, *catalogPath); err != nil {
		handoff.GetLogger().Error("handoff failed", "error", err)
		handoff.Close()
		os.Exit(1)
	}
	handoff.Close()
}

func run(configPath, catalogPath string) error {
	options := handoff.Options{}
	if configPath != "" {
		var err error
		if options, err = handoff.LoadOptions(configPath); err != nil {
			return err
		}
	}
	if err := handoff.Init(options); err != nil {
		return err
	}
	logger := handoff.GetLogger()

	manager, err := loadManager(catalogPath)
	if err != nil {
		return err
	}

	r := router.New(router.WithLogger(handoff.GetInternalLogger()))
	r.OnChange(func(event router.Event, screen router.Screen) {
		logger.Info("navigation", "event", event.String(), "screen", screen.Name(), "depth", r.Stack().Len())
	})

	current := beatmap.NewCurrent(manager.Default)
	loader := editor.NewLoader(editor.Dependencies{
		Router:     r,
		Beatmaps:   manager,
		Current:    current,
		Background: editor.NewBackgroundStack(manager.Default),
	}, nil)
	loader.Load()

	if err := r.Push(&songSelect{}); err != nil {
		return err
	}
	if err := r.Push(loader); err != nil {
		return err
	}
	logger.Info("loader waiting", "spinner", loader.Spinner().Label, "state", loader.State().String())

	sevenKey, err := manager.Lookup(72)
	if err != nil {
		return err
	}
	fourKey, err := manager.Lookup(71)
	if err != nil {
		return err
	}

	if err := loader.ScheduleDifficultySwitch(sevenKey); err != nil {
		return err
	}
	loader.CancelPendingDifficultySwitch()
	if err := loader.ScheduleDifficultySwitch(fourKey); err != nil {
		return err
	}
	if err := r.Tick(); err != nil {
		return err
	}

	e, ok := r.Current().(*editor.Editor)
	if !ok {
		return errors.New("editor was not pushed")
	}
	logger.Info("editor open", "title", e.Title())

	if err := e.SwitchDifficulty(sevenKey); err != nil {
		return err
	}
	if err := r.Tick(); err != nil {
		return err
	}
	if e, ok = r.Current().(*editor.Editor); !ok {
		return errors.New("editor was not pushed after switch")
	}
	logger.Info("editor open", "title", e.Title())

	if err := e.Exit(); err != nil {
		return err
	}
	logger.Info("back at", "screen", r.Current().Name(), "beatmap", current.Get().String())
	return nil
}

func loadManager(path string) (*beatmap.Manager, error) {
	var src io.Reader = bytes.NewReader(defaultCatalog)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, handoff.NewInfrastructureError("open_catalog", err)
		}
		defer f.Close()
		src = f
	}

	catalog, err := beatmap.LoadCatalog(src)
	if err != nil {
		return nil, err
	}

	manager := beatmap.NewManager()
	if err := catalog.Import(manager); err != nil {
		return nil, fmt.Errorf("import catalog: %w", err)
	}
	return manager, nil
}
