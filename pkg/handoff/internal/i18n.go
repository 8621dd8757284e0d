package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

// GetBundle returns the message bundle with every embedded locale loaded.
func GetBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			bundleErr = err
			return
		}
		for _, file := range files {
			if _, err := b.LoadMessageFileFS(localeFS, file); err != nil {
				bundleErr = fmt.Errorf("load %s: %w", file, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// SetLocale switches the active localizer. Unknown or malformed tags fall
// back to English.
func SetLocale(locale string) error {
	b, err := GetBundle()
	if err != nil {
		return err
	}

	tag, err := language.Parse(locale)
	if err != nil {
		GetInternalLogger().Warn("Invalid locale; using English", "locale", locale, "error", err)
		tag = language.English
	}

	localizerMu.Lock()
	localizer = i18n.NewLocalizer(b, tag.String(), language.English.String())
	localizerMu.Unlock()
	return nil
}

// Localize renders the message id with optional template data. Missing
// messages render as their id.
func Localize(id string, data map[string]any) string {
	localizerMu.RLock()
	l := localizer
	localizerMu.RUnlock()

	if l == nil {
		if err := SetLocale(language.English.String()); err != nil {
			GetInternalLogger().Error("Failed to load message bundle", "error", err)
			return id
		}
		localizerMu.RLock()
		l = localizer
		localizerMu.RUnlock()
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Debug("Missing localization", "id", id, "error", err)
		return id
	}
	return msg
}
