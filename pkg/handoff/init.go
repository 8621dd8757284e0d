// Package handoff carries the shared setup for the editor handoff screens:
// logging, localization and configuration.
//
// The screens themselves live in the editor package; the deferred switch
// logic lives in transition.
package handoff

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/handoff/pkg/handoff/constants"
	"github.com/BrandonKowalski/handoff/pkg/handoff/internal"
)

// Options configures logging and localization.
type Options struct {
	LogPath  string `toml:"log_path"`  // Full path for log file including filename (creates parent directories)
	LogLevel string `toml:"log_level"` // debug, info, warn or error
	Locale   string `toml:"locale"`    // BCP 47 tag, e.g. "en" or "de"
}

// LoadOptions reads Options from a TOML file.
func LoadOptions(path string) (Options, error) {
	var options Options
	if _, err := toml.DecodeFile(path, &options); err != nil {
		return Options{}, NewInfrastructureError("load_config", fmt.Errorf("%s: %w", path, err))
	}
	return options, nil
}

// Init applies options. Environment variables take precedence over the file.
// Must be called before the loggers are first used for LogPath to take effect.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		options.LogLevel = v
	}
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		options.Locale = v
	}
	if options.Locale == "" {
		options.Locale = constants.DefaultLocale
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	internal.SetRawLogLevel(options.LogLevel)

	if err := internal.SetLocale(options.Locale); err != nil {
		return NewInfrastructureError("load_locales", err)
	}
	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger used by the screens themselves.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLocale switches the language used by Localize.
func SetLocale(locale string) error {
	return internal.SetLocale(locale)
}

// Localize returns the message for id in the active locale.
// data fills template fields such as {{.Difficulty}}.
func Localize(id string, data map[string]any) string {
	return internal.Localize(id, data)
}
