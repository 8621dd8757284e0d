// Package constants defines shared constants used throughout handoff.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read during Init.
const (
	LogLevelEnvVar = "HANDOFF_LOG_LEVEL"
	LocaleEnvVar   = "HANDOFF_LOCALE"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Message IDs for localized strings.
const (
	MessageLoadingEditor = "LoadingEditor"
	MessageSwitching     = "SwitchingDifficulty"
	MessageEditing       = "Editing"
	MessageNoBeatmap     = "NoBeatmap"
)
