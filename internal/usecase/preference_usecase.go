package usecase

import (
	"context"

	"shamba/internal/domain/entity"
)

// PreferenceUsecase holds the user-facing app preferences (language and
// theme) and mirrors them into the preference store.
//
// Reads are served from memory. Persistence failures on writes are logged
// and swallowed: the in-memory value is authoritative for the session and
// the store only matters on the next start.
type PreferenceUsecase interface {
	// Load populates the preferences from the store. Missing or invalid
	// stored values fall back to the configured defaults.
	Load(ctx context.Context) error

	// SetLanguage switches the app language and persists the choice.
	// Unsupported languages are rejected without touching state.
	SetLanguage(ctx context.Context, lang entity.Language) error

	// ToggleDarkMode flips the theme and persists the new value.
	ToggleDarkMode(ctx context.Context)

	Language() entity.Language
	IsDarkMode() bool
}
