package impl

import (
	"context"
	"log/slog"
	"sync"

	"shamba/config"
	"shamba/internal/domain/entity"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/domain/repository"
	"shamba/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// preferenceService implements the PreferenceUsecase interface.
//
// The in-memory value is authoritative for the running session. Store writes
// are best effort: a failed write costs the choice on the next start, never
// the current one.
type preferenceService struct {
	store  repository.PreferenceStore
	logger *slog.Logger

	defaultLanguage entity.Language
	defaultTheme    entity.Theme

	mu       sync.RWMutex
	language entity.Language
	darkMode bool
}

// PreferenceServiceParams holds dependencies for preferenceService, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	Store  repository.PreferenceStore
	Config *config.Config
	Logger *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	defaultLanguage := entity.LanguageEnglish
	defaultTheme := entity.ThemeLight
	if params.Config != nil && params.Config.Preferences != nil {
		if lang := entity.Language(params.Config.Preferences.DefaultLanguage); lang.IsValid() {
			defaultLanguage = lang
		}
		if theme := entity.Theme(params.Config.Preferences.DefaultTheme); theme.IsValid() {
			defaultTheme = theme
		}
	}

	return &preferenceService{
		store:           params.Store,
		logger:          params.Logger,
		defaultLanguage: defaultLanguage,
		defaultTheme:    defaultTheme,
		language:        defaultLanguage,
		darkMode:        defaultTheme.IsDark(),
	}
}

// Load populates the preferences from the store. Missing or unrecognized
// stored values keep the configured defaults.
func (srv *preferenceService) Load(ctx context.Context) error {
	language := srv.defaultLanguage
	stored, err := srv.store.Get(ctx, repository.KeyLanguage)
	switch {
	case err == nil:
		if lang := entity.Language(stored); lang.IsValid() {
			language = lang
		} else {
			srv.logger.Warn("Ignoring unrecognized stored language", slog.String("value", stored))
		}
	case !errors.Is(err, repository.ErrKeyNotFound):
		return errors.Wrap(err, "failed to read stored language")
	}

	darkMode := srv.defaultTheme.IsDark()
	stored, err = srv.store.Get(ctx, repository.KeyTheme)
	switch {
	case err == nil:
		if theme := entity.Theme(stored); theme.IsValid() {
			darkMode = theme.IsDark()
		} else {
			srv.logger.Warn("Ignoring unrecognized stored theme", slog.String("value", stored))
		}
	case !errors.Is(err, repository.ErrKeyNotFound):
		return errors.Wrap(err, "failed to read stored theme")
	}

	srv.mu.Lock()
	srv.language = language
	srv.darkMode = darkMode
	srv.mu.Unlock()

	return nil
}

// SetLanguage switches the app language and persists the choice.
func (srv *preferenceService) SetLanguage(ctx context.Context, lang entity.Language) error {
	if !lang.IsValid() {
		return domainerrors.ErrUnsupportedLanguage.WrapMessage(lang.String())
	}

	srv.mu.Lock()
	srv.language = lang
	srv.mu.Unlock()

	if err := srv.store.Set(ctx, repository.KeyLanguage, lang.String()); err != nil {
		srv.logger.Warn("Failed to persist language", slog.String("language", lang.String()), slog.Any("error", err))
	}

	return nil
}

// ToggleDarkMode flips the theme and persists the new value.
func (srv *preferenceService) ToggleDarkMode(ctx context.Context) {
	srv.mu.Lock()
	srv.darkMode = !srv.darkMode
	theme := entity.ThemeFromDarkMode(srv.darkMode)
	srv.mu.Unlock()

	if err := srv.store.Set(ctx, repository.KeyTheme, theme.String()); err != nil {
		srv.logger.Warn("Failed to persist theme", slog.String("theme", theme.String()), slog.Any("error", err))
	}
}

// Language returns the active UI language.
func (srv *preferenceService) Language() entity.Language {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.language
}

// IsDarkMode reports whether the dark theme is active.
func (srv *preferenceService) IsDarkMode() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.darkMode
}
