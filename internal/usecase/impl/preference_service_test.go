package impl

import (
	"context"
	"errors"
	"testing"

	"shamba/config"
	"shamba/internal/domain/entity"
	domainerrors "shamba/internal/domain/errors"
	"shamba/internal/domain/repository"
	"shamba/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferencesOver(store repository.PreferenceStore) usecase.PreferenceUsecase {
	return NewPreferenceService(PreferenceServiceParams{
		Store:  store,
		Config: &config.Config{Preferences: &config.PreferencesConfig{DefaultLanguage: "en", DefaultTheme: "light"}},
		Logger: testLogger(),
	})
}

func TestPreferenceService_DefaultsBeforeLoad(t *testing.T) {
	prefs := newPreferencesOver(newMemoryStore())

	assert.Equal(t, entity.LanguageEnglish, prefs.Language())
	assert.False(t, prefs.IsDarkMode())
}

func TestPreferenceService_Load_ReadsStoredValues(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, repository.KeyLanguage, "sw"))
	require.NoError(t, store.Set(ctx, repository.KeyTheme, "dark"))

	prefs := newPreferencesOver(store)
	require.NoError(t, prefs.Load(ctx))

	assert.Equal(t, entity.LanguageSwahili, prefs.Language())
	assert.True(t, prefs.IsDarkMode())
}

func TestPreferenceService_Load_IgnoresUnrecognizedValues(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, repository.KeyLanguage, "fr"))
	require.NoError(t, store.Set(ctx, repository.KeyTheme, "sepia"))

	prefs := newPreferencesOver(store)
	require.NoError(t, prefs.Load(ctx))

	assert.Equal(t, entity.LanguageEnglish, prefs.Language())
	assert.False(t, prefs.IsDarkMode())
}

func TestPreferenceService_SetLanguage_PersistsAndSurvivesRestart(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	prefs := newPreferencesOver(store)
	require.NoError(t, prefs.Load(ctx))
	require.NoError(t, prefs.SetLanguage(ctx, entity.LanguageSwahili))

	// A fresh manager over the same store simulates an app restart.
	restarted := newPreferencesOver(store)
	require.NoError(t, restarted.Load(ctx))

	assert.Equal(t, entity.LanguageSwahili, restarted.Language())
}

func TestPreferenceService_SetLanguage_RejectsUnsupported(t *testing.T) {
	store := newMemoryStore()
	prefs := newPreferencesOver(store)
	ctx := context.Background()

	err := prefs.SetLanguage(ctx, entity.Language("fr"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedLanguage))
	assert.Equal(t, entity.LanguageEnglish, prefs.Language())
	assert.Equal(t, 0, store.Len())
}

func TestPreferenceService_SetLanguage_FailOpenOnStoreError(t *testing.T) {
	store := &failingStore{inner: newMemoryStore(), setErr: errors.New("disk full")}
	prefs := newPreferencesOver(store)
	ctx := context.Background()

	err := prefs.SetLanguage(ctx, entity.LanguageSwahili)

	require.NoError(t, err)
	assert.Equal(t, entity.LanguageSwahili, prefs.Language())
}

func TestPreferenceService_ToggleDarkMode(t *testing.T) {
	store := newMemoryStore()
	prefs := newPreferencesOver(store)
	ctx := context.Background()

	prefs.ToggleDarkMode(ctx)
	assert.True(t, prefs.IsDarkMode())

	stored, err := store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	prefs.ToggleDarkMode(ctx)
	assert.False(t, prefs.IsDarkMode())

	stored, err = store.Get(ctx, repository.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", stored)
}

func TestPreferenceService_ToggleDarkMode_FailOpenOnStoreError(t *testing.T) {
	store := &failingStore{inner: newMemoryStore(), setErr: errors.New("disk full")}
	prefs := newPreferencesOver(store)

	prefs.ToggleDarkMode(context.Background())

	assert.True(t, prefs.IsDarkMode())
}
