// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is a domain-specific error returned when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

// Recognized store keys. Each key is read and written independently; only the
// session manager touches the token/user pair.
const (
	// KeyAuthToken holds the opaque session token.
	KeyAuthToken = "auth_token"
	// KeyUserData holds the JSON-serialized user record.
	KeyUserData = "user_data"
	// KeyLanguage holds the UI language code ("en" or "sw").
	KeyLanguage = "app_language"
	// KeyTheme holds the theme name ("light" or "dark").
	KeyTheme = "app_theme"
)

// PreferenceStore is a scoped key-value string store backing sessions and
// preferences. Each individual operation is atomic; there is no transaction
// spanning multiple keys, so callers that pair keys (token + user) must be
// prepared to find only one of them after a crash.
type PreferenceStore interface {
	// Get returns the value for key, or ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
