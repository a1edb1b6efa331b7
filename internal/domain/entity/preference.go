// Package entity contains the core business objects of the project.
package entity

// Language represents a supported UI language.
type Language string

const (
	// LanguageEnglish indicates English.
	LanguageEnglish Language = "en"
	// LanguageSwahili indicates Kiswahili.
	LanguageSwahili Language = "sw"
)

// String returns the string representation of the Language.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the Language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageSwahili:
		return true
	default:
		return false
	}
}

// Theme represents the persisted form of the dark-mode flag.
type Theme string

const (
	// ThemeLight indicates the light theme.
	ThemeLight Theme = "light"
	// ThemeDark indicates the dark theme.
	ThemeDark Theme = "dark"
)

// String returns the string representation of the Theme.
func (t Theme) String() string {
	return string(t)
}

// IsValid checks if the Theme is a valid value.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// IsDark reports whether the theme maps to dark mode.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ThemeFromDarkMode converts the in-memory boolean to its persisted form.
func ThemeFromDarkMode(dark bool) Theme {
	if dark {
		return ThemeDark
	}

	return ThemeLight
}

// Preferences is a snapshot of the persisted user settings. Preferences are
// independent of authentication state and survive logout.
type Preferences struct {
	Language Language
	DarkMode bool
}
