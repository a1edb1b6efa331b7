package i18n

import (
	"testing"

	"shamba/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		lang     entity.Language
		expected string
	}{
		{"english key", "welcome", entity.LanguageEnglish, "Welcome"},
		{"swahili key", "welcome", entity.LanguageSwahili, "Karibu"},
		{"unknown language falls back to english", "welcome", entity.Language("fr"), "Welcome"},
		{"unknown key returns the key", "doesNotExist", entity.LanguageEnglish, "doesNotExist"},
		{"unknown key in swahili returns the key", "doesNotExist", entity.LanguageSwahili, "doesNotExist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Translate(tt.key, tt.lang))
		})
	}
}

func TestStrings_SwahiliCoversEveryEnglishKey(t *testing.T) {
	strings := Strings(entity.LanguageSwahili)

	assert.Len(t, strings, len(Strings(entity.LanguageEnglish)))
	assert.Equal(t, "Kikapu", strings["cart"])
}

func TestStrings_ReturnsFreshMap(t *testing.T) {
	first := Strings(entity.LanguageEnglish)
	first["welcome"] = "mutated"

	assert.Equal(t, "Welcome", Strings(entity.LanguageEnglish)["welcome"])
}
