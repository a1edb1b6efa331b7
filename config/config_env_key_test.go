package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"tokenSecret":      "",
			"diagnosisLatency": "3s",
		},
		"preferences": map[string]any{
			"defaultLanguage": "en",
		},
		"storage": map[string]any{
			"path": "data/shamba.db",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_TOKENSECRET", want: "backend.tokenSecret"},
		{envKey: "BACKEND_DIAGNOSISLATENCY", want: "backend.diagnosisLatency"},
		{envKey: "PREFERENCES_DEFAULTLANGUAGE", want: "preferences.defaultLanguage"},
		{envKey: "STORAGE_PATH", want: "storage.path"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
