package util

import "testing"

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		currency string
		expected string
	}{
		{name: "zero", amount: 0, currency: "KES", expected: "KES 0.00"},
		{name: "small amount", amount: 45.5, currency: "KES", expected: "KES 45.50"},
		{name: "thousands separator", amount: 2500, currency: "KES", expected: "KES 2,500.00"},
		{name: "millions", amount: 1234567.89, currency: "KES", expected: "KES 1,234,567.89"},
		{name: "negative amount", amount: -1500, currency: "KES", expected: "KES -1,500.00"},
		{name: "default currency", amount: 100, currency: "", expected: "KES 100.00"},
		{name: "other currency", amount: 100, currency: "USD", expected: "USD 100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCurrency(tt.amount, tt.currency); got != tt.expected {
				t.Fatalf("FormatCurrency(%v, %q) = %s, want %s", tt.amount, tt.currency, got, tt.expected)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		maxLength int
		expected  string
	}{
		{name: "shorter than limit", text: "hello", maxLength: 10, expected: "hello"},
		{name: "exactly at limit", text: "hello", maxLength: 5, expected: "hello"},
		{name: "truncated", text: "hello world", maxLength: 5, expected: "hello..."},
		{name: "multibyte runes", text: "chakula kizuri", maxLength: 7, expected: "chakula..."},
		{name: "empty string", text: "", maxLength: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateText(tt.text, tt.maxLength); got != tt.expected {
				t.Fatalf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.maxLength, got, tt.expected)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{name: "plain address", email: "user@example.com", expected: true},
		{name: "subdomain", email: "user@mail.example.co.ke", expected: true},
		{name: "missing at", email: "user.example.com", expected: false},
		{name: "missing domain dot", email: "user@example", expected: false},
		{name: "contains whitespace", email: "user @example.com", expected: false},
		{name: "empty", email: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValidEmail(tt.email); got != tt.expected {
				t.Fatalf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.expected)
			}
		})
	}
}

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "two names", input: "John Farmer", expected: "JF"},
		{name: "three names uses first and last", input: "John von Farmer", expected: "JF"},
		{name: "single name", input: "Asha", expected: "AS"},
		{name: "single letter", input: "A", expected: "A"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Initials(tt.input); got != tt.expected {
				t.Fatalf("Initials(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}
