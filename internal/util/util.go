package util

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormatCurrency formats an amount as "KES 1,234.50" with thousands
// separators and two decimal places.
func FormatCurrency(amount float64, currency string) string {
	if currency == "" {
		currency = "KES"
	}

	whole := fmt.Sprintf("%.2f", amount)
	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign = "-"
		whole = whole[1:]
	}

	intPart, fracPart, _ := strings.Cut(whole, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%s %s%s.%s", currency, sign, grouped.String(), fracPart)
}

// TruncateText shortens text to at most maxLength runes, appending "..."
// when anything was cut.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	return string(runes[:maxLength]) + "..."
}

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Initials returns up to two uppercase initials derived from a display name.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		runes := []rune(parts[0])
		if len(runes) == 1 {
			return strings.ToUpper(string(runes))
		}

		return strings.ToUpper(string(runes[:2]))
	default:
		first := []rune(parts[0])
		last := []rune(parts[len(parts)-1])

		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}
