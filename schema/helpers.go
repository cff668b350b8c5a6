package schema

import (
	"strings"
	"unicode"
)

// cleanNameParts trims non-alphanumeric punctuation from the ends of each
// name part and drops parts that end up empty.
func cleanNameParts(parts []string) []string {
	var cleaned []string
	for _, p := range parts {
		cp := strings.TrimFunc(p, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if cp != "" {
			cleaned = append(cleaned, cp)
		}
	}
	return cleaned
}

// firstRuneUpper returns the first rune of s, uppercased. Uses runes for
// Unicode safety with accented names.
func firstRuneUpper(s string) string {
	rr := []rune(s)
	if len(rr) == 0 {
		return ""
	}
	return string(unicode.ToUpper(rr[0]))
}

// Initials derives up to two uppercase letters from a display name:
// the first letter of the first part and the first letter of the last part.
// "Ana Oliveira" becomes "AO", a single-word name yields one letter, and an
// empty name yields an empty string.
func Initials(name string) string {
	parts := cleanNameParts(strings.Fields(strings.TrimSpace(name)))

	if len(parts) >= 2 {
		return firstRuneUpper(parts[0]) + firstRuneUpper(parts[len(parts)-1])
	}
	if len(parts) == 1 {
		return firstRuneUpper(parts[0])
	}
	return ""
}

// FloatOrZero dereferences an optional score, treating absence as zero.
// Zero doubles as the "unscored" sentinel in sorting and band filtering.
func FloatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Float64Ptr returns a pointer to v. Convenience for building test fixtures
// and DTO literals.
func Float64Ptr(v float64) *float64 {
	return &v
}
