package resolve

import (
	"strings"
	"unicode"
)

// PreserveCase re-cases corrected to the case pattern of original: all-upper,
// title, or all-lower. Mixed-case originals leave corrected untouched.
func PreserveCase(original, corrected string) string {
	if original == "" || corrected == "" {
		return corrected
	}
	switch {
	case isUpper(original):
		return strings.ToUpper(corrected)
	case isTitle(original):
		r := []rune(corrected)
		if len(r) == 1 {
			return strings.ToUpper(corrected)
		}
		return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	case isLower(original):
		return strings.ToLower(corrected)
	default:
		return corrected
	}
}

// isUpper reports whether s has at least one cased rune and no lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isLower reports whether s has at least one cased rune and no uppercase ones.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isTitle reports an uppercase first rune followed by a lowercase tail.
func isTitle(s string) bool {
	r := []rune(s)
	if len(r) < 2 {
		return false
	}
	return unicode.IsUpper(r[0]) && isLower(string(r[1:]))
}
