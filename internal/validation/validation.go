package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxKeywordLength is the longest search keyword the SERP provider accepts.
const MaxKeywordLength = 700

// NormalizeKeyword trims the keyword and collapses internal whitespace runs
// to a single space.
func NormalizeKeyword(keyword string) string {
	return strings.Join(strings.Fields(keyword), " ")
}

// ValidateKeyword checks that a normalized keyword is present and not too long.
func ValidateKeyword(keyword string) (bool, string) {
	if keyword == "" {
		return false, "Introduce un término de búsqueda."
	}
	if utf8.RuneCountInString(keyword) > MaxKeywordLength {
		return false, "El término de búsqueda es demasiado largo."
	}
	return true, ""
}
