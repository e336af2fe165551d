package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MaxWordLength bounds search input, in runes.
const MaxWordLength = 100

// NormalizeWord trims, NFC-normalizes and lowercases search input so that
// "Hello", " hello " and decomposed forms all look up the same entry.
func NormalizeWord(word string) string {
	return cases.Lower(language.English).String(norm.NFC.String(strings.TrimSpace(word)))
}

// ValidateWord checks that a normalized word is non-empty, not too long and
// free of control characters.
func ValidateWord(word string) bool {
	if word == "" || utf8.RuneCountInString(word) > MaxWordLength {
		return false
	}
	if !utf8.ValidString(word) {
		return false
	}
	for _, r := range word {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
