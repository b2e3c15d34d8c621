package platform

import "unicode/utf8"

// Count returns the number of characters in text as a publishing surface
// counts them: runes, not bytes.
func Count(text string) int {
	return utf8.RuneCountInString(text)
}

// FitsInLimit returns true if text is no longer than limit characters.
func FitsInLimit(text string, limit int) bool {
	return Count(text) <= limit
}

// Fits returns true if text is within the hard limit of the named platform.
func Fits(text, id string) bool {
	return FitsInLimit(text, Lookup(id).CharacterLimit)
}
