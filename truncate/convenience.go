package truncate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Boundary truncates text to at most target runes at the best breakpoint.
// No suffix is added.
func Boundary(text string, target int) string {
	result, _ := New().Truncate(text, target)
	return result
}

// Smart truncates text at the best breakpoint and appends "..." when it cut
// anything. The result, ellipsis included, is at most maxLen runes.
func Smart(text string, maxLen int) string {
	result, _ := New().WithSuffix(DefaultEllipsis).Truncate(text, maxLen)
	return result
}

// ToLength truncates text to a maximum character length with a hard cut.
// Properly handles UTF-8 by counting runes, not bytes.
func ToLength(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runeCount := utf8.RuneCountInString(text)
	if runeCount <= maxLen {
		return text
	}

	runes := []rune(text)
	if maxLen < 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + DefaultEllipsis
}

// Sentence truncates text at the last sentence end that fits, then at the
// last word boundary, then with a hard cut. No suffix is added.
func Sentence(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	if end := lastSentenceEnd(runes, maxLen); end > 0 {
		return string(runes[:end])
	}
	return Words(text, maxLen)
}

// Words truncates text at the last space that fits, or with a hard cut when
// the first word is already too long. No suffix is added.
func Words(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	for i := maxLen; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			if result := strings.TrimRightFunc(string(runes[:i]), unicode.IsSpace); result != "" {
				return result
			}
			break
		}
	}
	return string(runes[:maxLen])
}

// LastSentence trims text to the last complete sentence within maxLen runes.
// When no sentence fits, it hard-cuts and appends "...". The boolean reports
// whether a sentence boundary was used.
func LastSentence(text string, maxLen int) (string, bool) {
	if maxLen <= 0 {
		return "", false
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text, true
	}

	if end := lastSentenceEnd(runes, maxLen); end > 0 {
		return strings.TrimSpace(string(runes[:end])), true
	}
	return ToLength(text, maxLen), false
}

// lastSentenceEnd returns the rune count up to and including the last
// sentence terminator within the first maxLen runes, or 0. A terminator
// counts only when followed by whitespace or the end of text.
func lastSentenceEnd(runes []rune, maxLen int) int {
	if maxLen > len(runes) {
		maxLen = len(runes)
	}
	for i := maxLen - 1; i > 0; i-- {
		if !isTerminator(runes[i]) {
			continue
		}
		if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
			return i + 1
		}
	}
	return 0
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
