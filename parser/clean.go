package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	spaceLike   = strings.NewReplacer("\u00a0", " ", "\u2007", " ", "\u202f", " ", "\u200b", "")

	wholeFenceRegex = regexp.MustCompile("(?s)^```(?:markdown|md|text|txt|plaintext)?[ \\t]*\\n(.*?)\\n?```$")
)

// Normalize canonicalizes generated text: it drops a byte-order mark,
// converts CR and CRLF line endings to LF, replaces non-breaking and
// zero-width spaces, applies Unicode NFC and trims the result.
func Normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = lineEndings.Replace(text)
	text = spaceLike.Replace(text)
	text = norm.NFC.String(text)
	return strings.TrimSpace(text)
}

// Clean normalizes text and strips wrappers generators like to add around
// the real answer: a single markdown/text code fence covering the whole
// output, or a wrapper tag such as <thread>...</thread>.
func Clean(text string) string {
	text = Normalize(text)
	if m := wholeFenceRegex.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	if inner, ok := Unwrap(text); ok {
		text = inner
	}
	return text
}
