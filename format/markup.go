package format

import (
	"html"
	"regexp"
	"strings"
)

// Existing markup is matched first so it is copied through untouched.
var (
	linkRegex = regexp.MustCompile(`(?is)(<a\b[^>]*>.*?</a>|<[^>]+>)|(https?://[^\s<>"']+)`)

	hashtagRegex = regexp.MustCompile(`(?is)(<span\b[^>]*>.*?</span>|<a\b[^>]*>.*?</a>|<[^>]+>)|(^|[^\p{L}\p{N}_&#/])(#[\p{L}\p{N}_]*\p{L}[\p{L}\p{N}_]*)`)
)

// HashtagClass is the CSS class of wrapped hashtags.
const HashtagClass = "hashtag"

// WrapLinks wraps bare http(s) URLs in anchor tags. URLs already inside an
// anchor or a tag attribute are left alone. Trailing sentence punctuation
// stays outside the link.
func WrapLinks(text string) string {
	var b strings.Builder
	last := 0
	for _, m := range linkRegex.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		last = m[1]

		if m[2] >= 0 {
			b.WriteString(text[m[0]:m[1]])
			continue
		}

		url := text[m[4]:m[5]]
		trimmed := strings.TrimRight(url, ".,;:!?)")
		escaped := html.EscapeString(trimmed)
		b.WriteString(`<a href="` + escaped + `" target="_blank" rel="noopener noreferrer">` + escaped + `</a>`)
		b.WriteString(url[len(trimmed):])
	}
	b.WriteString(text[last:])
	return b.String()
}

// WrapHashtags wraps #tags in <span class="hashtag">. A tag must contain a
// letter and start the text or follow a non-word character, so "#1",
// "page#anchor" and "&#39;" are not tags.
func WrapHashtags(text string) string {
	var b strings.Builder
	last := 0
	for _, m := range hashtagRegex.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		last = m[1]

		if m[2] >= 0 {
			b.WriteString(text[m[0]:m[1]])
			continue
		}

		b.WriteString(text[m[4]:m[5]])
		b.WriteString(`<span class="` + HashtagClass + `">` + text[m[6]:m[7]] + `</span>`)
	}
	b.WriteString(text[last:])
	return b.String()
}

// Markup applies WrapLinks then WrapHashtags.
func Markup(text string) string {
	return WrapHashtags(WrapLinks(text))
}
