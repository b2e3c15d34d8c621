package thread

import (
	"strings"

	"github.com/randalmurphal/contentkit/platform"
	"github.com/randalmurphal/contentkit/truncate"
)

// ValidateAndTrim drops posts shorter than minChars and trims posts longer
// than maxChars at their last complete sentence. A post with no sentence
// end inside the limit is hard-cut with "...". maxChars <= 0 disables
// trimming.
func ValidateAndTrim(posts []string, minChars, maxChars int) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		p = strings.TrimSpace(p)
		n := platform.Count(p)
		if p == "" || n < minChars {
			continue
		}
		if maxChars > 0 && n > maxChars {
			p, _ = truncate.LastSentence(p, maxChars)
		}
		out = append(out, p)
	}
	return out
}
