package imageprompt

import (
	"strings"

	"github.com/randalmurphal/contentkit/parser"
	"github.com/randalmurphal/contentkit/platform"
	"github.com/randalmurphal/contentkit/truncate"
)

// Per-field caps applied by Truncate, in runes.
const (
	SubjectCap     = 100
	StyleCap       = 50
	MoodCap        = 50
	ColorSchemeCap = 30
	CompositionCap = 70
)

// detailsReserve is held back from the details budget.
const detailsReserve = 20

// minPartialSentence is the least remaining budget for which Truncate
// keeps part of a sentence in an unstructured prompt.
const minPartialSentence = 30

// Truncate shortens a prompt to at most maxLength runes. A labeled prompt
// keeps its structure: each field is cut to its cap at a sentence or word
// boundary, details get what is left, and the result is one "Label: value"
// line per field. An unstructured prompt keeps whole sentences, plus part
// of the next one when at least 30 runes of budget remain. It never
// fails; a fault gives a hard cut with an ellipsis.
func Truncate(prompt string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if platform.Count(prompt) <= maxLength {
		return prompt
	}

	return parser.Recover("imageprompt.Truncate", func() string {
		var out string
		text := parser.Clean(prompt)
		if p, matched := extract(text); p.structured() {
			if p.Details == "" {
				p.Details = leftover(text, matched)
			}
			out = truncateStructured(p, maxLength)
		} else {
			out = truncateSentences(prompt, maxLength)
		}
		if platform.Count(out) > maxLength {
			out = truncate.Boundary(out, maxLength)
		}
		if strings.TrimSpace(out) == "" {
			out = truncate.Boundary(prompt, maxLength)
		}
		return out
	}, func(error) string {
		return truncate.ToLength(prompt, maxLength)
	})
}

func truncateStructured(p ImagePrompt, maxLength int) string {
	p.Subject = truncate.Sentence(p.Subject, SubjectCap)
	p.Style = truncate.Sentence(p.Style, StyleCap)
	p.Mood = truncate.Sentence(p.Mood, MoodCap)
	p.ColorScheme = truncate.Sentence(p.ColorScheme, ColorSchemeCap)
	p.Composition = truncate.Sentence(p.Composition, CompositionCap)

	used := 0
	for _, v := range []string{p.Subject, p.Style, p.Mood, p.ColorScheme, p.Composition} {
		used += platform.Count(v)
	}

	head := p
	head.Details = ""
	headText := head.Labeled()

	budget := maxLength - used - detailsReserve
	if room := maxLength - platform.Count(headText) - platform.Count("\nDetails: "); room < budget {
		budget = room
	}
	if budget > 0 && p.Details != "" {
		p.Details = truncate.Sentence(p.Details, budget)
	} else {
		p.Details = ""
	}
	return p.Labeled()
}

// truncateSentences keeps whole sentences while they fit.
func truncateSentences(prompt string, maxLength int) string {
	var b strings.Builder
	used := 0
	for _, s := range parser.Sentences(prompt) {
		sep := 0
		if used > 0 {
			sep = 1
		}
		n := platform.Count(s)
		if used+sep+n <= maxLength {
			if sep > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s)
			used += sep + n
			continue
		}

		remaining := maxLength - used - sep
		if remaining >= minPartialSentence {
			if sep > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(truncate.Words(s, remaining))
		}
		break
	}
	return b.String()
}

// Labeled renders the non-empty fields as "Label: value" lines.
func (p ImagePrompt) Labeled() string {
	var lines []string
	for _, f := range fields {
		if v := *f.get(&p); v != "" {
			lines = append(lines, f.label+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}
