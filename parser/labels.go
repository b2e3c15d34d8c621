package parser

import (
	"regexp"
	"strings"
)

// LabeledLine is a "Label: value" line found in text.
type LabeledLine struct {
	// Label is the label as written in the text, cleaned of emphasis.
	Label string

	// Value is the trimmed text after the colon.
	Value string

	// Start and End are the byte offsets of the whole line, excluding the newline.
	Start, End int
}

// LabelMatcher finds lines of the form "Label: value" for a set of label
// synonyms. Matching is case-insensitive and tolerates list bullets, heading
// marks and bold/underline emphasis around the label:
//
//	Mood: calm
//	- **Atmosphere:** calm
//	## Mood: calm
//
// Spaces inside a label also match '-' or '_', so "Color Scheme" matches
// "color-scheme".
type LabelMatcher struct {
	labels  []string
	pattern *regexp.Regexp
}

// NewLabelMatcher compiles a matcher for the given label synonyms.
// Longer labels are tried first so "Poll Question" wins over "Question".
func NewLabelMatcher(labels ...string) *LabelMatcher {
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j]) > len(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	alternatives := make([]string, 0, len(sorted))
	for _, label := range sorted {
		words := strings.Fields(label)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alternatives = append(alternatives, strings.Join(words, `[ \t_-]+`))
	}

	pattern := regexp.MustCompile(
		`(?im)^[ \t]*(?:[-*+•][ \t]+)?(?:#{1,6}[ \t]+)?(?:\*\*|__)?(` +
			strings.Join(alternatives, "|") +
			`)(?:\*\*|__)?[ \t]*[:：](?:\*\*|__)?[ \t]*(\S.*?)[ \t]*$`)

	return &LabelMatcher{labels: labels, pattern: pattern}
}

// Labels returns the synonyms this matcher looks for.
func (m *LabelMatcher) Labels() []string {
	result := make([]string, len(m.labels))
	copy(result, m.labels)
	return result
}

// Find returns the first labeled line in text.
func (m *LabelMatcher) Find(text string) (LabeledLine, bool) {
	loc := m.pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return LabeledLine{}, false
	}
	return m.lineAt(text, loc), true
}

// FindAll returns every labeled line in text, in document order.
func (m *LabelMatcher) FindAll(text string) []LabeledLine {
	locs := m.pattern.FindAllStringSubmatchIndex(text, -1)
	lines := make([]LabeledLine, 0, len(locs))
	for _, loc := range locs {
		lines = append(lines, m.lineAt(text, loc))
	}
	return lines
}

// Value returns the value of the first labeled line, or "".
func (m *LabelMatcher) Value(text string) string {
	line, ok := m.Find(text)
	if !ok {
		return ""
	}
	return line.Value
}

// Matches reports whether a whole line is labeled with one of the synonyms.
func (m *LabelMatcher) Matches(line string) bool {
	return m.pattern.MatchString(line)
}

func (m *LabelMatcher) lineAt(text string, loc []int) LabeledLine {
	return LabeledLine{
		Label: CleanLabel(text[loc[2]:loc[3]]),
		Value: CleanValue(text[loc[4]:loc[5]]),
		Start: loc[0],
		End:   loc[1],
	}
}

// CleanValue strips emphasis markers and wrapping quotes from a value.
func CleanValue(s string) string {
	s = strings.TrimSpace(s)
	for _, marker := range []string{"**", "__"} {
		if strings.HasPrefix(s, marker) && strings.HasSuffix(s, marker) && len(s) > 2*len(marker) {
			s = s[len(marker) : len(s)-len(marker)]
		}
	}
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// RemoveSpans returns text with the given labeled lines cut out.
// Lines must be in document order and non-overlapping.
func RemoveSpans(text string, lines []LabeledLine) string {
	if len(lines) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, l := range lines {
		if l.Start < prev || l.End > len(text) {
			continue
		}
		b.WriteString(text[prev:l.Start])
		prev = l.End
	}
	b.WriteString(text[prev:])
	return b.String()
}
