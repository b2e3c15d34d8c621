package newsletter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/randalmurphal/contentkit/parser"
)

// Synthetic section titles.
const (
	// MainContentTitle names the section built from leftover text when the
	// input has no level-2 sections.
	MainContentTitle = "Main Content"

	// FallbackTitle names the single section of the fault fallback record.
	FallbackTitle = "Content"
)

// Section is a titled block of newsletter body text.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Newsletter is the record produced for the newsletter content kind.
type Newsletter struct {
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	Sections     []Section `json:"sections"`
	CallToAction string    `json:"callToAction,omitempty"`
	Footer       string    `json:"footer,omitempty"`
}

// Label synonyms, matched case-insensitively.
var (
	TitleLabels   = []string{"Title", "Newsletter Title", "Headline"}
	SubjectLabels = []string{"Subject", "Subject Line", "Email Subject"}
	CTALabels     = []string{"CTA", "Call to Action", "Call-to-Action"}
	FooterLabels  = []string{"Footer"}
)

var (
	titleLine   = parser.NewLabelMatcher(TitleLabels...)
	subjectLine = parser.NewLabelMatcher(SubjectLabels...)
	ctaLine     = parser.NewLabelMatcher("CTA", "Call to Action", "Call-to-Action")
	footerLine  = parser.NewLabelMatcher(FooterLabels...)

	ctaPhrase    = regexp.MustCompile(`(?i)\b(click|tap|sign[ -]?up|subscribe|join|register|download|learn more|read more|get started|shop|buy|order|reply|visit|check out|try|book|grab|claim|don't miss)\b`)
	footerPhrase = regexp.MustCompile(`(?i)(unsubscribe|opt[ -]out|©|\(c\)|copyright|all rights reserved|privacy policy|terms of (service|use)|you are receiving|you're receiving|mailing address|manage (your )?preferences)`)
)

// trailingLines is how many lines at the end of the text are scanned for a
// call to action or footer when no heading names them.
const trailingLines = 5

// span is a byte range of the cleaned text consumed by a field.
type span struct{ start, end int }

// doc is the cleaned text with its headings and sections computed once.
type doc struct {
	text     string
	headings []parser.Heading
	sections []parser.Section
}

func newDoc(text string) *doc {
	return &doc{
		text:     text,
		headings: parser.Headings(text),
		sections: parser.Sections(text),
	}
}

// field is a value found for a newsletter field and the text it came from.
type field struct {
	value string
	spans []span
}

// Parse extracts a newsletter from generated text. It never fails: text
// with no recognizable structure yields a record with one section holding
// the text.
func Parse(content string) Newsletter {
	return parser.Recover("newsletter.Parse", func() Newsletter {
		return parse(content)
	}, func(error) Newsletter {
		return Fallback(content)
	})
}

// Fallback builds the record used when parsing faults: the first line as
// title and subject, and the whole input as the only section.
func Fallback(content string) Newsletter {
	first := ""
	if lines := parser.Lines(content); len(lines) > 0 {
		first = parser.CleanLabel(strings.TrimLeft(lines[0], "# "))
	}
	return Newsletter{
		Title:    first,
		Subject:  first,
		Sections: []Section{{Title: FallbackTitle, Content: content}},
	}
}

func parse(content string) Newsletter {
	text := parser.Clean(content)
	if text == "" {
		if content == "" {
			return Newsletter{Sections: []Section{}}
		}
		return Fallback(content)
	}
	d := newDoc(text)

	var n Newsletter
	var consumed []span

	title := d.runField("newsletter.title", titleStrategies(d))
	n.Title = title.value
	consumed = append(consumed, title.spans...)

	subject := d.runField("newsletter.subject", labeledStrategies(d, SubjectLabels, subjectLine))
	n.Subject = firstLine(subject.value)
	consumed = append(consumed, subject.spans...)
	if n.Subject == "" {
		n.Subject = n.Title
	}

	cta := d.runField("newsletter.cta", labeledStrategies(d, CTALabels, ctaLine))
	n.CallToAction = cta.value
	consumed = append(consumed, cta.spans...)

	footer := d.runField("newsletter.footer", labeledStrategies(d, FooterLabels, footerLine))
	n.Footer = footer.value
	consumed = append(consumed, footer.spans...)

	n.Sections = d.bodySections()
	if len(n.Sections) == 0 {
		n.Sections = []Section{d.mainContent(consumed)}
	}

	if n.CallToAction == "" && n.Footer == "" {
		n.CallToAction, n.Footer = scanTrailing(text)
	}

	return n
}

// runField runs a chain of field strategies. The zero field means nothing
// matched.
func (d *doc) runField(name string, strategies []parser.Strategy[field]) field {
	f, _ := parser.NewChain(name, strategies...).Run(d.text)
	return f
}

func titleStrategies(d *doc) []parser.Strategy[field] {
	return []parser.Strategy[field]{
		{Name: "h1", Extract: func(string) (field, bool) {
			for _, h := range d.headings {
				if h.Level != 1 || h.Title == "" || isReserved(h.Title) {
					continue
				}
				title := h.Title
				if l, ok := titleLine.Find(title); ok {
					title = l.Value
				}
				return field{value: title, spans: []span{{h.Start, h.End}}}, true
			}
			return field{}, false
		}},
		{Name: "label", Extract: labelLine(titleLine)},
	}
}

// labeledStrategies finds a field by a heading named with one of labels
// (the section body is the value), or by a "Label: value" line, which may
// itself be a heading.
func labeledStrategies(d *doc, labels []string, line *parser.LabelMatcher) []parser.Strategy[field] {
	return []parser.Strategy[field]{
		{Name: "heading", Extract: func(string) (field, bool) {
			for _, s := range d.sections {
				if parser.MatchesLabel(s.Title, labels...) && s.Content != "" {
					return field{value: s.Content, spans: []span{{s.Start, s.End}}}, true
				}
			}
			return field{}, false
		}},
		{Name: "label", Extract: labelLine(line)},
	}
}

func labelLine(m *parser.LabelMatcher) func(string) (field, bool) {
	return func(text string) (field, bool) {
		l, ok := m.Find(text)
		if !ok {
			return field{}, false
		}
		return field{value: l.Value, spans: []span{{l.Start, l.End}}}, true
	}
}

// bodySections returns every level-2 section that is not a subject, call
// to action or footer, and has a body.
func (d *doc) bodySections() []Section {
	var sections []Section
	for _, s := range parser.SectionsAtLevel(d.text, 2) {
		if isReserved(s.Title) || s.Content == "" {
			continue
		}
		sections = append(sections, Section{Title: s.Title, Content: s.Content})
	}
	return sections
}

// mainContent builds the synthetic section from text not consumed by
// other fields.
func (d *doc) mainContent(consumed []span) Section {
	leftover := strings.Join(parser.Paragraphs(removeSpans(d.text, consumed)), "\n\n")
	if leftover == "" {
		leftover = d.text
	}
	return Section{Title: MainContentTitle, Content: leftover}
}

func isReserved(title string) bool {
	return parser.MatchesLabel(title, SubjectLabels...) ||
		parser.MatchesLabel(title, CTALabels...) ||
		parser.MatchesLabel(title, FooterLabels...) ||
		subjectLine.Matches(title) ||
		ctaLine.Matches(title) ||
		footerLine.Matches(title)
}

// scanTrailing looks for a call to action and a footer among the last
// non-empty lines. The first qualifying line wins for each field.
func scanTrailing(text string) (cta, footer string) {
	lines := parser.Lines(text)
	if len(lines) > trailingLines {
		lines = lines[len(lines)-trailingLines:]
	}
	for _, line := range lines {
		if parser.IsHeading(line) {
			continue
		}
		switch {
		case footerPhrase.MatchString(line):
			if footer == "" {
				footer = line
			}
		case ctaPhrase.MatchString(line):
			if cta == "" {
				cta = line
			}
		}
	}
	return cta, footer
}

func removeSpans(text string, spans []span) string {
	if len(spans) == 0 {
		return text
	}
	sorted := make([]span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	var b strings.Builder
	prev := 0
	for _, s := range sorted {
		if s.start < prev {
			if s.end > prev {
				prev = s.end
			}
			continue
		}
		b.WriteString(text[prev:s.start])
		prev = s.end
	}
	if prev < len(text) {
		b.WriteString(text[prev:])
	}
	return b.String()
}

func firstLine(s string) string {
	if lines := parser.Lines(s); len(lines) > 0 {
		return lines[0]
	}
	return ""
}
