package imageprompt

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/contentkit/parser"
)

// subjectSentenceLimit is the longest first sentence used as the subject
// of an unstructured prompt.
const subjectSentenceLimit = 100

// ImagePrompt is the record produced for the image prompt content kind.
type ImagePrompt struct {
	Subject     string `json:"subject" yaml:"subject"`
	Style       string `json:"style" yaml:"style"`
	Mood        string `json:"mood" yaml:"mood"`
	Details     string `json:"details" yaml:"details"`
	ColorScheme string `json:"colorScheme,omitempty" yaml:"colorScheme"`
	Composition string `json:"composition,omitempty" yaml:"composition"`

	// FullPrompt is the single linear prompt: rebuilt from the fields when
	// any of subject, style or mood was labeled, and the input otherwise.
	FullPrompt string `json:"fullPrompt" yaml:"-"`
}

// Label synonyms for each field, matched case-insensitively.
var (
	SubjectLabels     = []string{"Subject", "Main Subject", "Scene", "Focus"}
	StyleLabels       = []string{"Style", "Art Style", "Artistic Style", "Visual Style", "Medium"}
	MoodLabels        = []string{"Mood", "Atmosphere", "Tone", "Feeling", "Emotion"}
	ColorSchemeLabels = []string{"Color Scheme", "Colour Scheme", "Color Palette", "Colour Palette", "Palette", "Colors", "Colours"}
	CompositionLabels = []string{"Composition", "Framing", "Layout", "Camera", "Perspective"}
	DetailsLabels     = []string{"Details", "Additional Details", "Description", "Elements"}
)

var detailsLine = parser.NewLabelMatcher(DetailsLabels...)

// fields lists the labeled fields in output order.
var fields = []struct {
	label   string
	matcher *parser.LabelMatcher
	get     func(*ImagePrompt) *string
}{
	{"Subject", parser.NewLabelMatcher(SubjectLabels...), func(p *ImagePrompt) *string { return &p.Subject }},
	{"Style", parser.NewLabelMatcher(StyleLabels...), func(p *ImagePrompt) *string { return &p.Style }},
	{"Mood", parser.NewLabelMatcher(MoodLabels...), func(p *ImagePrompt) *string { return &p.Mood }},
	{"Color Scheme", parser.NewLabelMatcher(ColorSchemeLabels...), func(p *ImagePrompt) *string { return &p.ColorScheme }},
	{"Composition", parser.NewLabelMatcher(CompositionLabels...), func(p *ImagePrompt) *string { return &p.Composition }},
	{"Details", detailsLine, func(p *ImagePrompt) *string { return &p.Details }},
}

// Parse extracts an image prompt from generated text. It never fails, and
// FullPrompt is non-empty whenever content is.
func Parse(content string) ImagePrompt {
	return parser.Recover("imageprompt.Parse", func() ImagePrompt {
		return parse(content)
	}, func(error) ImagePrompt {
		return ImagePrompt{FullPrompt: original(content)}
	})
}

func parse(content string) ImagePrompt {
	text := parser.Clean(content)
	if p, ok := decode(text); ok {
		return p
	}
	p, matched := extract(text)

	if !p.structured() {
		p.Details = fieldValue(detailsLine.Value(text))
		p.FullPrompt = original(content)
		if s := parser.FirstSentence(text); s != "" && utf8.RuneCountInString(s) < subjectSentenceLimit {
			p.Subject = s
		}
		return p
	}

	if p.Details == "" {
		p.Details = leftover(text, matched)
	}
	p.FullPrompt = p.Reconstruct()
	return p
}

// decode reads a prompt written as a JSON or YAML object.
func decode(text string) (ImagePrompt, bool) {
	var p ImagePrompt
	if !parser.DecodeBlock(text, &p) {
		return ImagePrompt{}, false
	}
	for _, f := range fields {
		v := f.get(&p)
		*v = fieldValue(*v)
	}
	if !p.structured() {
		return ImagePrompt{}, false
	}
	p.FullPrompt = p.Reconstruct()
	return p, true
}

// extract finds every labeled field independently and returns the lines
// that matched.
func extract(text string) (ImagePrompt, []parser.LabeledLine) {
	var p ImagePrompt
	var matched []parser.LabeledLine
	for _, f := range fields {
		line, ok := f.matcher.Find(text)
		if !ok {
			continue
		}
		*f.get(&p) = fieldValue(line.Value)
		matched = append(matched, line)
	}
	return p, matched
}

// structured reports whether any of the core fields were labeled.
func (p ImagePrompt) structured() bool {
	return p.Subject != "" || p.Style != "" || p.Mood != ""
}

// leftover is the text outside the matched lines, without headings and
// blank-line runs, joined into one line.
func leftover(text string, matched []parser.LabeledLine) string {
	sorted := make([]parser.LabeledLine, len(matched))
	copy(sorted, matched)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var kept []string
	for _, line := range parser.Lines(parser.RemoveSpans(text, sorted)) {
		if parser.IsHeading(line) {
			continue
		}
		kept = append(kept, line)
	}
	return fieldValue(strings.Join(kept, " "))
}

// Reconstruct joins the non-empty fields into one prompt:
// subject, "in STYLE style", "with MOOD mood", "using COLORS colors",
// composition, separated by ", ", then ". " and the details.
func (p ImagePrompt) Reconstruct() string {
	var parts []string
	if p.Subject != "" {
		parts = append(parts, p.Subject)
	}
	if p.Style != "" {
		parts = append(parts, "in "+withNoun(p.Style, "style"))
	}
	if p.Mood != "" {
		parts = append(parts, "with "+withNoun(p.Mood, "mood"))
	}
	if p.ColorScheme != "" {
		parts = append(parts, "using "+withNoun(p.ColorScheme, "colors", "colours", "palette", "tones"))
	}
	if p.Composition != "" {
		parts = append(parts, p.Composition)
	}

	prompt := strings.Join(parts, ", ")
	switch {
	case p.Details == "":
		return prompt
	case prompt == "":
		return p.Details
	default:
		return prompt + ". " + p.Details
	}
}

// withNoun appends noun to value unless value already ends with it or one
// of its alternatives.
func withNoun(value, noun string, alternatives ...string) string {
	lower := strings.ToLower(value)
	for _, n := range append([]string{noun}, alternatives...) {
		if lower == n || strings.HasSuffix(lower, " "+n) {
			return value
		}
	}
	return value + " " + noun
}

// fieldValue trims whitespace and trailing separators from a value.
func fieldValue(v string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), ".;,"))
}

// original is the input as the unstructured prompt. Surrounding whitespace
// is dropped unless nothing else is left.
func original(content string) string {
	if trimmed := strings.TrimSpace(content); trimmed != "" {
		return trimmed
	}
	return content
}
