package poll

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/randalmurphal/contentkit/parser"
)

// Option count bounds.
const (
	MinOptions = 2
	MaxOptions = 4
)

// maxOptionLength is the longest line the unstructured path accepts as an
// option.
const maxOptionLength = 100

// Poll is the record produced for the poll content kind.
type Poll struct {
	Title    string   `json:"title" yaml:"title"`
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options" jsonschema:"minItems=2,maxItems=4"`
}

// Label synonyms, matched case-insensitively.
var (
	TitleLabels    = []string{"Title", "Poll Title"}
	QuestionLabels = []string{"Question", "Poll Question"}
	OptionsLabels  = []string{"Options", "Poll Options", "Choices", "Answers"}
)

var (
	titleLine    = parser.NewLabelMatcher(TitleLabels...)
	questionLine = parser.NewLabelMatcher(QuestionLabels...)

	optionLabelLine = regexp.MustCompile(`(?im)^[ \t]*(?:[-*+•][ \t]+)?(?:\*\*|__)?(?:option|choice)[ \t]+[a-z0-9]{1,2}(?:\*\*|__)?[ \t]*[:.)](?:\*\*|__)?[ \t]*(\S.*?)[ \t]*$`)
	optionPrefix    = regexp.MustCompile(`(?i)^(?:\*\*|__)?(?:option|choice)[ \t]+[a-z0-9]{1,2}[ \t]*[:.)](?:\*\*|__)?[ \t]*|^[a-d][.)][ \t]+`)
)

// Parse extracts a poll from generated text. It never fails and the
// result always has between MinOptions and MaxOptions options.
func Parse(content string) Poll {
	return parser.Recover("poll.Parse", func() Poll {
		return parse(content)
	}, func(error) Poll {
		return finalize(Poll{Question: parser.FirstSentence(content)})
	})
}

func parse(content string) Poll {
	text := parser.Clean(content)

	if p, ok := decode(text); ok {
		return finalize(p)
	}

	var p Poll
	p.Title, _ = titleChain.Run(text)
	p.Question, _ = questionChain.Run(text)
	p.Options, _ = optionsChain.Run(text)
	if len(p.Options) == 0 {
		p = degrade(text, p)
	}

	return finalize(p)
}

// decode reads a poll written as a JSON or YAML object.
func decode(text string) (Poll, bool) {
	var p Poll
	if !parser.DecodeBlock(text, &p) || (p.Question == "" && len(p.Options) == 0) {
		return Poll{}, false
	}
	return p, true
}

var titleChain = parser.NewChain("poll.title",
	parser.Strategy[string]{Name: "label", Extract: func(text string) (string, bool) {
		v := titleLine.Value(text)
		return v, v != ""
	}},
	parser.Strategy[string]{Name: "heading", Extract: titleHeading},
	parser.Strategy[string]{Name: "all-caps", Extract: allCapsLine},
)

var questionChain = parser.NewChain("poll.question",
	parser.Strategy[string]{Name: "heading", Extract: func(text string) (string, bool) {
		for _, s := range parser.Sections(text) {
			if parser.MatchesLabel(s.Title, QuestionLabels...) {
				if lines := parser.Lines(s.Content); len(lines) > 0 {
					return parser.CleanValue(lines[0]), true
				}
			}
		}
		return "", false
	}},
	parser.Strategy[string]{Name: "label", Extract: func(text string) (string, bool) {
		v := questionLine.Value(text)
		return v, v != ""
	}},
	parser.Strategy[string]{Name: "question-mark", Extract: firstQuestionLine},
)

var optionsChain = parser.NewChain("poll.options",
	parser.Strategy[[]string]{Name: "options-section", Extract: func(text string) ([]string, bool) {
		s, ok := parser.FindSection(text, OptionsLabels...)
		if !ok {
			return nil, false
		}
		items := cleanOptions(parser.ExtractList(s.Content))
		if len(items) == 0 {
			items = cleanOptions(parser.ExtractNumberedList(s.Content))
		}
		return items, len(items) > 0
	}},
	parser.Strategy[[]string]{Name: "option-labels", Extract: func(text string) ([]string, bool) {
		var items []string
		for _, m := range optionLabelLine.FindAllStringSubmatch(text, -1) {
			items = append(items, m[1])
		}
		items = cleanOptions(items)
		return items, len(items) > 0
	}},
	parser.Strategy[[]string]{Name: "bullets", Extract: func(text string) ([]string, bool) {
		items := cleanOptions(parser.ExtractList(text))
		return items, len(items) > 0
	}},
	parser.Strategy[[]string]{Name: "numbered", Extract: func(text string) ([]string, bool) {
		items := cleanOptions(parser.ExtractNumberedList(text))
		return items, len(items) > 0
	}},
)

// titleHeading returns the first heading that is not itself a question or
// the label of another field.
func titleHeading(text string) (string, bool) {
	for _, h := range parser.Headings(text) {
		switch {
		case h.Title == "",
			strings.HasSuffix(h.Title, "?"),
			parser.MatchesLabel(h.Title, QuestionLabels...),
			parser.MatchesLabel(h.Title, OptionsLabels...),
			questionLine.Matches(h.Title):
			continue
		}
		if l, ok := titleLine.Find(h.Title); ok {
			return l.Value, true
		}
		return h.Title, true
	}
	return "", false
}

// allCapsLine returns the first short line written entirely in capitals.
func allCapsLine(text string) (string, bool) {
	for _, line := range parser.Lines(text) {
		if parser.IsListItem(line) || strings.Contains(line, "?") || utf8.RuneCountInString(line) > maxOptionLength {
			continue
		}
		line = cleanLine(line)
		if isAllCaps(line) {
			return line, true
		}
	}
	return "", false
}

func isAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}

// firstQuestionLine returns the first line that asks something. List
// items are skipped since those are options.
func firstQuestionLine(text string) (string, bool) {
	for _, line := range parser.Lines(text) {
		if !strings.Contains(line, "?") || parser.IsListItem(line) {
			continue
		}
		if line = cleanLine(line); line != "" {
			return line, true
		}
	}
	return "", false
}

// degrade handles text without an option list. If neither title nor
// question was found, the first line is the question when it asks
// something and the title otherwise. Every other short line is an option.
func degrade(text string, p Poll) Poll {
	lines := parser.Lines(text)
	if len(lines) == 0 {
		return p
	}

	if p.Title == "" && p.Question == "" {
		if first := cleanLine(lines[0]); strings.Contains(first, "?") {
			p.Question = first
		} else {
			p.Title = first
		}
	}

	var candidates []string
	for _, line := range lines {
		if parser.IsHeading(line) || titleLine.Matches(line) || questionLine.Matches(line) {
			continue
		}
		if c := cleanLine(line); c == p.Title || c == p.Question || utf8.RuneCountInString(c) >= maxOptionLength {
			continue
		}
		candidates = append(candidates, line)
	}
	p.Options = cleanOptions(candidates)
	return p
}

func cleanLine(line string) string {
	return parser.CleanValue(parser.CleanLabel(strings.TrimLeft(line, "# \t")))
}

// cleanOptions strips "Option A:" style prefixes and emphasis, and drops
// empty and repeated options.
func cleanOptions(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = optionPrefix.ReplaceAllString(strings.TrimSpace(item), "")
		item = parser.CleanValue(item)
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// finalize enforces the option bounds: at most MaxOptions are kept, and
// fewer than MinOptions are replaced with Yes and No.
func finalize(p Poll) Poll {
	p.Title = strings.TrimSpace(p.Title)
	p.Question = strings.TrimSpace(p.Question)
	p.Options = cleanOptions(p.Options)

	if len(p.Options) > MaxOptions {
		p.Options = p.Options[:MaxOptions]
	}
	if len(p.Options) < MinOptions {
		p.Options = []string{"Yes", "No"}
	}
	return p
}
