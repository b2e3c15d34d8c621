package parser

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ExtractJSON extracts and parses the first JSON block found.
// Returns nil if no valid JSON block is found.
func (p *Parser) ExtractJSON(response string) map[string]any {
	blocks := p.extractJSONBlocks(response)
	if len(blocks) > 0 {
		return blocks[0]
	}
	return nil
}

// ExtractCode extracts the first code block with the given language.
// If language is empty, returns the first code block found.
func (p *Parser) ExtractCode(response, language string) string {
	for _, block := range p.extractCodeBlocks(response) {
		if language == "" || block.Language == language {
			return block.Content
		}
	}
	return ""
}

// ExtractAllCode extracts all code blocks from the response.
func (p *Parser) ExtractAllCode(response string) []CodeBlock {
	return p.extractCodeBlocks(response)
}

// ExtractYAML extracts and parses YAML blocks.
func (p *Parser) ExtractYAML(response string) []map[string]any {
	var blocks []map[string]any

	for _, block := range p.extractCodeBlocks(response) {
		if block.Language == "yaml" || block.Language == "yml" {
			var data map[string]any
			if err := yaml.Unmarshal([]byte(block.Content), &data); err == nil && data != nil {
				blocks = append(blocks, data)
			}
		}
	}

	return blocks
}

// DecodeBlock decodes the first structured block of the response into out.
// It tries fenced JSON blocks, fenced YAML blocks, then the whole response
// as a JSON object. Returns false when nothing decodes; callers still need to
// check that the fields they care about were populated.
func (p *Parser) DecodeBlock(response string, out any) bool {
	for _, block := range p.extractCodeBlocks(response) {
		switch block.Language {
		case "json", "":
			if err := json.Unmarshal([]byte(block.Content), out); err == nil {
				return true
			}
		case "yaml", "yml":
			if err := yaml.Unmarshal([]byte(block.Content), out); err == nil {
				return true
			}
		}
	}

	trimmed := strings.TrimSpace(response)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if err := json.Unmarshal([]byte(trimmed), out); err == nil {
			return true
		}
	}

	return false
}

// ExtractSection extracts the content of the first section whose title
// matches any of the given titles, case-insensitively.
func (p *Parser) ExtractSection(response string, titles ...string) string {
	s, ok := p.FindSection(response, titles...)
	if !ok {
		return ""
	}
	return s.Content
}

// FindSection returns the first section whose title matches any of the
// given titles, case-insensitively.
func (p *Parser) FindSection(response string, titles ...string) (Section, bool) {
	for _, s := range p.Sections(response) {
		if MatchesLabel(s.Title, titles...) {
			return s, true
		}
	}
	return Section{}, false
}

// ExtractList extracts bullet list items (-, *, + and •) from the response.
func (p *Parser) ExtractList(response string) []string {
	return collectItems(p.bulletRegex, response)
}

// ExtractNumberedList extracts numbered list items.
func (p *Parser) ExtractNumberedList(response string) []string {
	return collectItems(p.numberedRegex, response)
}

// IsListItem reports whether a single line is a bullet or numbered item.
func (p *Parser) IsListItem(line string) bool {
	return p.bulletRegex.MatchString(line) || p.numberedRegex.MatchString(line)
}

// IsHeading reports whether a single line is a markdown heading.
func (p *Parser) IsHeading(line string) bool {
	return p.headingRegex.MatchString(line)
}

// HasCodeBlock checks if the response contains any code block.
func (p *Parser) HasCodeBlock(response string) bool {
	return p.codeBlockRegex.MatchString(response)
}

// HasJSON checks if the response contains valid JSON.
func (p *Parser) HasJSON(response string) bool {
	return len(p.extractJSONBlocks(response)) > 0
}

func collectItems(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)

	items := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) >= 2 {
			if item := strings.TrimSpace(match[1]); item != "" {
				items = append(items, item)
			}
		}
	}

	return items
}

// MatchesLabel reports whether label equals any candidate, ignoring case,
// emphasis markers and a trailing colon.
func MatchesLabel(label string, candidates ...string) bool {
	label = CleanLabel(label)
	for _, c := range candidates {
		if strings.EqualFold(label, c) {
			return true
		}
	}
	return false
}

// Lines splits text into trimmed, non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

var paragraphSplit = regexp.MustCompile(`\n[ \t]*\n\s*`)

// Paragraphs splits text on blank lines into trimmed, non-empty blocks.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphSplit.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Sentences splits text into sentences. A sentence ends at a run of '.',
// '!' or '?' (plus closing quotes or brackets) followed by whitespace, or at
// a blank line. Whitespace inside a sentence is collapsed.
func Sentences(text string) []string {
	var sentences []string
	for _, para := range Paragraphs(text) {
		runes := []rune(para)
		start := 0
		for i := 0; i < len(runes); i++ {
			if !isTerminator(runes[i]) {
				continue
			}
			end := i + 1
			for end < len(runes) && (isTerminator(runes[end]) || isCloser(runes[end])) {
				end++
			}
			if end < len(runes) && !unicode.IsSpace(runes[end]) {
				i = end - 1
				continue
			}
			if s := collapse(string(runes[start:end])); s != "" {
				sentences = append(sentences, s)
			}
			start = end
			i = end - 1
		}
		if s := collapse(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// FirstSentence returns the first sentence of text, or "".
func FirstSentence(text string) string {
	if s := Sentences(text); len(s) > 0 {
		return s[0]
	}
	return ""
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractJSON is a convenience function for JSON extraction.
func ExtractJSON(response string) map[string]any {
	return defaultParser.ExtractJSON(response)
}

// ExtractCode is a convenience function for code extraction.
func ExtractCode(response, language string) string {
	return defaultParser.ExtractCode(response, language)
}

// ExtractList is a convenience function for bullet list extraction.
func ExtractList(response string) []string {
	return defaultParser.ExtractList(response)
}

// ExtractNumberedList is a convenience function for numbered list extraction.
func ExtractNumberedList(response string) []string {
	return defaultParser.ExtractNumberedList(response)
}

// ExtractSection is a convenience function for section extraction.
func ExtractSection(response string, titles ...string) string {
	return defaultParser.ExtractSection(response, titles...)
}

// FindSection is a convenience function for section lookup.
func FindSection(response string, titles ...string) (Section, bool) {
	return defaultParser.FindSection(response, titles...)
}

// DecodeBlock is a convenience function for structured block decoding.
func DecodeBlock(response string, out any) bool {
	return defaultParser.DecodeBlock(response, out)
}

// IsListItem is a convenience function using the default parser.
func IsListItem(line string) bool {
	return defaultParser.IsListItem(line)
}

// IsHeading is a convenience function using the default parser.
func IsHeading(line string) bool {
	return defaultParser.IsHeading(line)
}
