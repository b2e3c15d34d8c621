package parser

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// Response contains structured data extracted from an LLM response.
type Response struct {
	// Raw is the original response text.
	Raw string

	// Text is the response with code blocks removed.
	Text string

	// CodeBlocks contains all extracted code blocks.
	CodeBlocks []CodeBlock

	// JSONBlocks contains parsed JSON blocks.
	JSONBlocks []map[string]any

	// Sections contains markdown sections in document order.
	Sections []Section
}

// CodeBlock represents a fenced code block.
type CodeBlock struct {
	// Language is the language specifier after the opening fence (e.g., "json", "yaml").
	Language string

	// Content is the code inside the block, excluding fences.
	Content string

	// Raw is the complete block including the fences.
	Raw string
}

// Heading is a markdown heading line.
type Heading struct {
	// Level is the number of leading '#' characters (1-6).
	Level int

	// Title is the heading text with emphasis markers removed.
	Title string

	// Start and End are the byte offsets of the heading line, excluding the newline.
	Start, End int
}

// Section is a heading and the text that follows it.
type Section struct {
	Level   int
	Title   string
	Content string

	// Start is the offset of the heading line; End is the offset where the
	// section's content stops.
	Start, End int
}

// Parser extracts structured content from LLM responses.
type Parser struct {
	// codeBlockRegex matches fenced code blocks.
	codeBlockRegex *regexp.Regexp

	// headingRegex matches ATX markdown headings.
	headingRegex *regexp.Regexp

	// bulletRegex matches -, *, + and • list items.
	bulletRegex *regexp.Regexp

	// numberedRegex matches 1. and 1) list items.
	numberedRegex *regexp.Regexp

	// inlineJSONRegex matches a single-line JSON object.
	inlineJSONRegex *regexp.Regexp
}

// NewParser creates a new response parser with compiled regexes.
func NewParser() *Parser {
	return &Parser{
		codeBlockRegex:  regexp.MustCompile("(?s)```([\\w+-]*)[ \\t]*\\n(.*?)```"),
		headingRegex:    regexp.MustCompile(`(?m)^[ \t]{0,3}(#{1,6})[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`),
		bulletRegex:     regexp.MustCompile(`(?m)^[ \t]*[-*+•][ \t]+(.+)$`),
		numberedRegex:   regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+(.+)$`),
		inlineJSONRegex: regexp.MustCompile(`^\{.*\}$`),
	}
}

// defaultParser backs the package-level convenience functions. Compiled
// regexes are safe for concurrent use.
var defaultParser = NewParser()

// Parse extracts structured content from an LLM response.
func (p *Parser) Parse(response string) *Response {
	return &Response{
		Raw:        response,
		Text:       p.removeCodeBlocks(response),
		CodeBlocks: p.extractCodeBlocks(response),
		JSONBlocks: p.extractJSONBlocks(response),
		Sections:   p.Sections(response),
	}
}

// extractCodeBlocks finds all fenced code blocks in the response.
func (p *Parser) extractCodeBlocks(text string) []CodeBlock {
	matches := p.codeBlockRegex.FindAllStringSubmatch(text, -1)
	blocks := make([]CodeBlock, 0, len(matches))

	for _, match := range matches {
		if len(match) >= 3 {
			blocks = append(blocks, CodeBlock{
				Language: strings.ToLower(match[1]),
				Content:  match[2],
				Raw:      match[0],
			})
		}
	}

	return blocks
}

// extractJSONBlocks finds and parses JSON objects in code blocks and on
// their own lines.
func (p *Parser) extractJSONBlocks(text string) []map[string]any {
	var blocks []map[string]any

	for _, block := range p.extractCodeBlocks(text) {
		if block.Language == "json" || block.Language == "" {
			var data map[string]any
			if err := json.Unmarshal([]byte(block.Content), &data); err == nil {
				blocks = append(blocks, data)
			}
		}
	}

	for _, line := range strings.Split(p.removeCodeBlocks(text), "\n") {
		line = strings.TrimSpace(line)
		if !p.inlineJSONRegex.MatchString(line) {
			continue
		}
		var data map[string]any
		if err := json.Unmarshal([]byte(line), &data); err != nil {
			continue
		}
		isDuplicate := false
		for _, existing := range blocks {
			if jsonEqual(existing, data) {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			blocks = append(blocks, data)
		}
	}

	return blocks
}

// Headings returns every markdown heading in document order.
func (p *Parser) Headings(text string) []Heading {
	matches := p.headingRegex.FindAllStringSubmatchIndex(text, -1)
	headings := make([]Heading, 0, len(matches))

	for _, m := range matches {
		if len(m) < 6 {
			continue
		}
		headings = append(headings, Heading{
			Level: m[3] - m[2],
			Title: CleanLabel(text[m[4]:m[5]]),
			Start: m[0],
			End:   m[1],
		})
	}

	return headings
}

// Sections returns every heading paired with the text up to the next
// heading of any level.
func (p *Parser) Sections(text string) []Section {
	headings := p.Headings(text)
	sections := make([]Section, 0, len(headings))

	for i, h := range headings {
		end := len(text)
		if i+1 < len(headings) {
			end = headings[i+1].Start
		}
		sections = append(sections, Section{
			Level:   h.Level,
			Title:   h.Title,
			Content: strings.TrimSpace(text[h.End:end]),
			Start:   h.Start,
			End:     end,
		})
	}

	return sections
}

// SectionsAtLevel returns the headings of exactly the given level, each
// paired with the text up to the next heading of that level or higher.
// Deeper headings stay inside the content.
func (p *Parser) SectionsAtLevel(text string, level int) []Section {
	headings := p.Headings(text)
	var sections []Section

	for i, h := range headings {
		if h.Level != level {
			continue
		}
		end := len(text)
		for _, next := range headings[i+1:] {
			if next.Level <= level {
				end = next.Start
				break
			}
		}
		sections = append(sections, Section{
			Level:   h.Level,
			Title:   h.Title,
			Content: strings.TrimSpace(text[h.End:end]),
			Start:   h.Start,
			End:     end,
		})
	}

	return sections
}

// removeCodeBlocks removes all code blocks from the text.
func (p *Parser) removeCodeBlocks(text string) string {
	return p.codeBlockRegex.ReplaceAllString(text, "")
}

// jsonEqual compares two JSON maps for equality.
func jsonEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}

	aJSON, errA := json.Marshal(a)
	bJSON, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return bytes.Equal(aJSON, bJSON)
}

// CleanLabel strips emphasis markers, a trailing colon and surrounding
// whitespace from a heading or label.
func CleanLabel(s string) string {
	s = strings.TrimSpace(s)
	for _, marker := range []string{"**", "__"} {
		s = strings.TrimPrefix(s, marker)
		s = strings.TrimSuffix(s, marker)
	}
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ":：")
	for _, marker := range []string{"**", "__"} {
		s = strings.TrimSuffix(s, marker)
	}
	return strings.TrimSpace(s)
}

// Parse is a convenience function using the default parser.
func Parse(response string) *Response {
	return defaultParser.Parse(response)
}

// Headings is a convenience function using the default parser.
func Headings(text string) []Heading {
	return defaultParser.Headings(text)
}

// Sections is a convenience function using the default parser.
func Sections(text string) []Section {
	return defaultParser.Sections(text)
}

// SectionsAtLevel is a convenience function using the default parser.
func SectionsAtLevel(text string, level int) []Section {
	return defaultParser.SectionsAtLevel(text, level)
}
