// Package parser extracts structure from loosely formatted LLM output.
//
// Generated text follows a requested layout only some of the time, so every
// helper here is tolerant: missing structure yields empty results, never
// errors or panics.
//
// Core types:
//   - Response: Raw text plus extracted code blocks, JSON blocks and sections
//   - Heading / Section: Markdown headings in document order
//   - LabelMatcher: Finds "Label: value" lines with label synonyms
//   - MarkerMatcher: Finds XML-style wrapper tags such as <thread>...</thread>
//   - Chain: An ordered list of extraction strategies; first success wins
//
// Example usage:
//
//	text := parser.Clean(llmOutput)
//	for _, s := range parser.SectionsAtLevel(text, 2) {
//	    fmt.Printf("%s: %s\n", s.Title, s.Content)
//	}
//
//	mood := parser.NewLabelMatcher("Mood", "Atmosphere")
//	if line, ok := mood.Find(text); ok {
//	    fmt.Println(line.Value)
//	}
//
// # Strategy Chains
//
// A field that can be recovered several ways is modeled as a Chain. Each
// strategy returns (value, ok); a strategy that panics is logged and skipped:
//
//	question := parser.NewChain("poll.question",
//	    parser.Strategy[string]{Name: "heading", Extract: fromHeading},
//	    parser.Strategy[string]{Name: "first-question-line", Extract: firstQuestion},
//	)
//	q, ok := question.Run(text)
//
// # Faults
//
// Public entry points of the content parsers are total. They run their work
// through Recover, which converts a panic into an error and substitutes a
// fallback value:
//
//	result := parser.Recover("poll.Parse", func() Poll { return parse(s) }, fallback)
//
// Convenience functions:
//
//	json := parser.ExtractJSON(response)
//	list := parser.ExtractList(response)
//	parsed := parser.Parse(response)
package parser
