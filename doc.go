// Package contentkit turns free-form generated text into structured,
// platform-ready content.
//
// Each subpackage can be used on its own:
//
//   - parser: cleaning, label matching, sections and fault-tolerant strategy chains
//   - truncate: boundary-aware truncation (sentence, word, hard cut)
//   - platform: character limits per publishing platform
//   - format: fit text to a platform, wrap links and hashtags in HTML
//   - template: handlebars-style templates for rendering records
//   - thread, newsletter, poll, imageprompt: one parser per content kind
//   - content: the kind registry and JSON Schemas of the records
//   - config: YAML or TOML configuration
//   - watch: re-emit a file's content whenever it changes
//
// # Quick Start
//
// Process one piece of text through the registry:
//
//	import (
//	    "github.com/randalmurphal/contentkit/content"
//	    _ "github.com/randalmurphal/contentkit/kinds"
//	)
//
//	res, err := content.Process(content.Request{
//	    Kind:     content.KindThread,
//	    Content:  text,
//	    Platform: "linkedin",
//	}, content.DefaultOptions())
//
// Or call a kind's parser directly:
//
//	import "github.com/randalmurphal/contentkit/newsletter"
//	n := newsletter.Parse(text)
//	html := newsletter.RenderHTML(n)
//
// Fit text to a platform:
//
//	import "github.com/randalmurphal/contentkit/format"
//	post := format.ForPlatform(text, "twitter")
//
// # Failure Model
//
// Parsers never fail. Malformed input degrades to a simpler record, and a
// fault inside a parser is recovered into the kind's fallback record and
// logged with log/slog. The only error from content.Process is an unknown
// kind.
package contentkit
