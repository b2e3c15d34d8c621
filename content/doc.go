// Package content dispatches generated text to the parser for its content kind.
//
// Each kind package (thread, newsletter, poll, imageprompt) registers a
// Handler in its init function. Import the kinds package to make all of them
// available:
//
//	import _ "github.com/randalmurphal/contentkit/kinds"
//
//	result, err := content.Process(content.Request{
//	    Kind:     content.KindPoll,
//	    Content:  generated,
//	    Platform: "twitter",
//	}, content.DefaultOptions())
//
// Process only fails when the kind is not registered. Parsing itself is
// total: any input, including the empty string, yields a well-formed record.
//
// Schema returns the JSON Schema of a kind's record, suitable for asking a
// generator for structured output.
package content
