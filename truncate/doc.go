// Package truncate shortens text at semantically natural boundaries.
//
// Publishing surfaces impose hard character limits. Cutting mid-word or
// mid-sentence reads badly, so the Truncator scans backward from the target
// length for the best breakpoint, in priority order:
//
//   - Paragraph: a blank line at or after 80% of the target
//   - Line: a line break at or after 80% of the target
//   - Sentence: the closest ". ", "! " or "? " at or after 70% of the target
//   - Clause: the closest ", ", "; " or ": " at or after 80% of the target
//   - Word: the last space before the target
//   - HardCut: exactly at the target when nothing else qualifies
//
// The thresholds keep a breakpoint from producing a pathologically short
// result.
//
// # Basic Usage
//
//	tr := truncate.New()
//	result, truncated := tr.Truncate(text, 270)
//
// A suffix can be reserved and appended when truncation happens:
//
//	tr := truncate.New().WithSuffix("...")
//	result, _ := tr.Truncate(text, 280) // len(result) <= 280
//
// # Convenience Functions
//
//	truncate.Boundary(text, 270)     // breakpoint cascade, no suffix
//	truncate.Smart(text, 280)        // breakpoint cascade + "..."
//	truncate.Sentence(text, 100)     // sentence, then word boundary
//	truncate.LastSentence(text, 280) // last complete sentence, else hard cut + "..."
//	truncate.Words(text, 50)         // word boundary only
//	truncate.ToLength(text, 500)     // hard cut + "..."
//
// # UTF-8 Support
//
// All lengths are counted in runes so multi-byte characters are never split.
package truncate
