// Package thread splits generated text into an ordered series of short posts.
//
// Parse detects the layout the generator used, first match wins:
//
//  1. "POST k/n:" markers anywhere in the text
//  2. "k/n " prefixes, when the text starts with one
//  3. blank lines or separator lines ("---", "***", "___")
//
// ValidateAndTrim then drops posts that are too short and trims posts that
// are too long at their last complete sentence:
//
//	bodies := thread.Parse(generated)
//	bodies = thread.ValidateAndTrim(bodies, 20, 280)
//	for _, p := range thread.Posts(bodies) {
//	    fmt.Printf("%d (%d chars): %s\n", p.Index, p.Length, p.Body)
//	}
//
// Compose turns long-form text with no thread markers into posts that each
// fit a character limit, numbered "i/N ".
package thread
