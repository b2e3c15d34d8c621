// Package newsletter extracts an email newsletter from generated text and
// renders it as HTML.
//
// Parse reads a title from the first level-1 heading, a subject from a
// "Subject" heading or line, body sections from level-2 headings, and a
// call to action and footer from their own headings or, failing that,
// from phrases in the last few lines:
//
//	# Weekly Update
//	## Subject Line
//	Big News!
//	## Intro
//	Welcome back.
//
// yields title "Weekly Update", subject "Big News!" and one section
// "Intro". Text without level-2 headings becomes a single "Main Content"
// section, so any non-empty input gives at least one section.
//
// RenderHTML fills the email Layout, converting bodies with the fixed
// MarkdownToHTML substitutions. RenderMarkdown and RenderDocument use a
// full CommonMark renderer instead, and PlainText derives the text/plain
// alternative from rendered HTML.
package newsletter
