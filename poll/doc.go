// Package poll extracts a poll (title, question and two to four options)
// from generated text.
//
// Structured input is read through labels and headings:
//
//	# Lunch Vote
//	## Question
//	What should we order?
//	## Options
//	- Option A: Pizza
//	- Option B: Tacos
//
// Less structured input falls back to an ALL-CAPS title, the first line
// with a question mark, bullet lines anywhere, and finally any short line.
// Whatever the input, Parse returns at most four options, and a poll with
// fewer than two becomes a Yes/No poll.
package poll
