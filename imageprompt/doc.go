// Package imageprompt extracts an image generation prompt from generated
// text and bounds it to a length budget.
//
// Fields are read from "Label: value" lines, with synonyms such as
// "Atmosphere" for mood or "Palette" for color scheme:
//
//	Subject: a red fox
//	Style: watercolor
//	Mood: calm
//
// gives the FullPrompt "a red fox, in watercolor style, with calm mood".
// Text outside the labeled lines becomes the details. When no subject,
// style or mood is labeled, the input is used as the prompt as is.
//
// Truncate fits a prompt to a budget while keeping labeled structure, so
// a long description never pushes out the subject or style.
package imageprompt
