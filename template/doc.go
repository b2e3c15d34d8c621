// Package template renders layouts for generated content: the newsletter
// email, custom CLI output and similar text around parsed records.
//
// The engine supports both Go template syntax and a simplified
// Handlebars-like syntax that is automatically converted before execution.
// Output is not HTML-escaped; use the escape helper for untrusted values.
//
// # Syntax
//
// Simple variables use double braces:
//
//	Subject: {{subject}}
//
// Conditionals use #if / #unless, with an optional else:
//
//	{{#if cta}}{{cta}}{{else}}Thanks for reading!{{/if}}
//
// Iteration uses #each and /each. Inside the block, names refer to the
// current element:
//
//	{{#each sections}}<h2>{{escape title}}</h2>{{body}}{{/each}}
//
// Helper functions can be called with arguments:
//
//	{{truncate summary 100}}
//	{{fit text "twitter"}}
//
// # Built-in Functions
//
//   - truncate(s string, maxLen int) string - Cut at a natural boundary, with ellipsis
//   - fit(s, platform string) string - Fit text to a platform's limit
//   - count(s string) int - Character count as platforms count it
//   - escape(s string) string - HTML-escape
//   - links(s string) string - Wrap bare URLs in anchors
//   - hashtags(s string) string - Wrap #tags in spans
//   - markup(s string) string - links then hashtags
//   - json(v any) string - Convert value to pretty-printed JSON
//   - upper, lower, trim, split, join, replace, contains, hasPrefix, hasSuffix
//   - default(val, defaultVal any) any - Return default if val is nil/empty
//   - indent(s string, spaces int) string - Add spaces to each line
//   - wrap(s string, width int) string - Wrap text at width
//
// # Example
//
//	engine := template.NewEngine()
//	out, err := engine.Render("{{upper title}}: {{truncate body 50}}", vars)
//
// Parse extracts the variable names a template references, which pairs
// with ValidateVariables to check input before rendering.
package template
