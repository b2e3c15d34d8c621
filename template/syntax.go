package template

import (
	"regexp"
	"strings"
)

// goTemplateKeywords are Go template reserved words that should not be
// converted to variable references.
var goTemplateKeywords = map[string]bool{
	"else":     true,
	"end":      true,
	"if":       true,
	"range":    true,
	"with":     true,
	"define":   true,
	"template": true,
	"block":    true,
	"nil":      true,
	"true":     true,
	"false":    true,
}

var (
	ifPattern      = regexp.MustCompile(`\{\{#if\s+([a-zA-Z_]\w*)\s*\}\}`)
	unlessPattern  = regexp.MustCompile(`\{\{#unless\s+([a-zA-Z_]\w*)\s*\}\}`)
	eachPattern    = regexp.MustCompile(`\{\{#each\s+([a-zA-Z_]\w*)\s*\}\}`)
	withPattern    = regexp.MustCompile(`\{\{#with\s+([a-zA-Z_]\w*)\s*\}\}`)
	closePattern   = regexp.MustCompile(`\{\{/(?:if|unless|each|with)\}\}`)
	varPattern     = regexp.MustCompile(`\{\{\s*([a-zA-Z_]\w*)\s*\}\}`)
	controlPattern = regexp.MustCompile(`\{\{#(?:if|unless|each|with)\s+([a-zA-Z_]\w*)\s*\}\}`)
	callPattern    = regexp.MustCompile(`\{\{\s*([a-zA-Z_]\w*)\s+([^{}]+?)\s*\}\}`)
)

// convertSyntax converts Handlebars-like syntax to Go template syntax.
//
// Conversions:
//   - {{variable}} -> {{.variable}}
//   - {{#if x}}...{{else}}...{{/if}} -> {{if .x}}...{{else}}...{{end}}
//   - {{#unless x}}...{{/unless}} -> {{if not .x}}...{{end}}
//   - {{#each items}}...{{/each}} -> {{range .items}}...{{end}}
//   - {{#with item}}...{{/with}} -> {{with .item}}...{{end}}
//   - {{helper arg1 arg2}} -> {{helper .arg1 .arg2}}
func convertSyntax(input string, helpers []string) string {
	result := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	result = unlessPattern.ReplaceAllString(result, "{{if not .$1}}")
	result = eachPattern.ReplaceAllString(result, "{{range .$1}}")
	result = withPattern.ReplaceAllString(result, "{{with .$1}}")
	result = closePattern.ReplaceAllString(result, "{{end}}")

	isHelper := make(map[string]bool, len(helpers))
	for _, h := range helpers {
		isHelper[h] = true
	}

	// Simple variables. Keywords and zero-argument helpers stay as they are.
	result = varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := varPattern.FindStringSubmatch(match)[1]
		if goTemplateKeywords[name] || isHelper[name] {
			return match
		}
		return "{{." + name + "}}"
	})

	// Helper calls with arguments.
	return callPattern.ReplaceAllStringFunc(result, func(match string) string {
		m := callPattern.FindStringSubmatch(match)
		name, args := m[1], m[2]
		if !isHelper[name] {
			return match
		}
		return "{{" + name + " " + convertArguments(args) + "}}"
	})
}

// convertArguments converts a space-separated list of arguments.
// Variables become .variable, literals (numbers, quoted strings, booleans) stay as-is.
func convertArguments(args string) string {
	parts := splitArguments(args)
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, "."), strings.HasPrefix(part, "$"):
		case isNumber(part), isQuotedString(part):
		case part == "true" || part == "false" || part == "nil":
		case isValidIdentifier(part):
			parts[i] = "." + part
		}
	}
	return strings.Join(parts, " ")
}

// splitArguments splits arguments on spaces while respecting quoted strings.
func splitArguments(args string) []string {
	var parts []string
	var current strings.Builder
	var quote rune

	for _, ch := range args {
		switch {
		case quote == 0 && (ch == '"' || ch == '\'' || ch == '`'):
			quote = ch
			current.WriteRune(ch)
		case quote != 0 && ch == quote:
			quote = 0
			current.WriteRune(ch)
		case quote == 0 && (ch == ' ' || ch == '\t'):
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// isNumber checks if a string represents a number (integer or float, optionally negative).
func isNumber(s string) bool {
	digits := 0
	for i, ch := range s {
		switch {
		case ch == '-' && i == 0:
		case ch == '.':
		case ch >= '0' && ch <= '9':
			digits++
		default:
			return false
		}
	}
	return digits > 0
}

// isQuotedString checks if a string is wrapped in matching quotes.
func isQuotedString(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '"' || first == '\'' || first == '`')
}

// isValidIdentifier checks if a string is a valid variable name.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		isLetter := ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
		isDigit := ch >= '0' && ch <= '9'
		if !isLetter && !(isDigit && i > 0) {
			return false
		}
	}
	return true
}

// extractVariables extracts variable names from a template.
// Returns a deduplicated list of variable names in order of appearance.
func extractVariables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string

	add := func(name string) {
		if name == "" || seen[name] || goTemplateKeywords[name] || isNumber(name) {
			return
		}
		seen[name] = true
		result = append(result, name)
	}

	for _, match := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}
	for _, match := range controlPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}
	for _, match := range callPattern.FindAllStringSubmatch(templateStr, -1) {
		for _, arg := range splitArguments(match[2]) {
			if isValidIdentifier(arg) && arg != "true" && arg != "false" && arg != "nil" {
				add(arg)
			}
		}
	}

	return result
}
