package template

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/randalmurphal/contentkit/format"
	"github.com/randalmurphal/contentkit/platform"
	"github.com/randalmurphal/contentkit/truncate"
)

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate":  truncate.Smart,
		"fit":       format.ForPlatform,
		"count":     platform.Count,
		"escape":    html.EscapeString,
		"links":     format.WrapLinks,
		"hashtags":  format.WrapHashtags,
		"markup":    format.Markup,
		"json":      toJSON,
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trim":      strings.TrimSpace,
		"split":     strings.Split,
		"join":      strings.Join,
		"replace":   strings.ReplaceAll,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"default":   defaultValue,
		"indent":    indent,
		"wrap":      wrap,
	}
}

// toJSON converts a value to a pretty-printed JSON string.
// If marshaling fails, returns the value's default string representation.
func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// defaultValue returns the default if the value is nil or an empty string.
// For other types (including zero values like 0), the original value is returned.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}

// indent adds a prefix string to each non-empty line of the input.
func indent(s string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// wrap wraps text at the specified width in characters, breaking on word
// boundaries. Existing paragraph breaks are kept. If width <= 0, the string
// is returned unchanged.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	paragraphs := strings.Split(s, "\n\n")
	for i, p := range paragraphs {
		var result strings.Builder
		lineLen := 0
		for _, word := range strings.Fields(p) {
			n := utf8.RuneCountInString(word)
			if lineLen > 0 && lineLen+1+n > width {
				result.WriteString("\n")
				lineLen = 0
			}
			if lineLen > 0 {
				result.WriteString(" ")
				lineLen++
			}
			result.WriteString(word)
			lineLen += n
		}
		paragraphs[i] = result.String()
	}
	return strings.Join(paragraphs, "\n\n")
}
