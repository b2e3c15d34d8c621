package template

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"
)

// Engine renders layout templates with variable substitution.
// It supports both Go template syntax and Handlebars-like syntax.
type Engine struct {
	funcs   template.FuncMap
	helpers []string
}

// NewEngine creates a new template engine with default helper functions.
func NewEngine() *Engine {
	e := &Engine{funcs: defaultFuncs()}
	e.refreshHelpers()
	return e
}

// Render executes the template with the given variables.
// The template string supports Handlebars-like syntax which is automatically
// converted to Go template syntax before execution.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	var buf strings.Builder
	if err := e.RenderTo(&buf, templateStr, variables); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo is like Render but writes to w. Nothing is written when the
// template fails to parse; a failed execution may leave partial output.
func (e *Engine) RenderTo(w io.Writer, templateStr string, variables map[string]any) error {
	tmpl, err := e.compile(templateStr)
	if err != nil {
		return err
	}
	if execErr := tmpl.Execute(w, variables); execErr != nil {
		return fmt.Errorf("%w: %w", ErrExecute, execErr)
	}
	return nil
}

// Parse validates the template and extracts variable names.
// Returns a list of variable names referenced in the template.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if _, err := e.compile(templateStr); err != nil {
		return nil, err
	}
	return extractVariables(templateStr), nil
}

// AddFunc adds a custom template function.
// The function can be called with Handlebars-style arguments like the
// built-in helpers: {{name arg}}.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
	e.refreshHelpers()
}

func (e *Engine) compile(templateStr string) (*template.Template, error) {
	if strings.TrimSpace(templateStr) == "" {
		return nil, ErrEmpty
	}

	converted := convertSyntax(templateStr, e.helpers)

	tmpl, parseErr := template.New("layout").Funcs(e.funcs).Parse(converted)
	if parseErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, parseErr)
	}
	return tmpl, nil
}

// refreshHelpers rebuilds the sorted list of function names that
// convertSyntax treats as helper calls.
func (e *Engine) refreshHelpers() {
	names := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	e.helpers = names
}

// Helpers returns the names of all functions available to templates.
func (e *Engine) Helpers() []string {
	result := make([]string, len(e.helpers))
	copy(result, e.helpers)
	return result
}

// ValidateVariables checks that all required variables are provided.
// Returns an error wrapping ErrVariable if any required variable is missing.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
