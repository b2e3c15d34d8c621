package template

import "errors"

var (
	// ErrEmpty means the template has no content to render.
	ErrEmpty = errors.New("empty template")

	// ErrParse wraps text/template parse failures, usually an unbalanced
	// {{#if}} or {{#each}} block.
	ErrParse = errors.New("parse template")

	// ErrExecute wraps failures while rendering a parsed template.
	ErrExecute = errors.New("render template")

	// ErrVariable means a variable the template needs is not provided.
	ErrVariable = errors.New("missing template variable")
)
