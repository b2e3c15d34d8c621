package content

import (
	"fmt"

	"github.com/randalmurphal/contentkit/platform"
)

// Kind names a content type.
type Kind string

// Built-in content kinds.
const (
	KindThread      Kind = "thread"
	KindNewsletter  Kind = "newsletter"
	KindPoll        Kind = "poll"
	KindImagePrompt Kind = "image_prompt"
)

// Request is one piece of generated text to process.
type Request struct {
	// Kind selects the parser.
	Kind Kind `json:"kind"`

	// Content is the raw generated text.
	Content string `json:"content"`

	// Platform is the destination surface. Empty uses Options.DefaultPlatform.
	Platform string `json:"platform,omitempty"`

	// MaxLength bounds the linear text form where a kind supports it
	// (image prompts). 0 uses the kind's default.
	MaxLength int `json:"max_length,omitempty"`
}

// Options holds settings shared by all handlers.
type Options struct {
	// Table resolves platform limits. Nil uses platform.Default().
	Table *platform.Table

	// DefaultPlatform is used when a request names no platform.
	DefaultPlatform string

	// MinChars drops thread posts shorter than this.
	MinChars int

	// MaxChars trims thread posts longer than this. 0 uses the platform's
	// character limit.
	MaxChars int

	// ImageMaxLength bounds image prompts when a request sets no MaxLength.
	ImageMaxLength int
}

// DefaultOptions returns options backed by the built-in platform table.
func DefaultOptions() Options {
	return Options{
		Table:           platform.Default(),
		DefaultPlatform: string(platform.DefaultID),
		MinChars:        1,
		ImageMaxLength:  1000,
	}
}

// Validate checks that options are within range.
func (o Options) Validate() error {
	if o.MinChars < 0 {
		return fmt.Errorf("%w: min chars %d is negative", ErrInvalidOptions, o.MinChars)
	}
	if o.MaxChars < 0 {
		return fmt.Errorf("%w: max chars %d is negative", ErrInvalidOptions, o.MaxChars)
	}
	if o.MaxChars > 0 && o.MinChars > o.MaxChars {
		return fmt.Errorf("%w: min chars %d exceeds max chars %d", ErrInvalidOptions, o.MinChars, o.MaxChars)
	}
	if o.ImageMaxLength < 0 {
		return fmt.Errorf("%w: image max length %d is negative", ErrInvalidOptions, o.ImageMaxLength)
	}
	return nil
}

// Platform resolves the request's platform against the options' table.
// Unknown identifiers resolve to the default platform's limits.
func (o Options) Platform(name string) (platform.ID, platform.Limits) {
	table := o.Table
	if table == nil {
		table = platform.Default()
	}
	if name == "" {
		name = o.DefaultPlatform
	}
	if id, limits, ok := table.Resolve(name); ok {
		return id, limits
	}
	return platform.Normalize(name), table.Lookup(name)
}

// Result is a processed request.
type Result struct {
	// Kind is the content kind that produced the record.
	Kind Kind `json:"kind"`

	// Platform is the resolved destination surface.
	Platform platform.ID `json:"platform"`

	// Record is the kind's structured record, e.g. newsletter.Newsletter.
	Record any `json:"record"`

	// Text is the platform-ready linear form of the record.
	Text string `json:"text"`
}

// Handler parses one content kind.
type Handler interface {
	// Process parses req.Content. It must return a well-formed Result for
	// any input.
	Process(req Request, opts Options) Result

	// Prototype returns a zero record, used for schema generation.
	Prototype() any
}

// HandlerFunc adapts a function and a prototype record to Handler.
type HandlerFunc struct {
	Fn     func(req Request, opts Options) Result
	Record any
}

// Process calls h.Fn.
func (h HandlerFunc) Process(req Request, opts Options) Result {
	return h.Fn(req, opts)
}

// Prototype returns h.Record.
func (h HandlerFunc) Prototype() any {
	return h.Record
}
