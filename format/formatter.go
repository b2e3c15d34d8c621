package format

import (
	"strings"

	"github.com/randalmurphal/contentkit/parser"
	"github.com/randalmurphal/contentkit/platform"
	"github.com/randalmurphal/contentkit/truncate"
)

// DefaultReserve is how far under the hard limit truncated content ends,
// before the suffix.
const DefaultReserve = 10

// Continuation suffixes.
const (
	Ellipsis          = truncate.DefaultEllipsis
	ContinuedComments = "... (continued in comments)"
)

// Rule is the transform applied for one platform.
type Rule struct {
	// Suffix is appended to truncated content.
	Suffix string

	// PassThrough disables truncation.
	PassThrough bool
}

var rules = map[platform.ID]Rule{
	platform.Twitter:    {Suffix: Ellipsis},
	platform.Thread:     {Suffix: Ellipsis},
	platform.Short:      {Suffix: Ellipsis},
	platform.Instagram:  {Suffix: Ellipsis},
	platform.Post:       {Suffix: Ellipsis},
	platform.LinkedIn:   {Suffix: ContinuedComments},
	platform.Slack:      {PassThrough: true},
	platform.Newsletter: {PassThrough: true},
}

// Formatter fits content to platforms of a limits table.
type Formatter struct {
	table   *platform.Table
	reserve int
}

// New creates a formatter over table. Nil uses platform.Default().
func New(table *platform.Table) *Formatter {
	if table == nil {
		table = platform.Default()
	}
	return &Formatter{table: table, reserve: DefaultReserve}
}

// WithReserve sets how far under the hard limit truncated content ends.
func (f *Formatter) WithReserve(n int) *Formatter {
	if n >= 0 {
		f.reserve = n
	}
	return f
}

// RuleFor returns the rule for a platform. Platforms known to the table
// but without a built-in rule get an ellipsis. Unknown platforms pass
// through.
func (f *Formatter) RuleFor(name string) (Rule, bool) {
	id, _, ok := f.table.Resolve(name)
	if !ok {
		return Rule{PassThrough: true}, false
	}
	if r, ok := rules[id]; ok {
		return r, true
	}
	return Rule{Suffix: Ellipsis}, true
}

// ForPlatform returns content fitted to the named platform. It never fails.
func (f *Formatter) ForPlatform(content, name string) string {
	return parser.Recover("format.ForPlatform", func() string {
		rule, known := f.RuleFor(name)
		if !known || rule.PassThrough {
			return content
		}
		_, limits, _ := f.table.Resolve(name)
		if platform.Count(content) <= limits.CharacterLimit {
			return content
		}
		limit := limits.CharacterLimit - f.reserve
		if limit <= platform.Count(rule.Suffix) {
			limit = limits.CharacterLimit
		}
		return Fit(content, limit, rule.Suffix)
	}, func(error) string {
		_, limits, ok := f.table.Resolve(name)
		if !ok {
			return content
		}
		return truncate.ToLength(content, limits.CharacterLimit)
	})
}

// Fit cuts content at the best boundary so that, with suffix appended, it
// is at most limit characters. Content that fits is returned unchanged.
func Fit(content string, limit int, suffix string) string {
	if platform.Count(content) <= limit {
		return content
	}
	if limit <= 0 {
		return ""
	}

	target := limit - platform.Count(suffix)
	if target <= 0 {
		return truncate.Boundary(content, limit)
	}

	cut := strings.TrimRight(truncate.Boundary(content, target), " \t\n.,;:")
	if cut == "" {
		cut = string([]rune(content)[:target])
	}
	return cut + suffix
}

var defaultFormatter = New(nil)

// ForPlatform is a convenience function using the built-in platform table.
func ForPlatform(content, name string) string {
	return defaultFormatter.ForPlatform(content, name)
}
