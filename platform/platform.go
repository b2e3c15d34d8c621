package platform

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// ID identifies a publishing surface.
type ID string

// Built-in platform identifiers.
const (
	Twitter    ID = "twitter"
	LinkedIn   ID = "linkedin"
	Instagram  ID = "instagram"
	Slack      ID = "slack"
	Short      ID = "short"
	Thread     ID = "thread"
	Post       ID = "post"
	Newsletter ID = "newsletter"
)

// DefaultID is the platform unknown identifiers resolve to.
const DefaultID = Twitter

// Limits is the character budget of a platform.
type Limits struct {
	// CharacterLimit is the hard cap enforced by the platform.
	CharacterLimit int `json:"characterLimit" yaml:"character_limit" toml:"character_limit"`

	// RecommendedLimit is the length that reads best. Never above CharacterLimit.
	RecommendedLimit int `json:"recommendedLimit" yaml:"recommended_limit" toml:"recommended_limit"`
}

// Validate checks that both limits are positive and ordered.
func (l Limits) Validate() error {
	if l.CharacterLimit <= 0 || l.RecommendedLimit <= 0 {
		return fmt.Errorf("%w: limits must be positive (got %d/%d)", ErrInvalidLimits, l.CharacterLimit, l.RecommendedLimit)
	}
	if l.RecommendedLimit > l.CharacterLimit {
		return fmt.Errorf("%w: recommended %d exceeds character limit %d", ErrInvalidLimits, l.RecommendedLimit, l.CharacterLimit)
	}
	return nil
}

// builtinLimits contains the limits of every known platform.
var builtinLimits = map[ID]Limits{
	Twitter:    {CharacterLimit: 280, RecommendedLimit: 250},
	LinkedIn:   {CharacterLimit: 3000, RecommendedLimit: 1300},
	Instagram:  {CharacterLimit: 2200, RecommendedLimit: 1500},
	Slack:      {CharacterLimit: 40000, RecommendedLimit: 4000},
	Short:      {CharacterLimit: 280, RecommendedLimit: 200},
	Thread:     {CharacterLimit: 280, RecommendedLimit: 250},
	Post:       {CharacterLimit: 3000, RecommendedLimit: 1500},
	Newsletter: {CharacterLimit: 100000, RecommendedLimit: 50000},
}

// aliases maps alternate spellings to a built-in identifier.
var aliases = map[string]ID{
	"x":            Twitter,
	"tweet":        Twitter,
	"microblog":    Twitter,
	"li":           LinkedIn,
	"ig":           Instagram,
	"insta":        Instagram,
	"short-form":   Short,
	"long-form":    Post,
	"email":        Newsletter,
	"twitter-post": Twitter,
}

var folder = cases.Fold()

// Normalize folds an identifier to its canonical form. Aliases resolve to
// their built-in identifier; anything else is returned folded and trimmed.
func Normalize(name string) ID {
	key := strings.TrimSpace(folder.String(name))
	if id, ok := aliases[key]; ok {
		return id
	}
	return ID(key)
}

// Table maps platform identifiers to limits. A Table is never modified after
// construction, so it is safe for concurrent use.
type Table struct {
	limits map[ID]Limits
}

// NewTable builds a table from the built-in limits plus overrides. Override
// keys are normalized like lookups. The built-in table is not affected.
func NewTable(overrides map[string]Limits) (*Table, error) {
	limits := make(map[ID]Limits, len(builtinLimits)+len(overrides))
	for id, l := range builtinLimits {
		limits[id] = l
	}

	for name, l := range overrides {
		id := Normalize(name)
		if id == "" {
			return nil, ErrEmptyID
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("platform %q: %w", name, err)
		}
		limits[id] = l
	}

	return &Table{limits: limits}, nil
}

var defaultTable = &Table{limits: builtinLimits}

// Default returns the built-in table.
func Default() *Table {
	return defaultTable
}

// Resolve returns the canonical identifier and limits for name.
// Returns false if the platform is not in the table.
func (t *Table) Resolve(name string) (ID, Limits, bool) {
	id := Normalize(name)
	l, ok := t.limits[id]
	return id, l, ok
}

// Lookup returns the limits for name. Unknown platforms get the DefaultID
// limits and a warning is logged.
func (t *Table) Lookup(name string) Limits {
	if _, l, ok := t.Resolve(name); ok {
		return l
	}
	slog.Warn("unknown platform, using default limits",
		slog.String("platform", name),
		slog.String("default", string(DefaultID)))
	return t.limits[DefaultID]
}

// Has checks if the table knows the platform.
func (t *Table) Has(name string) bool {
	_, _, ok := t.Resolve(name)
	return ok
}

// Platforms returns every identifier in the table, sorted.
func (t *Table) Platforms() []ID {
	ids := make([]ID, 0, len(t.limits))
	for id := range t.limits {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Lookup is a convenience function using the built-in table.
func Lookup(name string) Limits {
	return defaultTable.Lookup(name)
}

// Resolve is a convenience function using the built-in table.
func Resolve(name string) (ID, Limits, bool) {
	return defaultTable.Resolve(name)
}
