package content

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/randalmurphal/contentkit/parser"
)

// registry stores registered content handlers.
var (
	registryMu sync.RWMutex
	registry   = make(map[Kind]Handler)
)

// Register adds a handler to the registry.
// Kind packages should call this in their init() function.
// Panics if a handler with the same kind is already registered.
//
// Example:
//
//	func init() {
//	    content.Register(content.KindPoll, content.HandlerFunc{Fn: process, Record: Poll{}})
//	}
func Register(kind Kind, h Handler) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("content kind %q already registered", kind))
	}
	registry[kind] = h
}

// Lookup returns the handler for a kind. Kind names are matched
// case-insensitively and "-" is accepted for "_".
// Returns ErrUnknownKind if the kind is not registered.
func Lookup(kind Kind) (Handler, error) {
	key := normalizeKind(kind)

	registryMu.RLock()
	h, ok := registry[key]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return h, nil
}

// Process parses a request with the handler registered for its kind.
// The only error is ErrUnknownKind; handler faults are recovered into a
// result carrying the trimmed input as text.
func Process(req Request, opts Options) (Result, error) {
	h, err := Lookup(req.Kind)
	if err != nil {
		return Result{}, err
	}

	kind := normalizeKind(req.Kind)
	req.Kind = kind
	id, _ := opts.Platform(req.Platform)

	slog.Debug("processing content",
		slog.String("kind", string(kind)),
		slog.String("platform", string(id)),
		slog.Int("length", len(req.Content)))

	return parser.Recover("content."+string(kind), func() Result {
		return h.Process(req, opts)
	}, func(error) Result {
		text := strings.TrimSpace(req.Content)
		return Result{Kind: kind, Platform: id, Record: text, Text: text}
	}), nil
}

// Available returns the names of all registered kinds.
// The list is sorted alphabetically for consistent ordering.
func Available() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// IsRegistered checks if a kind is registered.
func IsRegistered(kind Kind) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[normalizeKind(kind)]
	return ok
}

// Unregister removes a kind from the registry.
// This is primarily useful for testing.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, normalizeKind(kind))
}

func normalizeKind(kind Kind) Kind {
	s := strings.ToLower(strings.TrimSpace(string(kind)))
	return Kind(strings.ReplaceAll(s, "-", "_"))
}
