package parser

import (
	"regexp"
	"strings"
	"sync"
)

// Marker represents a detected XML-style marker in content.
// Generators often wrap the requested artifact in a tag, optionally with
// chatter around it:
//
//	Sure! Here is your thread:
//	<thread>
//	POST 1/2: ...
//	</thread>
type Marker struct {
	// Tag is the marker name (e.g., "thread", "newsletter").
	Tag string

	// Value is the content between the opening and closing tags.
	Value string

	// Raw is the full matched text including tags.
	Raw string
}

// MarkerMatcher finds XML-style markers in content.
// It compiles a regex pattern for each registered tag and caches it for
// repeated matching. Tags are searched in registration order.
type MarkerMatcher struct {
	tags     []string
	patterns map[string]*regexp.Regexp
	mu       sync.RWMutex
}

// NewMarkerMatcher creates a matcher for the given tag names.
// Tags should be provided without angle brackets.
//
// Example:
//
//	matcher := NewMarkerMatcher("thread", "poll")
func NewMarkerMatcher(tags ...string) *MarkerMatcher {
	m := &MarkerMatcher{
		tags:     make([]string, 0, len(tags)),
		patterns: make(map[string]*regexp.Regexp, len(tags)),
	}

	for _, tag := range tags {
		m.addTag(tag)
	}

	return m
}

// addTag compiles and caches a regex pattern for the tag.
func (m *MarkerMatcher) addTag(tag string) {
	// Case-insensitive, tolerates attributes on the opening tag, and spans lines.
	quoted := regexp.QuoteMeta(tag)
	pattern := regexp.MustCompile(`(?is)<` + quoted + `(?:\s[^>]*)?>(.*?)</` + quoted + `\s*>`)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.patterns[tag]; exists {
		return
	}
	m.tags = append(m.tags, tag)
	m.patterns[tag] = pattern
}

// AddTag adds a new tag to match. This is safe for concurrent use.
func (m *MarkerMatcher) AddTag(tag string) {
	m.mu.RLock()
	_, exists := m.patterns[tag]
	m.mu.RUnlock()

	if !exists {
		m.addTag(tag)
	}
}

// Tags returns the list of tags this matcher looks for.
func (m *MarkerMatcher) Tags() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.tags))
	copy(result, m.tags)
	return result
}

// FindAll returns all markers found in content, grouped by tag in
// registration order.
func (m *MarkerMatcher) FindAll(content string) []Marker {
	var markers []Marker

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, tag := range m.tags {
		markers = append(markers, findAll(m.patterns[tag], content, tag)...)
	}

	return markers
}

// FindFirst returns the first marker found for the given tag.
// Returns false if no marker is found.
func (m *MarkerMatcher) FindFirst(content, tag string) (Marker, bool) {
	m.mu.RLock()
	pattern, ok := m.patterns[tag]
	m.mu.RUnlock()

	if !ok {
		return Marker{}, false
	}

	match := pattern.FindStringSubmatch(content)
	if len(match) < 2 {
		return Marker{}, false
	}

	return Marker{
		Tag:   tag,
		Value: strings.TrimSpace(match[1]),
		Raw:   match[0],
	}, true
}

// Contains checks if any marker with the given tag exists in content.
func (m *MarkerMatcher) Contains(content, tag string) bool {
	m.mu.RLock()
	pattern, ok := m.patterns[tag]
	m.mu.RUnlock()

	if !ok {
		return false
	}

	return pattern.MatchString(content)
}

// ContainsAny checks if any of the registered markers exist in content.
func (m *MarkerMatcher) ContainsAny(content string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, tag := range m.tags {
		if m.patterns[tag].MatchString(content) {
			return true
		}
	}

	return false
}

// First returns the first non-empty marker of any registered tag, trying
// tags in registration order.
func (m *MarkerMatcher) First(content string) (Marker, bool) {
	for _, tag := range m.Tags() {
		if marker, ok := m.FindFirst(content, tag); ok && marker.Value != "" {
			return marker, true
		}
	}
	return Marker{}, false
}

func findAll(pattern *regexp.Regexp, content, tag string) []Marker {
	var markers []Marker
	for _, match := range pattern.FindAllStringSubmatch(content, -1) {
		if len(match) >= 2 {
			markers = append(markers, Marker{
				Tag:   tag,
				Value: strings.TrimSpace(match[1]),
				Raw:   match[0],
			})
		}
	}
	return markers
}

// WrapperMarkers matches the tags generators wrap whole artifacts in.
var WrapperMarkers = NewMarkerMatcher(
	"thread",
	"newsletter",
	"poll",
	"image_prompt",
	"output",
	"response",
	"answer",
)

// Unwrap returns the inside of the first wrapper tag in content.
// Returns false if content carries no non-empty wrapper.
func Unwrap(content string) (string, bool) {
	marker, ok := WrapperMarkers.First(content)
	if !ok {
		return content, false
	}
	return marker.Value, true
}
