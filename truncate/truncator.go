package truncate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Breakpoint identifies the kind of boundary a truncation was cut at.
type Breakpoint int

const (
	// HardCut means no boundary qualified and the text was cut at the target.
	HardCut Breakpoint = iota

	// Word means the text was cut at a space.
	Word

	// Clause means the text was cut before a comma, semicolon or colon.
	Clause

	// SentenceEnd means the text was cut after a sentence terminator.
	SentenceEnd

	// Line means the text was cut at a line break.
	Line

	// Paragraph means the text was cut at a blank line.
	Paragraph
)

// String returns the breakpoint name.
func (b Breakpoint) String() string {
	switch b {
	case HardCut:
		return "hard"
	case Word:
		return "word"
	case Clause:
		return "clause"
	case SentenceEnd:
		return "sentence"
	case Line:
		return "line"
	case Paragraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Default thresholds, as fractions of the target length.
const (
	DefaultLineThreshold     = 0.8
	DefaultSentenceThreshold = 0.7
	DefaultClauseThreshold   = 0.8
)

// DefaultEllipsis is the suffix used by Smart.
const DefaultEllipsis = "..."

// Truncator cuts text at the best breakpoint before a target length.
type Truncator struct {
	lineThreshold     float64
	sentenceThreshold float64
	clauseThreshold   float64
	suffix            string
}

// New creates a truncator with the default thresholds and no suffix.
func New() *Truncator {
	return &Truncator{
		lineThreshold:     DefaultLineThreshold,
		sentenceThreshold: DefaultSentenceThreshold,
		clauseThreshold:   DefaultClauseThreshold,
	}
}

// WithSuffix sets a suffix appended when truncation happens. Room for the
// suffix is reserved inside the target length.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = suffix
	return t
}

// WithThresholds overrides the minimum position, as a fraction of the target,
// for line/paragraph, sentence and clause breakpoints. Values outside [0,1]
// are ignored.
func (t *Truncator) WithThresholds(line, sentence, clause float64) *Truncator {
	if line >= 0 && line <= 1 {
		t.lineThreshold = line
	}
	if sentence >= 0 && sentence <= 1 {
		t.sentenceThreshold = sentence
	}
	if clause >= 0 && clause <= 1 {
		t.clauseThreshold = clause
	}
	return t
}

// Suffix returns the truncator's suffix.
func (t *Truncator) Suffix() string {
	return t.suffix
}

// Truncate shortens text to at most target runes (suffix included).
// Returns the result and whether truncation occurred.
func (t *Truncator) Truncate(text string, target int) (string, bool) {
	if target <= 0 {
		return "", text != ""
	}
	if utf8.RuneCountInString(text) <= target {
		return text, false
	}

	suffixLen := utf8.RuneCountInString(t.suffix)
	if suffixLen >= target {
		// No room for the suffix; cut without it.
		return t.cut(text, target), true
	}

	return t.cut(text, target-suffixLen) + t.suffix, true
}

// cut returns the prefix of text up to the best breakpoint.
func (t *Truncator) cut(text string, target int) string {
	runes := []rune(text)
	if len(runes) <= target {
		return text
	}

	pos, kind := t.breakpoint(runes, target)
	if kind != HardCut {
		result := strings.TrimRightFunc(string(runes[:pos]), unicode.IsSpace)
		if result != "" {
			return result
		}
	}
	return string(runes[:target])
}

// Breakpoint reports where, in runes, text would be cut for target and at
// which kind of boundary. Text that already fits returns its length and
// HardCut.
func (t *Truncator) Breakpoint(text string, target int) (int, Breakpoint) {
	runes := []rune(text)
	if target <= 0 {
		return 0, HardCut
	}
	if len(runes) <= target {
		return len(runes), HardCut
	}
	return t.breakpoint(runes, target)
}
