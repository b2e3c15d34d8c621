package truncate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Truncator Tests
// =============================================================================

func TestNew(t *testing.T) {
	tr := New()
	if tr.lineThreshold != DefaultLineThreshold {
		t.Errorf("lineThreshold = %v, want %v", tr.lineThreshold, DefaultLineThreshold)
	}
	if tr.sentenceThreshold != DefaultSentenceThreshold {
		t.Errorf("sentenceThreshold = %v, want %v", tr.sentenceThreshold, DefaultSentenceThreshold)
	}
	if tr.clauseThreshold != DefaultClauseThreshold {
		t.Errorf("clauseThreshold = %v, want %v", tr.clauseThreshold, DefaultClauseThreshold)
	}
	if tr.Suffix() != "" {
		t.Errorf("Suffix() = %q, want empty", tr.Suffix())
	}
}

func TestTruncator_Truncate_NoTruncationNeeded(t *testing.T) {
	tr := New()

	text := "short text"
	result, truncated := tr.Truncate(text, 100)

	if result != text {
		t.Errorf("result = %q, expected %q", result, text)
	}
	if truncated {
		t.Error("expected no truncation")
	}
}

func TestTruncator_Breakpoints(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		target   int
		want     string
		wantKind Breakpoint
	}{
		{
			name:     "paragraph break past threshold",
			text:     strings.Repeat("a", 85) + "\n\n" + strings.Repeat("b", 50),
			target:   100,
			want:     strings.Repeat("a", 85),
			wantKind: Paragraph,
		},
		{
			name:     "line break past threshold",
			text:     strings.Repeat("a", 90) + "\n" + strings.Repeat("b", 50),
			target:   100,
			want:     strings.Repeat("a", 90),
			wantKind: Line,
		},
		{
			name:     "sentence end keeps terminator",
			text:     strings.Repeat("x", 75) + ". " + strings.Repeat("y", 40),
			target:   100,
			want:     strings.Repeat("x", 75) + ".",
			wantKind: SentenceEnd,
		},
		{
			name:     "question mark counts as sentence end",
			text:     strings.Repeat("x", 72) + "? " + strings.Repeat("y", 40),
			target:   100,
			want:     strings.Repeat("x", 72) + "?",
			wantKind: SentenceEnd,
		},
		{
			name:     "clause drops punctuation",
			text:     strings.Repeat("x", 85) + ", " + strings.Repeat("y", 40),
			target:   100,
			want:     strings.Repeat("x", 85),
			wantKind: Clause,
		},
		{
			name:     "clause below threshold falls back to word",
			text:     strings.Repeat("x", 50) + ", " + strings.Repeat("y", 10) + " " + strings.Repeat("z", 60),
			target:   100,
			want:     strings.Repeat("x", 50) + ", " + strings.Repeat("y", 10),
			wantKind: Word,
		},
		{
			name:     "breaks below threshold fall through to hard cut",
			text:     strings.Repeat("a", 40) + "\n\n" + strings.Repeat("b", 100),
			target:   100,
			want:     strings.Repeat("a", 40) + "\n\n" + strings.Repeat("b", 58),
			wantKind: HardCut,
		},
		{
			name:     "no boundary hard cuts",
			text:     strings.Repeat("a", 200),
			target:   100,
			want:     strings.Repeat("a", 100),
			wantKind: HardCut,
		},
		{
			name:     "terminator right at the limit",
			text:     strings.Repeat("x", 99) + ". more text here",
			target:   100,
			want:     strings.Repeat("x", 99) + ".",
			wantKind: SentenceEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()

			got, truncated := tr.Truncate(tt.text, tt.target)
			if !truncated {
				t.Error("expected truncation")
			}
			if got != tt.want {
				t.Errorf("Truncate() = %q, want %q", got, tt.want)
			}

			_, kind := tr.Breakpoint(tt.text, tt.target)
			if kind != tt.wantKind {
				t.Errorf("Breakpoint() kind = %v, want %v", kind, tt.wantKind)
			}
		})
	}
}

func TestTruncator_ParagraphPreferredOverSentence(t *testing.T) {
	text := strings.Repeat("a", 82) + ". b\n\n" + strings.Repeat("c", 100)
	got := Boundary(text, 100)
	assert.Equal(t, strings.Repeat("a", 82)+". b", got)
}

func TestTruncator_WithSuffix(t *testing.T) {
	tr := New().WithSuffix("...")

	text := strings.Repeat("word ", 100)
	result, truncated := tr.Truncate(text, 20)

	assert.True(t, truncated)
	assert.Equal(t, "word word word...", result)
	assert.LessOrEqual(t, utf8.RuneCountInString(result), 20)
}

func TestTruncator_WithSuffix_NoRoom(t *testing.T) {
	tr := New().WithSuffix("... (continued)")

	result, truncated := tr.Truncate(strings.Repeat("a", 50), 5)

	assert.True(t, truncated)
	assert.Equal(t, "aaaaa", result)
}

func TestTruncator_WithThresholds(t *testing.T) {
	text := strings.Repeat("x", 40) + ". " + strings.Repeat("y", 30) + " " + strings.Repeat("z", 100)

	// Default sentence threshold (70%) rejects a terminator at 40%.
	assert.Equal(t, Word, kindOf(New(), text, 100))

	// Lowering it accepts the terminator.
	tr := New().WithThresholds(0.8, 0.3, 0.8)
	got, _ := tr.Truncate(text, 100)
	assert.Equal(t, strings.Repeat("x", 40)+".", got)

	// Out-of-range values are ignored.
	tr = New().WithThresholds(-1, 2, 5)
	assert.Equal(t, DefaultLineThreshold, tr.lineThreshold)
	assert.Equal(t, DefaultSentenceThreshold, tr.sentenceThreshold)
	assert.Equal(t, DefaultClauseThreshold, tr.clauseThreshold)
}

func kindOf(tr *Truncator, text string, target int) Breakpoint {
	_, kind := tr.Breakpoint(text, target)
	return kind
}

func TestTruncator_UTF8(t *testing.T) {
	text := strings.Repeat("é", 150)
	got := Boundary(text, 100)

	if !utf8.ValidString(got) {
		t.Fatal("result is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 100 {
		t.Errorf("rune count = %d, want 100", n)
	}
}

func TestTruncator_ZeroTarget(t *testing.T) {
	got, truncated := New().Truncate("anything", 0)
	assert.Equal(t, "", got)
	assert.True(t, truncated)

	got, truncated = New().Truncate("", 0)
	assert.Equal(t, "", got)
	assert.False(t, truncated)
}

func TestTruncator_Safety(t *testing.T) {
	inputs := []string{
		"a",
		" leading space then words",
		"Hello. World! How are you? Fine, thanks; ok: done",
		"\n\n\n\n\n\n\n\n\n\n",
		"     ",
		strings.Repeat("long-unbroken-token", 20),
		"line one\nline two\nline three\nline four",
		"日本語のテキスト。これは長い文です。",
	}

	for _, input := range inputs {
		for target := 1; target <= 60; target++ {
			got := Boundary(input, target)
			if n := utf8.RuneCountInString(got); n > target {
				t.Errorf("Boundary(%q, %d) length %d exceeds target", input, target, n)
			}
			if got == "" {
				t.Errorf("Boundary(%q, %d) returned empty string", input, target)
			}
		}
	}
}

func TestBreakpoint_String(t *testing.T) {
	tests := []struct {
		kind Breakpoint
		want string
	}{
		{HardCut, "hard"},
		{Word, "word"},
		{Clause, "clause"},
		{SentenceEnd, "sentence"},
		{Line, "line"},
		{Paragraph, "paragraph"},
		{Breakpoint(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
