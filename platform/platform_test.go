package platform

import (
	"errors"
	"testing"
)

func TestLookup_BuiltinPlatforms(t *testing.T) {
	tests := []struct {
		name        string
		platform    string
		limit       int
		recommended int
	}{
		{name: "twitter", platform: "twitter", limit: 280, recommended: 250},
		{name: "linkedin", platform: "linkedin", limit: 3000, recommended: 1300},
		{name: "instagram", platform: "instagram", limit: 2200, recommended: 1500},
		{name: "slack", platform: "slack", limit: 40000, recommended: 4000},
		{name: "short", platform: "short", limit: 280, recommended: 200},
		{name: "thread", platform: "thread", limit: 280, recommended: 250},
		{name: "post", platform: "post", limit: 3000, recommended: 1500},
		{name: "newsletter", platform: "newsletter", limit: 100000, recommended: 50000},
		{name: "mixed case", platform: "LinkedIn", limit: 3000, recommended: 1300},
		{name: "padded", platform: "  TWITTER ", limit: 280, recommended: 250},
		{name: "alias x", platform: "X", limit: 280, recommended: 250},
		{name: "alias ig", platform: "ig", limit: 2200, recommended: 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lookup(tt.platform)
			if got.CharacterLimit != tt.limit {
				t.Errorf("CharacterLimit = %d, want %d", got.CharacterLimit, tt.limit)
			}
			if got.RecommendedLimit != tt.recommended {
				t.Errorf("RecommendedLimit = %d, want %d", got.RecommendedLimit, tt.recommended)
			}
		})
	}
}

func TestLookup_UnknownFallsBackToDefault(t *testing.T) {
	for _, name := range []string{"", "myspace", "???"} {
		got := Lookup(name)
		want := builtinLimits[DefaultID]
		if got != want {
			t.Errorf("Lookup(%q) = %+v, want %+v", name, got, want)
		}
	}
}

func TestBuiltinLimits_RecommendedWithinLimit(t *testing.T) {
	for id, l := range builtinLimits {
		if err := l.Validate(); err != nil {
			t.Errorf("%s: %v", id, err)
		}
	}
}

func TestResolve(t *testing.T) {
	id, l, ok := Resolve("Tweet")
	if !ok {
		t.Fatal("expected alias to resolve")
	}
	if id != Twitter {
		t.Errorf("id = %q, want %q", id, Twitter)
	}
	if l.CharacterLimit != 280 {
		t.Errorf("CharacterLimit = %d, want 280", l.CharacterLimit)
	}

	if _, _, ok := Resolve("friendster"); ok {
		t.Error("expected unknown platform not to resolve")
	}
}

func TestNewTable_Overrides(t *testing.T) {
	table, err := NewTable(map[string]Limits{
		"Mastodon": {CharacterLimit: 500, RecommendedLimit: 400},
		"twitter":  {CharacterLimit: 4000, RecommendedLimit: 280},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := table.Lookup("mastodon").CharacterLimit; got != 500 {
		t.Errorf("mastodon limit = %d, want 500", got)
	}
	if got := table.Lookup("twitter").CharacterLimit; got != 4000 {
		t.Errorf("overridden twitter limit = %d, want 4000", got)
	}

	// The built-in table must not see the override.
	if got := Lookup("twitter").CharacterLimit; got != 280 {
		t.Errorf("built-in twitter limit = %d, want 280", got)
	}
	if Default().Has("mastodon") {
		t.Error("built-in table should not contain mastodon")
	}
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]Limits
		wantErr   error
	}{
		{
			name:      "recommended above limit",
			overrides: map[string]Limits{"bad": {CharacterLimit: 100, RecommendedLimit: 200}},
			wantErr:   ErrInvalidLimits,
		},
		{
			name:      "zero limit",
			overrides: map[string]Limits{"bad": {CharacterLimit: 0, RecommendedLimit: 0}},
			wantErr:   ErrInvalidLimits,
		},
		{
			name:      "blank id",
			overrides: map[string]Limits{"  ": {CharacterLimit: 10, RecommendedLimit: 5}},
			wantErr:   ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.overrides)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTable_Platforms_Sorted(t *testing.T) {
	ids := Default().Platforms()
	if len(ids) != len(builtinLimits) {
		t.Fatalf("got %d platforms, want %d", len(ids), len(builtinLimits))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("platforms not sorted: %q before %q", ids[i-1], ids[i])
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "hello", want: 5},
		{text: "héllo", want: 5},
		{text: "日本語", want: 3},
	}

	for _, tt := range tests {
		if got := Count(tt.text); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestFits(t *testing.T) {
	short := "fits easily"
	if !Fits(short, "twitter") {
		t.Error("expected short text to fit twitter")
	}

	long := make([]rune, 281)
	for i := range long {
		long[i] = 'a'
	}
	if Fits(string(long), "twitter") {
		t.Error("expected 281 characters not to fit twitter")
	}
	if !Fits(string(long), "linkedin") {
		t.Error("expected 281 characters to fit linkedin")
	}
}
