package imageprompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/contentkit/content"
	"github.com/randalmurphal/contentkit/platform"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ImagePrompt
	}{
		{
			name:    "core fields",
			content: "Subject: a red fox\nStyle: watercolor\nMood: calm",
			want: ImagePrompt{
				Subject:    "a red fox",
				Style:      "watercolor",
				Mood:       "calm",
				FullPrompt: "a red fox, in watercolor style, with calm mood",
			},
		},
		{
			name:    "synonyms and leftover details",
			content: "Main Subject: a castle\nArt Style: oil painting\nAtmosphere: eerie\nColor Palette: deep blues\nFraming: wide shot\nFog rolls over the hills.",
			want: ImagePrompt{
				Subject:     "a castle",
				Style:       "oil painting",
				Mood:        "eerie",
				ColorScheme: "deep blues",
				Composition: "wide shot",
				Details:     "Fog rolls over the hills",
				FullPrompt:  "a castle, in oil painting style, with eerie mood, using deep blues colors, wide shot. Fog rolls over the hills",
			},
		},
		{
			name:    "noun already present",
			content: "Subject: cat\nStyle: pixel art style",
			want:    ImagePrompt{Subject: "cat", Style: "pixel art style", FullPrompt: "cat, in pixel art style"},
		},
		{
			name:    "labeled details",
			content: "Subject: fox\nDetails: snowy forest.",
			want:    ImagePrompt{Subject: "fox", Details: "snowy forest", FullPrompt: "fox. snowy forest"},
		},
		{
			name:    "headings are not details",
			content: "# Image Prompt\n**Subject:** fox\n- Style: ink\nextra detail here",
			want:    ImagePrompt{Subject: "fox", Style: "ink", Details: "extra detail here", FullPrompt: "fox, in ink style. extra detail here"},
		},
		{
			name:    "unstructured",
			content: "A lighthouse at dusk. Waves crash against the rocks.",
			want: ImagePrompt{
				Subject:    "A lighthouse at dusk.",
				FullPrompt: "A lighthouse at dusk. Waves crash against the rocks.",
			},
		},
		{
			name:    "json block",
			content: "```json\n{\"subject\": \"a red fox\", \"style\": \"watercolor\", \"mood\": \"calm.\"}\n```",
			want: ImagePrompt{
				Subject:    "a red fox",
				Style:      "watercolor",
				Mood:       "calm",
				FullPrompt: "a red fox, in watercolor style, with calm mood",
			},
		},
		{
			name:    "yaml block",
			content: "```yaml\nsubject: a lighthouse\ncolorScheme: amber\n```",
			want: ImagePrompt{
				Subject:     "a lighthouse",
				ColorScheme: "amber",
				FullPrompt:  "a lighthouse, using amber colors",
			},
		},
		{
			name:    "unstructured keeps palette",
			content: "A lighthouse at dusk.\nPalette: amber",
			want: ImagePrompt{
				Subject:     "A lighthouse at dusk.",
				ColorScheme: "amber",
				FullPrompt:  "A lighthouse at dusk.\nPalette: amber",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.content))
		})
	}
}

func TestParse_LongFirstSentenceIsNotSubject(t *testing.T) {
	long := strings.Repeat("very ", 30) + "long opening sentence. Short one."

	got := Parse(long)

	assert.Empty(t, got.Subject)
	assert.Equal(t, long, got.FullPrompt)
}

func TestParse_FullPromptNonEmpty(t *testing.T) {
	inputs := []string{"x", "   ", "\n", "Subject:", "Mood: ", "???", "Style: .", "<image_prompt></image_prompt>"}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			got := Parse(in)
			assert.NotEmpty(t, got.FullPrompt, "input %q", in)
		})
	}
	assert.Empty(t, Parse("").FullPrompt)
}

func TestTruncate_Fits(t *testing.T) {
	assert.Equal(t, "short prompt", Truncate("short prompt", 100))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestTruncate_Structured(t *testing.T) {
	prompt := "Subject: a red fox\nStyle: watercolor\nMood: calm\n" + strings.Repeat("The fox rests in deep snow. ", 20)

	got := Truncate(prompt, 200)

	assert.LessOrEqual(t, platform.Count(got), 200)
	assert.True(t, strings.HasPrefix(got, "Subject: a red fox\nStyle: watercolor\nMood: calm\nDetails: The fox rests"), got)
	assert.True(t, strings.HasSuffix(got, "."), "details end on a sentence: %q", got)
}

func TestTruncate_FieldCaps(t *testing.T) {
	prompt := "Subject: " + strings.Repeat("big ", 40) + "\nStyle: x"

	got := Truncate(prompt, 150)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.LessOrEqual(t, platform.Count(strings.TrimPrefix(lines[0], "Subject: ")), SubjectCap)
	assert.Equal(t, "Style: x", lines[1])
}

func TestTruncate_Unstructured(t *testing.T) {
	prompt := "A quiet harbor at dawn. Fishing boats rest on still water. Gulls circle overhead while the town sleeps."

	tests := []struct {
		max  int
		want string
	}{
		{max: 60, want: "A quiet harbor at dawn. Fishing boats rest on still water."},
		{max: 90, want: "A quiet harbor at dawn. Fishing boats rest on still water. Gulls circle overhead while the"},
		{max: 30, want: "A quiet harbor at dawn."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(prompt, tt.max), "max %d", tt.max)
	}
}

func TestTruncate_TinyBudget(t *testing.T) {
	got := Truncate("Supercalifragilistic expialidocious sentence here.", 10)

	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, platform.Count(got), 10)
}

func TestTruncate_Bound(t *testing.T) {
	prompts := []string{
		"Subject: a red fox\nStyle: watercolor\nMood: calm\nDetails: " + strings.Repeat("snow ", 100),
		strings.Repeat("word ", 200),
		strings.Repeat("Sentence one. ", 50),
		strings.Repeat("日本語の文章です。", 40),
	}

	for _, p := range prompts {
		for _, max := range []int{1, 5, 50, 120} {
			got := Truncate(p, max)
			assert.LessOrEqual(t, platform.Count(got), max, "max %d", max)
			assert.NotEmpty(t, got, "max %d", max)
		}
	}
}

func TestHandler(t *testing.T) {
	res, err := content.Process(content.Request{
		Kind:      content.KindImagePrompt,
		Content:   "Subject: a red fox\nStyle: watercolor\nMood: calm",
		MaxLength: 20,
	}, content.DefaultOptions())
	require.NoError(t, err)

	p, ok := res.Record.(ImagePrompt)
	require.True(t, ok)
	assert.Equal(t, "a red fox, in watercolor style, with calm mood", p.FullPrompt)
	assert.LessOrEqual(t, platform.Count(res.Text), 20)
	assert.NotEmpty(t, res.Text)
}
