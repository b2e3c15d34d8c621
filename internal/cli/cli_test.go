package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/contentkit/content"
	"github.com/randalmurphal/contentkit/newsletter"
	"github.com/randalmurphal/contentkit/platform"
	"github.com/randalmurphal/contentkit/watch"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "contentkit dev\n", out)
}

func TestParseCmd_JSON(t *testing.T) {
	out, err := run(t, "Which language should we use?\n- Go\n- Rust", "parse", "poll", "--json")
	require.NoError(t, err)

	var res struct {
		Kind     string         `json:"kind"`
		Platform string         `json:"platform"`
		Record   map[string]any `json:"record"`
		Text     string         `json:"text"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, "poll", res.Kind)
	assert.Equal(t, "twitter", res.Platform)
	assert.Equal(t, "Which language should we use?", res.Record["question"])
	assert.Equal(t, []any{"Go", "Rust"}, res.Record["options"])
	assert.Contains(t, res.Text, "- Go")
}

func TestParseCmd_File(t *testing.T) {
	path := writeFile(t, "prompt.txt", "Subject: a red fox\nStyle: watercolor")

	out, err := run(t, "", "parse", "image_prompt", path)

	require.NoError(t, err)
	assert.Equal(t, "a red fox, in watercolor style\n", out)
}

func TestParseCmd_Template(t *testing.T) {
	tmpl := writeFile(t, "poll.tmpl", "{{question}}|{{kind}}|{{platform}}")

	out, err := run(t, "Which language should we use?\n- Go\n- Rust", "parse", "poll", "--template", tmpl, "-p", "li")

	require.NoError(t, err)
	assert.Equal(t, "Which language should we use?|poll|linkedin", out)
}

func TestParseCmd_NewsletterStyles(t *testing.T) {
	issue := "# Weekly Update\n## Intro\nWelcome **back**."

	email, err := run(t, issue, "parse", "newsletter")
	require.NoError(t, err)
	assert.Contains(t, email, "<!DOCTYPE html>")

	doc, err := run(t, issue, "parse", "newsletter", "--style", "document")
	require.NoError(t, err)
	assert.Contains(t, doc, "<h2>Intro</h2>")
	assert.Contains(t, doc, "<strong>back</strong>")
	assert.NotContains(t, doc, "<!DOCTYPE html>")

	text, err := run(t, issue, "parse", "newsletter", "--style", "text")
	require.NoError(t, err)
	assert.Contains(t, text, "Weekly Update")
	assert.Contains(t, text, "Welcome back.")
	assert.NotContains(t, text, "<")
}

func TestParseCmd_StyleErrors(t *testing.T) {
	_, err := run(t, "# Weekly Update\n## Intro\nHi.", "parse", "newsletter", "--style", "pdf")
	assert.ErrorIs(t, err, newsletter.ErrUnknownStyle)

	_, err = run(t, "Pizza or tacos?", "parse", "poll", "--style", "text")
	assert.Error(t, err)
}

func TestParseCmd_UnknownKind(t *testing.T) {
	_, err := run(t, "text", "parse", "limerick")

	require.Error(t, err)
	assert.ErrorIs(t, err, content.ErrUnknownKind)
	assert.Contains(t, err.Error(), "image_prompt")
}

func TestParseCmd_MissingFile(t *testing.T) {
	_, err := run(t, "", "parse", "thread", filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
}

func TestFormatCmd(t *testing.T) {
	long := strings.Repeat("This sentence is part of a long post. ", 20)

	out, err := run(t, long, "format", "--platform", "x")
	require.NoError(t, err)

	text := strings.TrimSuffix(out, "\n")
	assert.LessOrEqual(t, platform.Count(text), 280)
	assert.True(t, strings.HasSuffix(text, "..."), text)
}

func TestFormatCmd_PassThrough(t *testing.T) {
	long := strings.Repeat("word ", 100)

	out, err := run(t, long, "format", "-p", "slack")

	require.NoError(t, err)
	assert.Equal(t, long+"\n", out)
}

func TestComposeCmd(t *testing.T) {
	long := strings.Repeat("Short sentences pack into posts. ", 10)

	out, err := run(t, long, "compose", "--limit", "80")
	require.NoError(t, err)

	posts := strings.Split(strings.TrimSpace(out), "\n\n")
	require.Greater(t, len(posts), 1)
	assert.True(t, strings.HasPrefix(posts[0], "1/"), posts[0])
	for _, p := range posts {
		assert.LessOrEqual(t, platform.Count(p), 80, p)
	}
}

func TestMarkupCmd(t *testing.T) {
	out, err := run(t, "Read https://example.com #golang", "markup")

	require.NoError(t, err)
	assert.Contains(t, out, `<a href="https://example.com"`)
	assert.Contains(t, out, `<span class="hashtag">#golang</span>`)
}

func TestSchemaCmd(t *testing.T) {
	out, err := run(t, "", "schema", "poll")

	require.NoError(t, err)
	assert.Contains(t, out, `"title": "poll"`)
	assert.Contains(t, out, `"options"`)
}

func TestSchemaCmd_UnknownKind(t *testing.T) {
	_, err := run(t, "", "schema", "limerick")

	assert.ErrorIs(t, err, content.ErrUnknownKind)
}

func TestPlatformsCmd(t *testing.T) {
	out, err := run(t, "", "platforms")

	require.NoError(t, err)
	assert.Contains(t, out, "twitter")
	assert.Contains(t, out, "linkedin")
	assert.Contains(t, out, "3000")
}

func TestPlatformsCmd_Config(t *testing.T) {
	cfg := writeFile(t, "contentkit.yaml", `
default_platform: mastodon
platforms:
  mastodon:
    character_limit: 500
    recommended_limit: 400
`)

	out, err := run(t, "", "platforms", "--config", cfg)

	require.NoError(t, err)
	assert.Contains(t, out, "mastodon")
	assert.Contains(t, out, "500")
}

func TestConfig_Invalid(t *testing.T) {
	cfg := writeFile(t, "contentkit.yaml", "unknown_key: 1\n")

	_, err := run(t, "", "platforms", "--config", cfg)

	assert.Error(t, err)
}

func TestLogLevelFlag_Invalid(t *testing.T) {
	_, err := run(t, "", "version", "--log-level", "loud")

	assert.Error(t, err)
}

func TestRunWatch(t *testing.T) {
	old := watch.PollInterval
	watch.PollInterval = 20 * time.Millisecond
	t.Cleanup(func() { watch.PollInterval = old })

	path := writeFile(t, "prompt.txt", "Subject: a red fox")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := runWatch(ctx, cmd, content.KindImagePrompt, path, content.DefaultOptions(), parseFlags{})

	require.NoError(t, err)
	assert.Equal(t, "a red fox\n", out.String())
}

func TestRunWatch_UnknownKind(t *testing.T) {
	path := writeFile(t, "prompt.txt", "text")

	err := runWatch(context.Background(), &cobra.Command{}, "limerick", path, content.DefaultOptions(), parseFlags{})

	assert.ErrorIs(t, err, content.ErrUnknownKind)
}
