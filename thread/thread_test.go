package thread

import (
	"fmt"
	"regexp"
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
		want    []string
	}{
		{
			name:    "post markers",
			content: "POST 1/3: Hello world\nPOST 2/3: Second post\nPOST 3/3: Third post",
			want:    []string{"Hello world", "Second post", "Third post"},
		},
		{
			name:    "bold markers with preamble",
			content: "Here you go:\n**POST 1/2:** first\n**POST 2/2:** second",
			want:    []string{"Here you go:", "first", "second"},
		},
		{
			name:    "lowercase markers",
			content: "post 1/2: a\npost 2/2: b",
			want:    []string{"a", "b"},
		},
		{
			name:    "number prefix at start",
			content: "1/3 First\n2/3 Second\n3/3 Third",
			want:    []string{"First", "Second", "Third"},
		},
		{
			name:    "number prefix not at start falls through to paragraphs",
			content: "Intro\n1/3 First",
			want:    []string{"Intro\n1/3 First"},
		},
		{
			name:    "blank lines and separators",
			content: "One\n\nTwo\n---\nThree\n\n\n",
			want:    []string{"One", "Two", "Three"},
		},
		{
			name:    "wrapper tag",
			content: "Sure!\n<thread>\nPOST 1/2: a\nPOST 2/2: b\n</thread>",
			want:    []string{"a", "b"},
		},
		{
			name:    "crlf input",
			content: "POST 1/2: a\r\nPOST 2/2: b\r\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "single paragraph",
			content: "Just one thought.",
			want:    []string{"Just one thought."},
		},
		{
			name:    "empty",
			content: "",
			want:    []string{},
		},
		{
			name:    "whitespace only",
			content: " \n\t\n ",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.content)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Totality(t *testing.T) {
	inputs := []string{
		"",
		"POST",
		"POST 1/:",
		"POST 1/2:",
		"POST 1/2: POST 2/2:",
		"<thread>",
		"</thread>",
		"```",
		"1/2",
		"---\n---\n---",
		strings.Repeat("POST 1/1: x ", 2000),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			for _, p := range Parse(in) {
				assert.NotEmpty(t, p)
				assert.Equal(t, strings.TrimSpace(p), p)
			}
		}, "input %q", in)
	}
}

func TestValidateAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		posts    []string
		minChars int
		maxChars int
		want     []string
	}{
		{
			name:     "drops short posts",
			posts:    []string{"hi", "hello there", "  "},
			minChars: 3,
			maxChars: 280,
			want:     []string{"hello there"},
		},
		{
			name:     "trims at last sentence",
			posts:    []string{"First sentence. Second sentence is long."},
			minChars: 1,
			maxChars: 20,
			want:     []string{"First sentence."},
		},
		{
			name:     "hard cut with ellipsis when no sentence fits",
			posts:    []string{"abcdefghijklmnopqrstuvwxyz"},
			minChars: 1,
			maxChars: 10,
			want:     []string{"abcdefg..."},
		},
		{
			name:     "zero max disables trimming",
			posts:    []string{strings.Repeat("a", 500)},
			minChars: 1,
			maxChars: 0,
			want:     []string{strings.Repeat("a", 500)},
		},
		{
			name:     "counts runes",
			posts:    []string{"héllo"},
			minChars: 5,
			maxChars: 5,
			want:     []string{"héllo"},
		},
		{
			name:  "empty input",
			posts: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAndTrim(tt.posts, tt.minChars, tt.maxChars))
		})
	}
}

func TestPosts(t *testing.T) {
	posts := Posts([]string{" first ", "", "sécond"})

	require.Len(t, posts, 2)
	assert.Equal(t, Post{Index: 1, Body: "first", Length: 5}, posts[0])
	assert.Equal(t, Post{Index: 2, Body: "sécond", Length: 6}, posts[1])

	th := Thread{Posts: posts}
	assert.Equal(t, []string{"first", "sécond"}, th.Bodies())
	assert.Equal(t, "first\n\nsécond", th.Text())
}

var prefixRegex = regexp.MustCompile(`^\d+/\d+ `)

func storySentences(n int) string {
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("This is sentence number %02d in the story.", i+1)
	}
	return strings.Join(sentences, " ")
}

func TestCompose(t *testing.T) {
	text := storySentences(20)

	posts := Compose(text, 100)

	require.Len(t, posts, 10)
	assert.True(t, strings.HasPrefix(posts[0], "1/10 "), posts[0])
	assert.True(t, strings.HasPrefix(posts[9], "10/10 "), posts[9])

	bodies := make([]string, len(posts))
	for i, p := range posts {
		assert.LessOrEqual(t, platform.Count(p), 100, "post %d", i+1)
		bodies[i] = prefixRegex.ReplaceAllString(p, "")
	}
	assert.Equal(t, text, strings.Join(bodies, " "))
}

func TestCompose_FitsInOnePost(t *testing.T) {
	assert.Equal(t, []string{"Short and sweet."}, Compose("  Short and sweet.  ", 280))
}

func TestCompose_LongWord(t *testing.T) {
	posts := Compose(strings.Repeat("a", 250), 100)

	require.Len(t, posts, 3)
	for i, p := range posts {
		assert.LessOrEqual(t, platform.Count(p), 100)
		assert.True(t, strings.HasPrefix(p, fmt.Sprintf("%d/3 ", i+1)), p)
	}
}

func TestCompose_LimitBelowPrefix(t *testing.T) {
	text := storySentences(20)

	for _, limit := range []int{1, 3, 4, 5, 8, 12} {
		posts := Compose(text, limit)

		require.NotEmpty(t, posts, "limit %d", limit)
		for _, p := range posts {
			assert.NotEmpty(t, p, "limit %d", limit)
			assert.LessOrEqual(t, platform.Count(p), limit, "limit %d: %q", limit, p)
		}
	}

	for _, p := range Compose(text, 3) {
		assert.NotRegexp(t, prefixRegex, p)
	}
}

func TestCompose_Empty(t *testing.T) {
	assert.Empty(t, Compose("", 280))
	assert.Empty(t, Compose("   ", 280))
}

func TestComposeFor(t *testing.T) {
	posts := ComposeFor(storySentences(30), "X")

	require.Greater(t, len(posts), 1)
	for _, p := range posts {
		assert.LessOrEqual(t, platform.Count(p), 280)
	}
}

func TestPrefixWidth(t *testing.T) {
	assert.Equal(t, 4, prefixWidth(9))
	assert.Equal(t, 6, prefixWidth(10))
	assert.Equal(t, 8, prefixWidth(100))
}

func TestHandler(t *testing.T) {
	res, err := content.Process(content.Request{
		Kind:     content.KindThread,
		Content:  "POST 1/3: Hello world\nPOST 2/3: Second post\nPOST 3/3: Third post",
		Platform: "twitter",
	}, content.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, content.KindThread, res.Kind)
	assert.Equal(t, platform.Twitter, res.Platform)
	th, ok := res.Record.(Thread)
	require.True(t, ok)
	assert.Equal(t, []string{"Hello world", "Second post", "Third post"}, th.Bodies())
	assert.Equal(t, "Hello world\n\nSecond post\n\nThird post", res.Text)
}

func TestHandler_ComposesLongSingleSegment(t *testing.T) {
	res, err := content.Process(content.Request{
		Kind:     content.KindThread,
		Content:  storySentences(20),
		Platform: "twitter",
	}, content.DefaultOptions())
	require.NoError(t, err)

	th := res.Record.(Thread)
	require.Greater(t, len(th.Posts), 1)
	for _, p := range th.Posts {
		assert.LessOrEqual(t, p.Length, 280)
		assert.Regexp(t, prefixRegex, p.Body)
	}
}

func TestHandler_MinChars(t *testing.T) {
	opts := content.DefaultOptions()
	opts.MinChars = 5

	res, err := content.Process(content.Request{Kind: content.KindThread, Content: "ok\n\nlong enough"}, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"long enough"}, res.Record.(Thread).Bodies())
}
