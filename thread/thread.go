package thread

import (
	"regexp"
	"strings"

	"github.com/randalmurphal/contentkit/parser"
	"github.com/randalmurphal/contentkit/platform"
)

// Post is one post of a thread.
type Post struct {
	// Index is the 1-based position in the thread.
	Index int `json:"index" jsonschema:"minimum=1"`

	// Body is the trimmed, non-empty post text.
	Body string `json:"body" jsonschema:"minLength=1"`

	// Length is the character count of Body.
	Length int `json:"length"`
}

// Thread is the record produced for the thread content kind.
type Thread struct {
	Posts []Post `json:"posts"`
}

var (
	postMarkerRegex   = regexp.MustCompile(`(?i)\**POST[ \t]+\d+[ \t]*/[ \t]*\d+[ \t]*:\**`)
	numberPrefixStart = regexp.MustCompile(`^\d+/\d+\s`)
	numberPrefixRegex = regexp.MustCompile(`(?m)^[ \t]*\d+/\d+[ \t]+`)
	separatorRegex    = regexp.MustCompile(`(?m)\n[ \t]*\n|^[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)
)

var detect = parser.NewChain("thread",
	parser.Strategy[[]string]{Name: "post-markers", Extract: splitPostMarkers},
	parser.Strategy[[]string]{Name: "number-prefix", Extract: splitNumberPrefix},
	parser.Strategy[[]string]{Name: "paragraphs", Extract: splitParagraphs},
)

// Parse splits content into post bodies. It never fails: empty input yields
// an empty list.
func Parse(content string) []string {
	return parser.Recover("thread.Parse", func() []string {
		posts, ok := detect.Run(parser.Clean(content))
		if !ok {
			return []string{}
		}
		return posts
	}, func(error) []string {
		if s := strings.TrimSpace(content); s != "" {
			return []string{s}
		}
		return []string{}
	})
}

func splitPostMarkers(text string) ([]string, bool) {
	if !postMarkerRegex.MatchString(text) {
		return nil, false
	}
	return nonEmpty(postMarkerRegex.Split(text, -1)), true
}

func splitNumberPrefix(text string) ([]string, bool) {
	if !numberPrefixStart.MatchString(text) {
		return nil, false
	}
	return nonEmpty(numberPrefixRegex.Split(text, -1)), true
}

func splitParagraphs(text string) ([]string, bool) {
	posts := nonEmpty(separatorRegex.Split(text, -1))
	return posts, len(posts) > 0
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Posts numbers bodies into Post records. Blank bodies are skipped.
func Posts(bodies []string) []Post {
	posts := make([]Post, 0, len(bodies))
	for _, b := range bodies {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		posts = append(posts, Post{
			Index:  len(posts) + 1,
			Body:   b,
			Length: platform.Count(b),
		})
	}
	return posts
}

// Bodies returns the body of every post.
func (t Thread) Bodies() []string {
	bodies := make([]string, len(t.Posts))
	for i, p := range t.Posts {
		bodies[i] = p.Body
	}
	return bodies
}

// Text joins the posts with blank lines.
func (t Thread) Text() string {
	return strings.Join(t.Bodies(), "\n\n")
}
