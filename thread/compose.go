package thread

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/contentkit/parser"
	"github.com/randalmurphal/contentkit/platform"
	"github.com/randalmurphal/contentkit/truncate"
)

// maxComposePasses bounds the re-segmentation loop. The reserved prefix
// width never shrinks between passes, so the loop settles quickly.
const maxComposePasses = 6

// Compose packs long-form text into posts of at most limit characters.
// Sentences are packed greedily; a sentence longer than a post is split at
// word boundaries. When more than one post results, each is prefixed with
// "i/N " where N is the final post count.
func Compose(content string, limit int) []string {
	return parser.Recover("thread.Compose", func() []string {
		return compose(content, limit)
	}, func(error) []string {
		return hardSplit(strings.TrimSpace(content), limit)
	})
}

// ComposeFor composes for the character limit of the named platform.
func ComposeFor(content, platformName string) []string {
	return Compose(content, platform.Lookup(platformName).CharacterLimit)
}

func compose(content string, limit int) []string {
	text := parser.Clean(content)
	if text == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = platform.Lookup(string(platform.DefaultID)).CharacterLimit
	}
	if platform.Count(text) <= limit {
		return []string{text}
	}

	sentences := parser.Sentences(text)

	// Segment, then number. The prefix width depends on the total, so
	// re-segment until the reserved width covers the final total.
	// A limit that leaves no room after the prefix gives unnumbered chunks.
	total := 1
	var segments []string
	for pass := 0; pass < maxComposePasses; pass++ {
		if limit <= prefixWidth(total) {
			return hardSplit(text, limit)
		}
		segments = pack(sentences, limit-prefixWidth(total))
		if digits(len(segments)) <= digits(total) {
			break
		}
		total = max(total, len(segments))
	}

	if len(segments) == 1 {
		return segments
	}
	if digits(len(segments)) > digits(total) {
		return hardSplit(text, limit)
	}

	posts := make([]string, len(segments))
	for i, s := range segments {
		posts[i] = fmt.Sprintf("%d/%d %s", i+1, len(segments), s)
	}
	return posts
}

// pack greedily joins sentences into segments of at most budget runes.
func pack(sentences []string, budget int) []string {
	if budget < 1 {
		budget = 1
	}

	var segments []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			segments = append(segments, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, s := range sentences {
		for _, piece := range splitLong(s, budget) {
			n := platform.Count(piece)
			switch {
			case currentLen == 0:
				current.WriteString(piece)
				currentLen = n
			case currentLen+1+n <= budget:
				current.WriteByte(' ')
				current.WriteString(piece)
				currentLen += 1 + n
			default:
				flush()
				current.WriteString(piece)
				currentLen = n
			}
		}
	}
	flush()

	return segments
}

// splitLong breaks a sentence longer than budget at word boundaries.
func splitLong(sentence string, budget int) []string {
	var pieces []string
	rest := sentence
	for platform.Count(rest) > budget {
		piece := truncate.Words(rest, budget)
		pieces = append(pieces, piece)
		rest = strings.TrimSpace(rest[len(piece):])
	}
	if rest != "" {
		pieces = append(pieces, rest)
	}
	return pieces
}

// hardSplit cuts text into consecutive chunks of limit runes.
func hardSplit(text string, limit int) []string {
	if text == "" {
		return []string{}
	}
	if limit <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	var chunks []string
	for len(runes) > 0 {
		n := min(limit, len(runes))
		if chunk := strings.TrimSpace(string(runes[:n])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		runes = runes[n:]
	}
	return chunks
}

// prefixWidth is the widest "i/N " prefix for a thread of total posts.
func prefixWidth(total int) int {
	return 2*digits(total) + 2
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
