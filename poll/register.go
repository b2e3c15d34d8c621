package poll

import (
	"strings"

	"github.com/randalmurphal/contentkit/content"
)

func init() {
	content.Register(content.KindPoll, content.HandlerFunc{Fn: process, Record: Poll{}})
}

func process(req content.Request, opts content.Options) content.Result {
	id, _ := opts.Platform(req.Platform)
	p := Parse(req.Content)
	return content.Result{
		Kind:     content.KindPoll,
		Platform: id,
		Record:   p,
		Text:     p.Text(),
	}
}

// Text renders the poll as plain lines: title, question, then one
// "- option" line per option.
func (p Poll) Text() string {
	var lines []string
	if p.Title != "" {
		lines = append(lines, p.Title)
	}
	if p.Question != "" {
		lines = append(lines, p.Question)
	}
	for _, o := range p.Options {
		lines = append(lines, "- "+o)
	}
	return strings.Join(lines, "\n")
}
