package thread

import (
	"github.com/randalmurphal/contentkit/content"
	"github.com/randalmurphal/contentkit/platform"
)

func init() {
	content.Register(content.KindThread, content.HandlerFunc{Fn: process, Record: Thread{}})
}

// process parses a thread for the request's platform. A single segment
// over the platform limit is long-form text, so it is composed instead.
func process(req content.Request, opts content.Options) content.Result {
	id, limits := opts.Platform(req.Platform)

	bodies := Parse(req.Content)
	if len(bodies) == 1 && platform.Count(bodies[0]) > limits.CharacterLimit {
		bodies = Compose(bodies[0], limits.CharacterLimit)
	}

	maxChars := opts.MaxChars
	if maxChars <= 0 {
		maxChars = limits.CharacterLimit
	}
	bodies = ValidateAndTrim(bodies, opts.MinChars, maxChars)

	t := Thread{Posts: Posts(bodies)}
	return content.Result{
		Kind:     content.KindThread,
		Platform: id,
		Record:   t,
		Text:     t.Text(),
	}
}
