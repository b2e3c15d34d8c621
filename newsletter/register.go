package newsletter

import "github.com/randalmurphal/contentkit/content"

func init() {
	content.Register(content.KindNewsletter, content.HandlerFunc{Fn: process, Record: Newsletter{}})
}

func process(req content.Request, opts content.Options) content.Result {
	id, _ := opts.Platform(req.Platform)
	n := Parse(req.Content)
	return content.Result{
		Kind:     content.KindNewsletter,
		Platform: id,
		Record:   n,
		Text:     RenderHTML(n),
	}
}
