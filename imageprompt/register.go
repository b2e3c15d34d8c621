package imageprompt

import "github.com/randalmurphal/contentkit/content"

func init() {
	content.Register(content.KindImagePrompt, content.HandlerFunc{Fn: process, Record: ImagePrompt{}})
}

// process parses the prompt and bounds its linear form by the request's
// MaxLength, or the configured image limit when the request sets none.
func process(req content.Request, opts content.Options) content.Result {
	id, _ := opts.Platform(req.Platform)
	p := Parse(req.Content)

	text := p.FullPrompt
	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = opts.ImageMaxLength
	}
	if maxLength > 0 {
		text = Truncate(text, maxLength)
	}

	return content.Result{
		Kind:     content.KindImagePrompt,
		Platform: id,
		Record:   p,
		Text:     text,
	}
}
