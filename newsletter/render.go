package newsletter

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/yuin/goldmark"

	"github.com/randalmurphal/contentkit/parser"
	"github.com/randalmurphal/contentkit/template"
)

// Layout is the email document RenderHTML fills in. It uses inline styles
// and a single centered table so it survives common mail clients.
const Layout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{escape subject}}</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color:#f4f4f4;">
<tr><td align="center" style="padding:20px 10px;">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" border="0" style="max-width:600px;background-color:#ffffff;">
<tr><td style="padding:30px 40px 10px 40px;">
<h1 style="margin:0;font-size:26px;line-height:1.3;color:#222222;">{{escape title}}</h1>
</td></tr>
{{#each sections}}<tr><td style="padding:10px 40px;font-size:16px;line-height:1.6;color:#333333;">
<h2 style="margin:0 0 10px 0;font-size:20px;color:#222222;">{{escape title}}</h2>
{{body}}
</td></tr>
{{/each}}{{#if cta}}<tr><td align="center" style="padding:20px 40px;font-size:16px;line-height:1.6;color:#333333;background-color:#eef4ff;">
{{cta}}
</td></tr>
{{/if}}{{#if footer}}<tr><td style="padding:20px 40px;font-size:12px;line-height:1.5;color:#888888;">
{{footer}}
</td></tr>
{{/if}}</table>
</td></tr>
</table>
</body>
</html>
`

// errorPage is returned when the layout cannot be rendered.
const errorPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Newsletter unavailable</title></head>
<body><p>The newsletter could not be rendered.</p></body>
</html>
`

var engine = template.NewEngine()

// RenderHTML renders a newsletter as a complete HTML email. Section
// bodies, the call to action and the footer go through MarkdownToHTML;
// title, subject and section titles are escaped. It never fails: if
// rendering does, a minimal error page is returned.
func RenderHTML(n Newsletter) string {
	return parser.Recover("newsletter.RenderHTML", func() string {
		out, err := engine.Render(Layout, layoutVars(n))
		if err != nil {
			slog.Warn("newsletter render failed", slog.String("error", err.Error()))
			return errorPage
		}
		return out
	}, func(error) string {
		return errorPage
	})
}

func layoutVars(n Newsletter) map[string]any {
	sections := make([]map[string]any, 0, len(n.Sections))
	for _, s := range n.Sections {
		sections = append(sections, map[string]any{
			"title": s.Title,
			"body":  MarkdownToHTML(s.Content),
		})
	}
	return map[string]any{
		"title":    n.Title,
		"subject":  n.Subject,
		"sections": sections,
		"cta":      MarkdownToHTML(n.CallToAction),
		"footer":   MarkdownToHTML(n.Footer),
	}
}

// Output styles accepted by Render.
const (
	StyleEmail    = "email"
	StyleDocument = "document"
	StyleText     = "text"
)

// ErrUnknownStyle is returned by Render for a style it does not know.
var ErrUnknownStyle = errors.New("unknown newsletter style")

// Render renders n in the named style: the email layout of RenderHTML,
// the CommonMark fragment of RenderDocument, or the plain-text
// alternative of the email. An empty style is the email layout.
func Render(n Newsletter, style string) (string, error) {
	switch style {
	case "", StyleEmail:
		return RenderHTML(n), nil
	case StyleDocument:
		return RenderDocument(n)
	case StyleText:
		return PlainText(RenderHTML(n)), nil
	default:
		return "", fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownStyle, style, StyleEmail, StyleDocument, StyleText)
	}
}

// RenderMarkdown renders newsletter Markdown with a CommonMark renderer
// instead of the fixed substitutions of MarkdownToHTML. Use it for bodies
// with nested lists, code or tables.
func RenderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderDocument renders the newsletter as a plain HTML fragment using
// RenderMarkdown for every body. It is the richer alternative to
// RenderHTML for previews and archives.
func RenderDocument(n Newsletter) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(n.Title))
	for _, s := range n.Sections {
		fmt.Fprintf(&buf, "<h2>%s</h2>\n", html.EscapeString(s.Title))
		body, err := RenderMarkdown(s.Content)
		if err != nil {
			return "", fmt.Errorf("section %q: %w", s.Title, err)
		}
		buf.WriteString(body)
	}
	for _, extra := range []string{n.CallToAction, n.Footer} {
		if extra == "" {
			continue
		}
		body, err := RenderMarkdown(extra)
		if err != nil {
			return "", err
		}
		buf.WriteString(body)
	}
	return buf.String(), nil
}
