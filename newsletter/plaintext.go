package newsletter

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText converts a rendered newsletter to the text/plain alternative
// of a multipart email. Block elements become line breaks, links keep
// their target in parentheses and the head is skipped. Unparseable input
// comes back with its whitespace normalized.
func PlainText(htmlDoc string) string {
	node, err := html.Parse(strings.NewReader(htmlDoc))
	if err != nil || node == nil {
		return normalizeWhitespace(htmlDoc)
	}

	root := findFirst(node, "body")
	if root == nil {
		root = node
	}
	var b strings.Builder
	collectText(&b, root)
	return normalizeWhitespace(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "head", "script", "style", "title":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "tr":
			b.WriteString("\n")
		case "li":
			b.WriteString("\n- ")
		}
	}

	if n.Type == html.TextNode {
		b.WriteString(strings.NewReplacer("\t", " ", "\r", " ").Replace(n.Data))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol":
			b.WriteString("\n\n")
		case "a":
			if href := attr(n, "href"); href != "" && href != textOf(n) {
				b.WriteString(" (" + href + ")")
			}
		}
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// normalizeWhitespace collapses space runs inside lines and keeps at most
// one blank line between blocks.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
