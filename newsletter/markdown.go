package newsletter

import (
	"regexp"
	"strings"
)

var (
	mdHeading3 = regexp.MustCompile(`(?m)^[ \t]*###[ \t]+(.+?)[ \t]*$`)
	mdListItem = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+(.+?)[ \t]*$`)
	mdBold     = regexp.MustCompile(`\*\*([^*\n]+)\*\*|__([^_\n]+)__`)
	mdItalic   = regexp.MustCompile(`\*([^*\n]+)\*`)
	mdLink     = regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\s]+)\)`)
	mdBlank    = regexp.MustCompile(`\n[ \t]*\n\s*`)
)

// MarkdownToHTML converts the small Markdown subset newsletters use:
// level-3 headings, "-" and "*" lists, bold, italic, links and blank-line
// paragraphs. Passes run in a fixed order so later ones only see the
// output of earlier ones; list items are converted before emphasis so a
// leading "* " is never read as italic. Anything else is left as text.
func MarkdownToHTML(md string) string {
	s := strings.ReplaceAll(strings.TrimSpace(md), "\r\n", "\n")
	if s == "" {
		return ""
	}

	s = mdHeading3.ReplaceAllString(s, "<h3>$1</h3>")
	s = mdListItem.ReplaceAllString(s, "<li>$1</li>")
	s = mdBold.ReplaceAllString(s, "<strong>$1$2</strong>")
	s = mdItalic.ReplaceAllString(s, "<em>$1</em>")
	s = mdLink.ReplaceAllString(s, `<a href="$2">$1</a>`)
	s = wrapLists(s)
	return wrapParagraphs(s)
}

// wrapLists wraps each run of consecutive <li> lines in a <ul>. A run
// stands in its own block so paragraph wrapping leaves it alone.
func wrapLists(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines)+4)
	inList := false

	for _, line := range lines {
		isItem := strings.HasPrefix(line, "<li>")
		switch {
		case isItem && !inList:
			out = append(out, "", "<ul>")
			inList = true
		case !isItem && inList:
			out = append(out, "</ul>", "")
			inList = false
		}
		out = append(out, line)
	}
	if inList {
		out = append(out, "</ul>")
	}
	return strings.Join(out, "\n")
}

// wrapParagraphs wraps every blank-line separated block in <p>, except
// blocks that already start with a heading or list.
func wrapParagraphs(s string) string {
	var blocks []string
	for _, block := range mdBlank.Split(s, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if strings.HasPrefix(block, "<h") || strings.HasPrefix(block, "<ul") {
			blocks = append(blocks, block)
			continue
		}
		blocks = append(blocks, "<p>"+block+"</p>")
	}
	return strings.Join(blocks, "\n")
}
