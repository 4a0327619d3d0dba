package edgar

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`[ \t\x{00a0}]+`)

// NormalizeHTML reduces a filing document to plain text for downstream
// pattern analysis. Script and style content is dropped; block elements
// become line breaks so section headers stay on their own lines.
func NormalizeHTML(body string) string {
	if !strings.Contains(body, "<") {
		return collapseWhitespace(body)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		// Best effort: strip tags with a crude pass rather than fail
		return collapseWhitespace(stripTags(body))
	}

	doc.Find("script, style").Remove()

	// Force block boundaries so Text() does not glue headers to body copy
	doc.Find("p, div, tr, li, h1, h2, h3, h4, h5, h6, br").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return collapseWhitespace(doc.Text())
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripTags(body string) string {
	return tagRe.ReplaceAllString(body, " ")
}

func collapseWhitespace(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
