package document

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var htmlTag = regexp.MustCompile(`(?i)</?(html|body|div|p|br|ul|ol|li|span|h[1-6]|strong|em|b|i|table|tr|td|a)\b[^>]*>`)

// LooksLikeHTML reports whether s contains common HTML markup, as happens
// when a job description is pasted from a job board.
func LooksLikeHTML(s string) bool {
	return htmlTag.MatchString(s)
}

// HTMLText returns the visible text of an HTML document. Text nodes are
// joined with single spaces so adjacent list items or cells stay separate
// words. Script, style and template content is dropped.
func HTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("could not parse html: %w", err)
	}
	doc.Find("script, style, noscript, template, head").Remove()

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}

			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return strings.Join(parts, " "), nil
}

// StripMarkup returns the text of s when it looks like HTML and s
// unchanged otherwise.
func StripMarkup(s string) string {
	if !LooksLikeHTML(s) {
		return s
	}

	text, err := HTMLText(strings.NewReader(s))
	if err != nil {
		return s
	}

	return text
}
