package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors end a line of text when rendered
const blockSelectors = "p, div, section, article, header, h1, h2, h3, h4, h5, h6, li, tr, dt, dd, pre, blockquote"

// extractHTML reduces an HTML resume to line-oriented plain text.
// Block elements end a line and list items become "- " bullets.
func extractHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("- ")
	})
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.TrimSpace(body.Text()), nil
}
