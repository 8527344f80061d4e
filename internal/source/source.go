// Package source holds the plumbing shared by the per-site job board
// adapters: the renderer contract and the HTML extraction helpers the
// scraping heuristics are built on.
package source

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Renderer produces a fully rendered DOM snapshot for a page URL.
// Implemented by the chromedp renderer in production and by fixtures in
// tests.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// PipeText reconstructs the visible text of a selection with a pipe
// between text nodes, the shape ExtractCompany expects from scraped
// listing containers.
func PipeText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "|")
}

func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		if text := strings.TrimSpace(node.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}

// Candidate is one accepted listing container from a generic page scan.
type Candidate struct {
	Title    string
	FullText string
}

// ScanConfig is the per-site policy data for the generic container scan.
// These are heuristics, not mechanics: tune them per site without touching
// the scan itself.
type ScanConfig struct {
	ContainerTags []string
	HeadingTags   []string
	MinTitleLen   int
	Denylist      []string
	Cap           int
}

// DefaultScanConfig returns the scan shape shared by the boards that lack
// stable listing markup: any div/article/li with an h2-h4 heading longer
// than 15 characters that is not navigation boilerplate.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		ContainerTags: []string{"div", "article", "li"},
		HeadingTags:   []string{"h2", "h3", "h4"},
		MinTitleLen:   15,
		Cap:           30,
	}
}

// Scan walks candidate containers and collects listing candidates until
// the cap is reached. The cap is an early-exit guard against unbounded
// DOM scans, not a correctness requirement.
func Scan(doc *goquery.Document, cfg ScanConfig) []Candidate {
	containerSel := strings.Join(cfg.ContainerTags, ", ")
	headingSel := strings.Join(cfg.HeadingTags, ", ")

	var out []Candidate
	doc.Find(containerSel).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		heading := item.Find(headingSel).First()
		if heading.Length() == 0 {
			return true
		}
		title := strings.TrimSpace(heading.Text())
		if utf8.RuneCountInString(title) <= cfg.MinTitleLen {
			return true
		}
		if matchesDenylist(title, cfg.Denylist) {
			return true
		}
		out = append(out, Candidate{
			Title:    title,
			FullText: PipeText(item),
		})
		return cfg.Cap <= 0 || len(out) < cfg.Cap
	})
	return out
}

func matchesDenylist(title string, denylist []string) bool {
	lower := strings.ToLower(title)
	for _, entry := range denylist {
		if entry != "" && strings.Contains(lower, entry) {
			return true
		}
	}
	return false
}
