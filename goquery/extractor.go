// Package goquery provides a CSS-selector based implementation of
// pitch.Extractor built on github.com/PuerkitoBio/goquery. It removes
// non-content and interactive elements in two layers, then serializes the
// text of the best-matching content region.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/warmlead/pitch"
	"golang.org/x/net/html"
)

// DefaultStrategies is the ordered list of CSS selectors tried when locating
// the main content region. The first selector with a match wins; the final
// body entry makes the whole page the fallback region.
func DefaultStrategies() []string {
	return []string{"main", "article", "div[role='main']", "body"}
}

// strippedEverywhere lists elements irrelevant to content regardless of
// where they appear; they are removed before the content region is selected.
const strippedEverywhere = "script, style, link, meta, aside"

// strippedInContent lists structural and interactive elements removed inside
// the selected content region.
const strippedInContent = "nav, footer, header, aside, button, form, iframe, img, figure, figcaption"

// Ensure Extractor implements pitch.Extractor and pitch.HTMLCleaner at
// compile time.
var (
	_ pitch.Extractor   = (*Extractor)(nil)
	_ pitch.HTMLCleaner = (*Extractor)(nil)
)

// Extractor extracts readable text from HTML using layered DOM cleanup.
type Extractor struct {
	strategies []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStrategies overrides the content selection strategy list.
// Selectors are evaluated in order; the first match wins.
func WithStrategies(selectors []string) Option {
	return func(e *Extractor) {
		e.strategies = selectors
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{strategies: DefaultStrategies()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the normalized text of the main
// content region. The result contains no whitespace runs and no
// non-printable characters. An empty result means no usable content; it is
// not an error. Extraction is idempotent: the same HTML always yields the
// same text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	target, err := e.cleanTarget(rawHTML)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, n := range target.Nodes {
		collectText(n, &parts)
	}
	return pitch.Normalize(strings.Join(parts, " ")), nil
}

// CleanHTML returns the selected content region as HTML after both cleanup
// layers, for use by converters (e.g., the markdown export).
func (e *Extractor) CleanHTML(rawHTML string) (string, error) {
	target, err := e.cleanTarget(rawHTML)
	if err != nil {
		return "", err
	}
	return goquery.OuterHtml(target)
}

// cleanTarget parses the HTML, removes non-content elements document-wide,
// selects the content region by strategy order, and removes secondary
// elements inside it. When no strategy matches, the whole document is the
// region.
func (e *Extractor) cleanTarget(rawHTML string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pitch.Errorf(pitch.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(strippedEverywhere).Remove()

	target := doc.Selection
	for _, selector := range e.strategies {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			target = sel
			break
		}
	}

	target.Find(strippedInContent).Remove()
	return target, nil
}

// collectText appends the trimmed text of every text node under n in
// document order.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
