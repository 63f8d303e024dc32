// Package readability adapts go-readability as a pitch.Extractor.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/warmlead/pitch"
)

// Ensure Extractor implements pitch.Extractor at compile time.
var _ pitch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// It applies readability's scoring heuristics instead of the DOM extractor's
// fixed selector chain, which can work better on cluttered marketing pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the normalized article text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return pitch.Normalize(article.TextContent), nil
}
