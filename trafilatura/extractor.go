// Package trafilatura adapts go-trafilatura as a pitch.Extractor.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/warmlead/pitch"
)

// Ensure Extractor implements pitch.Extractor at compile time.
var _ pitch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the normalized main text.
// Trafilatura refuses documents with too little content; that surfaces as an
// error here, and callers should fall back to another extractor if needed.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return pitch.Normalize(result.ContentText), nil
}
