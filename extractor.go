package pitch

// Extractor converts raw HTML into normalized human-readable text.
type Extractor interface {
	// Extract strips boilerplate (scripts, navigation, footers, forms)
	// from raw HTML and returns the remaining text, normalized per
	// Normalize. An empty result means the page had no usable content;
	// it is not an error.
	Extract(rawHTML string) (string, error)
}
