package pitch

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML content into Markdown.
	// The input should already have boilerplate removed (e.g., by an
	// HTMLCleaner).
	Convert(html string) (string, error)
}

// HTMLCleaner produces the cleaned main-content subtree of a page as HTML,
// suitable for conversion to other formats.
type HTMLCleaner interface {
	CleanHTML(rawHTML string) (string, error)
}
