package pitch

import "context"

// DefaultUserAgent is the browser identity presented to fetched sites.
// Some business sites serve stripped-down pages to unknown agents, so both
// fetcher implementations default to a mainstream Chrome identity.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the HTML document at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources (e.g., a browser process).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
