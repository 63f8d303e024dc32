// Package rod provides a browser-automation implementation of pitch.Fetcher
// for sites that only render their content with JavaScript.
package rod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/warmlead/pitch"
)

// DefaultFetchTimeout is the default page-load budget per Fetch call.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pitch.Fetcher at compile time.
var _ pitch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each Fetch call, covering navigation and page load.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's user agent.
// Defaults to pitch.DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: pitch.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML. The configured timeout bounds the whole call; hitting it
// surfaces as ETIMEOUT.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", f.wrapErr(url, err)
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", f.wrapErr(url, err)
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if f.userAgent != "" {
		err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent})
		if err != nil {
			return "", f.wrapErr(url, err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", f.wrapErr(url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", f.wrapErr(url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", f.wrapErr(url, err)
	}
	return html, nil
}

// wrapErr maps deadline expiry to ETIMEOUT; other errors pass through.
func (f *Fetcher) wrapErr(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pitch.Errorf(pitch.ETIMEOUT, "fetching %s timed out after %s", url, f.timeout)
	}
	return err
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
