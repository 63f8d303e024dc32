// Package pipeline orchestrates the pitch drafting stages: fetch, extract,
// prompt construction, completion, and response parsing.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/warmlead/pitch"
)

// Generator runs the pitch pipeline for a single URL.
//
// Each call to Generate is independent and holds no shared mutable state,
// so a Generator is safe for concurrent use as long as its collaborators
// are. There is no caching, retrying, or partial-result continuation: every
// stage either succeeds or aborts the run.
type Generator struct {
	Fetcher   pitch.Fetcher
	Extractor pitch.Extractor
	Completer pitch.Completer

	// Model identifies the completion model.
	Model string

	// MaxTextLength caps the scraped text embedded in the prompt.
	// Zero means pitch.DefaultMaxTextLength.
	MaxTextLength int

	// Params are the sampling parameters for the completion call.
	Params pitch.GenerationParams

	// Logger receives non-fatal diagnostics (truncation, degraded
	// parsing). Nil disables logging.
	Logger *slog.Logger
}

// Generate runs the full pipeline for url and returns the drafted email.
//
// The URL is validated before any network call is made. Fetch and
// completion failures abort the run; an extraction that yields no text
// aborts with EEMPTY rather than prompting the model with nothing. The two
// non-fatal parser conditions (missing subject marker, failed business-name
// substitution) are logged and reflected on the returned Email instead.
func (g *Generator) Generate(ctx context.Context, url string) (*pitch.Email, error) {
	if err := pitch.ValidateURL(url); err != nil {
		return nil, err
	}

	html, err := g.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	text, err := g.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, pitch.Errorf(pitch.EEMPTY, "no usable content extracted from %s", url)
	}

	req := pitch.BuildPrompt(text, url, pitch.PromptOptions{
		Model:         g.Model,
		MaxTextLength: g.MaxTextLength,
		Params:        g.Params,
	})
	if req.Truncated && g.Logger != nil {
		g.Logger.Info("scraped text truncated",
			"url", url,
			"chars", len(req.BodyText),
		)
	}

	raw, err := g.Completer.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	email, diag := pitch.ParsePitch(raw, url)
	if diag != "" && g.Logger != nil {
		g.Logger.Warn("pitch parsing", "url", url, "diagnostic", diag)
	}
	return email, nil
}
