// Package gemini implements pitch.Completer using Google Gemini.
package gemini

import (
	"context"

	"github.com/warmlead/pitch"
	"google.golang.org/genai"
)

// Ensure Completer implements pitch.Completer at compile time.
var _ pitch.Completer = (*Completer)(nil)

// Completer sends rendered prompts to the Gemini API.
type Completer struct {
	client *genai.Client
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client) *Completer {
	return &Completer{client: client}
}

// Complete sends the rendered prompt to Gemini and returns the raw output.
func (c *Completer) Complete(ctx context.Context, req pitch.PromptRequest) (string, error) {
	if req.Prompt == "" {
		return "", pitch.Errorf(pitch.EINVALID, "prompt required")
	}
	if req.Model == "" {
		return "", pitch.Errorf(pitch.EINVALID, "model required")
	}

	result, err := c.client.Models.GenerateContent(ctx, req.Model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req.Params),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pitch.Errorf(pitch.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig maps generation parameters onto the Gemini request config.
// RepetitionPenalty maps to the API's frequency penalty; zero-valued fields
// are left unset so the backend applies its own defaults.
func BuildConfig(p pitch.GenerationParams) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if p.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(p.MaxTokens)
	}
	if p.Temperature > 0 {
		cfg.Temperature = genai.Ptr(p.Temperature)
	}
	if p.TopP > 0 {
		cfg.TopP = genai.Ptr(p.TopP)
	}
	if p.RepetitionPenalty > 0 {
		cfg.FrequencyPenalty = genai.Ptr(p.RepetitionPenalty)
	}
	return cfg
}
