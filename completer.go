package pitch

import "context"

// GenerationParams control language model sampling.
type GenerationParams struct {
	MaxTokens         int
	Temperature       float32
	TopP              float32
	RepetitionPenalty float32
}

// DefaultGenerationParams returns the sampling parameters used for pitch
// drafting.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		MaxTokens:         800,
		Temperature:       0.7,
		TopP:              0.9,
		RepetitionPenalty: 1.1,
	}
}

// Completer generates text completions from rendered prompts.
type Completer interface {
	// Complete sends the prompt to a language model and returns the raw
	// generated text. The request's model and sampling parameters select
	// and configure the backend model.
	Complete(ctx context.Context, req PromptRequest) (string, error)
}
