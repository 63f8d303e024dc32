package mock

import (
	"context"

	"github.com/warmlead/pitch"
)

var _ pitch.Completer = (*Completer)(nil)

// Completer is a mock implementation of pitch.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req pitch.PromptRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req pitch.PromptRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
