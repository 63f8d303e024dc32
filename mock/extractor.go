package mock

import "github.com/warmlead/pitch"

var _ pitch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pitch.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (string, error)
}

func (e *Extractor) Extract(rawHTML string) (string, error) {
	return e.ExtractFn(rawHTML)
}
