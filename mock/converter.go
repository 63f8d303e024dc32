package mock

import "github.com/warmlead/pitch"

var _ pitch.Converter = (*Converter)(nil)

// Converter is a mock implementation of pitch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
