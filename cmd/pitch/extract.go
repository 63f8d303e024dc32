package main

import (
	"fmt"

	"github.com/warmlead/pitch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := pitch.ValidateURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pitch.ErrorMessage(err))
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pitch.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		// Markdown export always uses the DOM cleaner; --extractor only
		// shapes plain text output.
		clean, err := deps.Cleaner.CleanHTML(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pitch.ErrorMessage(err))
			return err
		}
		md, err := deps.Converter.Convert(clean)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pitch.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	text, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pitch.ErrorMessage(err))
		return err
	}
	if text == "" {
		fmt.Fprintf(deps.Stderr, "error: no usable content extracted from %s\n", c.URL)
		return pitch.Errorf(pitch.EEMPTY, "no usable content extracted from %s", c.URL)
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
