package main

import (
	"fmt"

	"github.com/warmlead/pitch"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	email, err := deps.Generator.Generate(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pitch.ErrorMessage(err))
		return err
	}

	if email.Degraded {
		fmt.Fprintln(deps.Stderr, "warning: model output had no Subject: line; printing it unparsed")
	}
	fmt.Fprintln(deps.Stdout, email.Content)

	if deps.Writer != nil {
		path, err := deps.Writer.SaveEmail(deps.Ctx, c.URL, email)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pitch.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "saved to %s\n", path)
	}
	return nil
}
