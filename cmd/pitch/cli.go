package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/warmlead/pitch"
	"github.com/warmlead/pitch/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   pitch.Fetcher
	Extractor pitch.Extractor
	Cleaner   pitch.HTMLCleaner
	Converter pitch.Converter
	Generator *pipeline.Generator
	Writer    pitch.EmailWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline stages to stderr"`

	Generate GenerateCmd `cmd:"" help:"Draft an outreach email from a business website"`
	Extract  ExtractCmd  `cmd:"" help:"Fetch a page and print its extracted text"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL       string        `arg:"" help:"Business website URL"`
	Model     string        `default:"gemini-2.5-flash" help:"Completion model identifier"`
	Browser   bool          `short:"b" help:"Fetch with a headless browser (for JavaScript-rendered sites)"`
	Extractor string        `default:"dom" enum:"dom,readability,trafilatura" help:"Content extraction strategy"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout"`
	MaxText   int           `default:"4000" help:"Maximum scraped characters embedded in the prompt"`
	Out       string        `short:"o" placeholder:"DIR" help:"Also save the email as markdown in this directory"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL       string        `arg:"" help:"Page URL"`
	Browser   bool          `short:"b" help:"Fetch with a headless browser"`
	Extractor string        `default:"dom" enum:"dom,readability,trafilatura" help:"Content extraction strategy"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout"`
	Markdown  bool          `short:"m" help:"Print cleaned content as markdown instead of plain text"`
}
