package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/warmlead/pitch"
	"github.com/warmlead/pitch/fs"
	"github.com/warmlead/pitch/gemini"
	"github.com/warmlead/pitch/goquery"
	"github.com/warmlead/pitch/htmltomarkdown"
	pitchhttp "github.com/warmlead/pitch/http"
	"github.com/warmlead/pitch/pipeline"
	"github.com/warmlead/pitch/readability"
	pitchrod "github.com/warmlead/pitch/rod"
	pitchslog "github.com/warmlead/pitch/slog"
	"github.com/warmlead/pitch/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Completer overrides the Gemini-backed completer when set.
	// Used by end-to-end tests to avoid real API calls.
	Completer pitch.Completer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pitch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pitch --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Wire the fetch/extract side shared by both commands.
	browser, timeout, extractorName := commandFetchConfig(cli, cmd)

	var fetcher pitch.Fetcher
	if browser {
		f, err := pitchrod.NewFetcher(pitchrod.WithTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = pitchhttp.NewFetcher(pitchhttp.WithTimeout(timeout))
	}
	if cli.Verbose {
		fetcher = pitchslog.NewLoggingFetcher(fetcher, logger)
	}
	deps.Fetcher = fetcher
	defer deps.Fetcher.Close()

	deps.Extractor, err = newExtractor(extractorName)
	if err != nil {
		return err
	}

	if cmd == "extract" {
		cleaner := goquery.NewExtractor()
		deps.Cleaner = cleaner
		deps.Converter = htmltomarkdown.NewConverter()
	}

	if cmd == "generate" {
		completer := m.Completer
		if completer == nil {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			completer = gemini.NewCompleter(client)
		}
		if cli.Verbose {
			completer = pitchslog.NewLoggingCompleter(completer, logger)
		}

		if cli.Generate.Out != "" {
			deps.Writer = fs.NewWriter(cli.Generate.Out)
		}

		deps.Generator = &pipeline.Generator{
			Fetcher:       deps.Fetcher,
			Extractor:     deps.Extractor,
			Completer:     completer,
			Model:         cli.Generate.Model,
			MaxTextLength: cli.Generate.MaxText,
			Params:        pitch.DefaultGenerationParams(),
			Logger:        logger,
		}
	}

	return kongCtx.Run(deps)
}

// commandFetchConfig returns the fetch-related flags of the active command.
func commandFetchConfig(cli *CLI, cmd string) (browser bool, timeout time.Duration, extractor string) {
	if cmd == "extract" {
		return cli.Extract.Browser, cli.Extract.Timeout, cli.Extract.Extractor
	}
	return cli.Generate.Browser, cli.Generate.Timeout, cli.Generate.Extractor
}

// newExtractor selects a content extraction strategy by name.
func newExtractor(name string) (pitch.Extractor, error) {
	switch name {
	case "", "dom":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	}
	return nil, pitch.Errorf(pitch.EINVALID, "unknown extractor %q", name)
}
