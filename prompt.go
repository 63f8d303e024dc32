package pitch

import (
	"fmt"
	"strings"
)

// DefaultMaxTextLength bounds how much scraped text is embedded in a prompt.
const DefaultMaxTextLength = 4000

// PromptOptions configure prompt construction.
type PromptOptions struct {
	// Model identifies the completion model to use.
	Model string

	// MaxTextLength caps the embedded text in characters.
	// Zero or negative means DefaultMaxTextLength.
	MaxTextLength int

	// Params are the sampling parameters passed through to the Completer.
	Params GenerationParams
}

// PromptRequest is a fully rendered completion request.
type PromptRequest struct {
	TargetURL string
	BodyText  string // scraped text after truncation
	Truncated bool   // whether BodyText was cut to fit the budget
	Model     string
	Params    GenerationParams
	Prompt    string // rendered instruction template
}

// BuildPrompt truncates the extracted text to the configured budget and
// renders the instruction template. It performs no I/O and is deterministic
// given its inputs.
//
// Truncation is a prefix cut by character count; no attempt is made to end
// on a word or sentence boundary. Truncated records whether the cut
// happened, for reporting only.
func BuildPrompt(text, sourceURL string, opts PromptOptions) PromptRequest {
	maxLen := opts.MaxTextLength
	if maxLen <= 0 {
		maxLen = DefaultMaxTextLength
	}

	body := text
	truncated := false
	if runes := []rune(text); len(runes) > maxLen {
		body = string(runes[:maxLen])
		truncated = true
	}

	return PromptRequest{
		TargetURL: sourceURL,
		BodyText:  body,
		Truncated: truncated,
		Model:     opts.Model,
		Params:    opts.Params,
		Prompt:    renderPrompt(body, sourceURL),
	}
}

// renderPrompt embeds the scraped text and source URL into the fixed
// instruction template.
func renderPrompt(body, sourceURL string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You write outreach emails for an automation services consultancy. Below is text scraped from %s:\n\n", sourceURL)
	sb.WriteString("<website-text>\n")
	sb.WriteString(body)
	sb.WriteString("\n</website-text>\n\n")
	sb.WriteString("Using only the text above:\n")
	sb.WriteString("1. Identify the services or products this business offers.\n")
	sb.WriteString("2. Note where automation could plausibly help. Phrase every suggestion as a possibility (\"it looks like\", \"you may be\") and never state an inference as fact.\n")
	sb.WriteString("3. Write one cold-outreach email of roughly 150-200 words that:\n")
	sb.WriteString("   - opens with a concrete observation drawn from the website text\n")
	sb.WriteString("   - raises one hedged automation opportunity\n")
	sb.WriteString("   - introduces our automation services as a possible fit\n")
	sb.WriteString("   - closes with a low-friction call to action, such as a short reply or a 15-minute call\n")
	sb.WriteString("   - keeps a professional tone throughout\n\n")
	sb.WriteString("Do not invent names, internal processes, or any fact that does not appear in the website text. ")
	sb.WriteString("If the business name does not appear in the text, refer to it as \"Your Business\".\n\n")
	sb.WriteString("Respond with the email only. The first line of your response must have exactly this form:\n")
	sb.WriteString("Subject: <generated subject>\n")

	return sb.String()
}
