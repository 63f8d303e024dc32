package pitch

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// subjectMarker is the token the instruction template requires at the start
// of the model's output.
const subjectMarker = "Subject:"

// namePlaceholder is the business-name stand-in the instruction template
// tells the model to use when the name is unknown.
const namePlaceholder = "at Your Business"

var subjectMarkerRe = regexp.MustCompile(`(?i)subject:`)

// Email is the final pitch artifact.
type Email struct {
	// Subject is the parsed subject line. Empty when Degraded.
	Subject string

	// Body is everything after the subject line, or the whole trimmed
	// output when Degraded.
	Body string

	// Content is the full text starting at the subject marker, or the
	// raw trimmed output when no marker was found. This is what callers
	// should display.
	Content string

	// Degraded reports that no subject marker was found and Content is
	// the unparsed model output.
	Degraded bool
}

// EmailWriter persists generated emails.
type EmailWriter interface {
	// SaveEmail writes the email to storage, keyed by the source URL.
	// It returns the path or identifier of the saved artifact.
	SaveEmail(ctx context.Context, sourceURL string, email *Email) (string, error)
}

// ParsePitch locates the subject marker in raw model output and assembles an
// Email. The search is case-insensitive and scans the whole output, not just
// the first line, so preamble before the marker is discarded.
//
// A missing marker is not an error: the whole trimmed output is returned
// with Degraded set. The second return value is a diagnostic for the two
// non-fatal conditions (missing marker, failed business-name substitution);
// it is empty when parsing was clean. ParsePitch never fails.
func ParsePitch(rawOutput, sourceURL string) (*Email, string) {
	content := strings.TrimSpace(rawOutput)

	loc := subjectMarkerRe.FindStringIndex(content)
	if loc == nil {
		email := &Email{
			Body:     content,
			Content:  content,
			Degraded: true,
		}
		return email, "no Subject: line found; returning unparsed output"
	}
	// Case folding can make the matched marker longer than the constant
	// (e.g. a folded long s), so slice by the match bounds.
	markerLen := loc[1] - loc[0]
	content = strings.TrimSpace(content[loc[0]:])

	content, diag := substituteBusinessName(content, sourceURL)

	subjectLine, body, _ := strings.Cut(content, "\n")
	subject := strings.TrimSpace(subjectLine[markerLen:])

	return &Email{
		Subject: subject,
		Body:    strings.TrimSpace(body),
		Content: content,
	}, diag
}

// substituteBusinessName replaces the "at Your Business" placeholder in the
// first line of content with a display name derived from the source URL.
// Best-effort: on any failure the content is returned unmodified along with
// a diagnostic, never an error.
func substituteBusinessName(content, sourceURL string) (string, string) {
	first, rest, found := strings.Cut(content, "\n")
	if !strings.Contains(first, namePlaceholder) {
		return content, ""
	}

	name, err := DisplayName(sourceURL)
	if err != nil {
		return content, fmt.Sprintf("keeping business-name placeholder: %v", err)
	}

	first = strings.Replace(first, namePlaceholder, "at "+name, 1)
	if found {
		return first + "\n" + rest, ""
	}
	return first, ""
}

// DisplayName derives a presentable business name from a URL's domain.
// "www.my-shop.co.uk" becomes "My-Shop.Co.Uk": the leading www label is
// dropped and each remaining dot-separated label is title-cased, treating
// hyphens as word boundaries for capitalization while preserving them.
//
// rawURL may be a full URL or a bare domain.
func DisplayName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid source URL %q: %v", rawURL, err)
	}

	host := u.Hostname()
	if host == "" {
		// Bare domains parse as a path, not a host.
		host = strings.TrimSpace(rawURL)
	}
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", Errorf(EINVALID, "no domain in %q", rawURL)
	}

	labels := strings.Split(host, ".")
	for i, label := range labels {
		labels[i] = titleCaseLabel(label)
	}
	return strings.Join(labels, "."), nil
}

// titleCaseLabel capitalizes the first letter of each hyphen-separated word
// and lowercases the rest, keeping the hyphens in place.
func titleCaseLabel(label string) string {
	words := strings.Split(label, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, "-")
}
