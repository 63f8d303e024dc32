// Package fs provides file-based storage for generated emails.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/warmlead/pitch"
)

// EmailPath derives a relative file name for an email from its source URL.
// Example: https://www.example.com/about → example.com.md
func EmailPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pitch.Errorf(pitch.EINVALID, "invalid source URL %q: %v", rawURL, err)
	}

	host := u.Hostname()
	if host == "" {
		host = strings.TrimSpace(rawURL)
	}
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", pitch.Errorf(pitch.EINVALID, "no domain in %q", rawURL)
	}

	return host + ".md", nil
}

// FormatEmail formats an email with YAML frontmatter.
func FormatEmail(email *pitch.Email, sourceURL string, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(sourceURL)
	b.WriteString("\nsubject: ")
	b.WriteString(email.Subject)
	b.WriteString("\ngenerated: ")
	b.WriteString(now.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(email.Content)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements pitch.EmailWriter at compile time.
var _ pitch.EmailWriter = (*Writer)(nil)

// Writer writes emails as markdown files to a directory.
type Writer struct {
	baseDir string

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// SaveEmail writes an email to disk as a markdown file and returns its path.
func (w *Writer) SaveEmail(ctx context.Context, sourceURL string, email *pitch.Email) (string, error) {
	relPath, err := EmailPath(sourceURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content := FormatEmail(email, sourceURL, w.Now())
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
