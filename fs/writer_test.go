package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmlead/pitch"
	"github.com/warmlead/pitch/fs"
)

func TestEmailPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"full url", "https://example.com/about", "example.com.md"},
		{"www stripped", "https://www.example.com", "example.com.md"},
		{"bare domain", "example.com", "example.com.md"},
		{"port ignored", "http://example.com:8080/", "example.com.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.EmailPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmailPath_NoDomain(t *testing.T) {
	t.Parallel()

	_, err := fs.EmailPath("   ")

	require.Error(t, err)
	assert.Equal(t, pitch.EINVALID, pitch.ErrorCode(err))
}

func TestFormatEmail(t *testing.T) {
	t.Parallel()

	email := &pitch.Email{
		Subject: "Automation for Acme.Com",
		Body:    "Hi there",
		Content: "Subject: Automation for Acme.Com\nHi there",
	}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	got := fs.FormatEmail(email, "https://acme.com", now)

	want := `---
source: https://acme.com
subject: Automation for Acme.Com
generated: 2026-08-30
---

Subject: Automation for Acme.Com
Hi there
`
	assert.Equal(t, want, got)
}

func TestWriter_SaveEmail(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	w := fs.NewWriter(dir)
	w.Now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	email := &pitch.Email{
		Subject: "Hello",
		Body:    "Body",
		Content: "Subject: Hello\nBody",
	}

	path, err := w.SaveEmail(context.Background(), "https://www.example.com", email)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example.com.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: https://www.example.com")
	assert.Contains(t, string(data), "Subject: Hello\nBody")
}

func TestWriter_SaveEmail_InvalidURL(t *testing.T) {
	t.Parallel()

	w := fs.NewWriter(t.TempDir())

	_, err := w.SaveEmail(context.Background(), "", &pitch.Email{})

	require.Error(t, err)
	assert.Equal(t, pitch.EINVALID, pitch.ErrorCode(err))
}
