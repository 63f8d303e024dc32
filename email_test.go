package pitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmlead/pitch"
)

func TestParsePitch(t *testing.T) {
	t.Parallel()

	t.Run("discards preamble before the subject marker", func(t *testing.T) {
		t.Parallel()

		email, diag := pitch.ParsePitch("Some preamble.\nSubject: Hello\nBody text", "https://example.com")

		assert.Empty(t, diag)
		assert.False(t, email.Degraded)
		assert.Equal(t, "Subject: Hello\nBody text", email.Content)
		assert.Equal(t, "Hello", email.Subject)
		assert.Equal(t, "Body text", email.Body)
	})

	t.Run("finds the marker case-insensitively", func(t *testing.T) {
		t.Parallel()

		email, _ := pitch.ParsePitch("Here you go:\nSUBJECT: Quick question\n\nHi there", "https://example.com")

		assert.False(t, email.Degraded)
		assert.Equal(t, "Quick question", email.Subject)
		assert.Equal(t, "Hi there", email.Body)
	})

	t.Run("marker with a multi-byte case fold parses cleanly", func(t *testing.T) {
		t.Parallel()

		// U+017F folds to "s", so the matched marker is one byte longer
		// than "Subject:".
		email, _ := pitch.ParsePitch("ſubject: Hello\nBody text", "https://example.com")

		assert.False(t, email.Degraded)
		assert.Equal(t, "Hello", email.Subject)
		assert.Equal(t, "Body text", email.Body)
	})

	t.Run("missing marker returns raw output flagged degraded", func(t *testing.T) {
		t.Parallel()

		email, diag := pitch.ParsePitch("No marker here at all", "https://example.com")

		assert.True(t, email.Degraded)
		assert.Equal(t, "No marker here at all", email.Content)
		assert.Equal(t, "No marker here at all", email.Body)
		assert.Empty(t, email.Subject)
		assert.NotEmpty(t, diag)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		email, _ := pitch.ParsePitch("\n\n  Subject: Hi\nBody\n\n", "https://example.com")

		assert.Equal(t, "Subject: Hi\nBody", email.Content)
	})

	t.Run("substitutes the business-name placeholder in the first line", func(t *testing.T) {
		t.Parallel()

		raw := "Subject: Automation at Your Business\nHi,\nwe noticed..."
		email, diag := pitch.ParsePitch(raw, "https://www.my-shop.co.uk")

		assert.Empty(t, diag)
		assert.Equal(t, "Automation at My-Shop.Co.Uk", email.Subject)
		assert.Equal(t, "Subject: Automation at My-Shop.Co.Uk\nHi,\nwe noticed...", email.Content)
	})

	t.Run("does not substitute beyond the first line", func(t *testing.T) {
		t.Parallel()

		raw := "Subject: Quick question\nWe love what you do at Your Business."
		email, diag := pitch.ParsePitch(raw, "https://example.com")

		assert.Empty(t, diag)
		assert.Contains(t, email.Body, "at Your Business")
	})

	t.Run("failed substitution keeps content and reports a diagnostic", func(t *testing.T) {
		t.Parallel()

		raw := "Subject: Automation at Your Business\nHi"
		email, diag := pitch.ParsePitch(raw, "   ")

		assert.NotEmpty(t, diag)
		assert.Equal(t, "Automation at Your Business", email.Subject)
		assert.False(t, email.Degraded)
	})

	t.Run("marker-only output yields empty body", func(t *testing.T) {
		t.Parallel()

		email, _ := pitch.ParsePitch("Subject: Hello", "https://example.com")

		assert.Equal(t, "Hello", email.Subject)
		assert.Empty(t, email.Body)
	})
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	t.Run("title-cases labels and preserves hyphens", func(t *testing.T) {
		t.Parallel()

		name, err := pitch.DisplayName("https://www.my-shop.co.uk")
		require.NoError(t, err)
		assert.Equal(t, "My-Shop.Co.Uk", name)
	})

	t.Run("accepts a bare domain", func(t *testing.T) {
		t.Parallel()

		name, err := pitch.DisplayName("www.my-shop.co.uk")
		require.NoError(t, err)
		assert.Equal(t, "My-Shop.Co.Uk", name)
	})

	t.Run("strips only a leading www label", func(t *testing.T) {
		t.Parallel()

		name, err := pitch.DisplayName("https://shop.example.com")
		require.NoError(t, err)
		assert.Equal(t, "Shop.Example.Com", name)
	})

	t.Run("lowercases the rest of each word", func(t *testing.T) {
		t.Parallel()

		name, err := pitch.DisplayName("https://ACME.COM")
		require.NoError(t, err)
		assert.Equal(t, "Acme.Com", name)
	})

	t.Run("ignores port and path", func(t *testing.T) {
		t.Parallel()

		name, err := pitch.DisplayName("http://example.com:8080/about")
		require.NoError(t, err)
		assert.Equal(t, "Example.Com", name)
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		_, err := pitch.DisplayName("   ")
		require.Error(t, err)
		assert.Equal(t, pitch.EINVALID, pitch.ErrorCode(err))
	})
}
