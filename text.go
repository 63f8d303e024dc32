package pitch

import (
	"strings"
	"unicode"
)

// Normalize collapses every run of whitespace (spaces, tabs, newlines) into
// a single ASCII space, drops non-printable runes, and trims leading and
// trailing whitespace. Normalize is idempotent.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case unicode.IsPrint(r):
			if pendingSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			pendingSpace = false
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
