// Package textutil prepares file names and metadata for terminal display.
package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText replaces control characters so user-controlled text cannot
// inject terminal escape sequences when rendered. Invisible formatting runes
// (bidi overrides, zero-width joiners) are shown as ⟪U+XXXX⟫ so a name cannot
// masquerade as another.
func SanitizeTerminalText(text string) string {
	clean := true
	for _, r := range text {
		if needsReplacement(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		case unicode.IsControl(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsReplacement(r rune) bool {
	return unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
}
