package view

import (
	"strings"

	statepkg "github.com/kk-code-lab/rdrive/internal/state"
)

// helpText returns the key hints for the footer.
func helpText(state *statepkg.NavState) string {
	return " " + strings.Join(helpSegments(state), "  ") + " "
}

func helpSegments(state *statepkg.NavState) []string {
	if state.AtRoot() {
		return []string{
			"↑/↓: select drive",
			"↵/→: open",
			"R: rescan drives",
			"q: quit",
		}
	}
	return []string{
		"↑/↓/PgUp/PgDn: select",
		"↵/→: open",
		"←/⌫: up",
		"r: refresh",
		"R: drives",
		"q: quit",
	}
}
