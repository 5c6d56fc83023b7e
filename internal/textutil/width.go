package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks truncated text.
const Ellipsis = "…"

// DisplayWidth reports the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width cells, ending with an ellipsis when cut.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// TruncateLeft keeps the end of text, which for paths is the most useful part.
func TruncateLeft(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	ellipsisWidth := runewidth.StringWidth(Ellipsis)
	if width <= ellipsisWidth {
		return Ellipsis
	}

	runes := []rune(text)
	available := width - ellipsisWidth
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > available {
			break
		}
		used += w
		start--
	}
	return Ellipsis + string(runes[start:])
}
