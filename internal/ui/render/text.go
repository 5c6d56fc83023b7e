package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine draws text from startX, stopping at maxWidth cells. It returns
// the column after the last cell drawn.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := runewidth.RuneWidth(mainc)
		if w < 1 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillRow paints cells [fromX, toX) of row y.
func (r *Renderer) fillRow(fromX, toX, y int, ru rune, style tcell.Style) {
	for x := fromX; x < toX; x++ {
		r.screen.SetContent(x, y, ru, nil, style)
	}
}
