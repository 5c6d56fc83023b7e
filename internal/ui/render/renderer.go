package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rdrive/internal/textutil"
	"github.com/kk-code-lab/rdrive/internal/ui/view"
)

const (
	borderRune = '─'
	// minNameWidth is kept for names before the detail column is dropped.
	minNameWidth = 8
)

// Renderer draws view layouts on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme

	// Listing scroll position, reset when the path line changes.
	scrollOffset int
	scrollKey    string
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the whole layout and shows it.
func (r *Renderer) Render(layout view.Layout) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if path, ok := layout.Region(view.RegionPath); ok && len(path.Lines) > 0 {
		if key := path.Lines[0].Text; key != r.scrollKey {
			r.scrollKey = key
			r.scrollOffset = 0
		}
	}

	for _, placed := range computeLayout(layout, w, h) {
		if placed.border >= 0 {
			r.drawBorder(placed.border, w)
		}
		switch placed.region.Kind {
		case view.RegionPath:
			r.drawPath(placed)
		case view.RegionListing:
			r.drawListing(placed)
		case view.RegionStatus:
			r.drawStatus(placed)
		}
	}

	r.screen.Show()
}

// ScrollOffset is the index of the first visible listing line.
func (r *Renderer) ScrollOffset() int {
	return r.scrollOffset
}

func (r *Renderer) drawBorder(y, w int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.BorderFg)
	r.fillRow(0, w, y, borderRune, style)
}

func (r *Renderer) drawPath(p placedRegion) {
	if p.content.h <= 0 || len(p.region.Lines) == 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	text := textutil.SanitizeTerminalText(p.region.Lines[0].Text)
	text = textutil.TruncateLeft(text, p.content.w-1)

	r.fillRow(p.content.x, p.content.x+p.content.w, p.content.y, ' ', style)
	r.drawTextLine(p.content.x+1, p.content.y, p.content.w-1, text, style)
}

func (r *Renderer) drawStatus(p placedRegion) {
	if p.content.h <= 0 || len(p.region.Lines) == 0 {
		return
	}
	line := p.region.Lines[0]
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	switch line.Style {
	case view.StyleError:
		style = style.Foreground(r.theme.ErrorFg).Bold(true)
	case view.StyleInfo:
		style = style.Foreground(r.theme.InfoFg)
	case view.StyleHelp:
		style = style.Dim(true)
	}

	text := textutil.Truncate(textutil.SanitizeTerminalText(line.Text), p.content.w)
	r.fillRow(p.content.x, p.content.x+p.content.w, p.content.y, ' ', style)
	r.drawTextLine(p.content.x, p.content.y, p.content.w, text, style)
}

func (r *Renderer) drawListing(p placedRegion) {
	region := p.region
	visible := p.content.h
	if visible <= 0 {
		return
	}

	selected := -1
	if region.Selectable {
		selected = region.Selected
	}
	r.scrollOffset = scrollWindow(r.scrollOffset, selected, len(region.Lines), visible)

	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for row := 0; row < visible; row++ {
		y := p.content.y + row
		idx := r.scrollOffset + row
		if idx >= len(region.Lines) {
			r.fillRow(p.content.x, p.content.x+p.content.w, y, ' ', baseStyle)
			continue
		}
		r.drawListingLine(p.content, y, region.Lines[idx], idx == selected)
	}
}

func (r *Renderer) drawListingLine(area rect, y int, line view.Line, isSelected bool) {
	rowStyle, detailStyle := r.lineStyles(line, isSelected)

	prefix := "   "
	switch line.Style {
	case view.StyleDirectory:
		prefix = " / "
	case view.StyleVolume:
		prefix = " * "
	}

	detail := textutil.SanitizeTerminalText(line.Detail)
	detailWidth := textutil.DisplayWidth(detail)
	prefixWidth := textutil.DisplayWidth(prefix)

	nameWidth := area.w - prefixWidth
	if detail != "" {
		nameWidth -= detailWidth + 2
		if nameWidth < minNameWidth {
			detail = ""
			nameWidth = area.w - prefixWidth
		}
	}
	name := textutil.Truncate(textutil.SanitizeTerminalText(line.Text), nameWidth)

	r.fillRow(area.x, area.x+area.w, y, ' ', rowStyle)
	endX := r.drawTextLine(area.x, y, area.w, prefix+name, rowStyle)
	if detail != "" {
		detailX := area.x + area.w - detailWidth - 1
		if detailX > endX {
			r.drawTextLine(detailX, y, detailWidth, detail, detailStyle)
		}
	}
}

func (r *Renderer) lineStyles(line view.Line, isSelected bool) (tcell.Style, tcell.Style) {
	base := tcell.StyleDefault.Background(r.theme.Background)
	if isSelected {
		sel := tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		return sel, sel
	}

	var row tcell.Style
	switch line.Style {
	case view.StyleDirectory:
		row = base.Foreground(r.theme.DirectoryFg)
	case view.StyleVolume:
		row = base.Foreground(r.theme.VolumeFg)
	case view.StylePlaceholder:
		row = base.Foreground(r.theme.HiddenFg).Italic(true)
	default:
		row = base.Foreground(r.theme.FileFg)
	}
	if line.Hidden {
		row = row.Foreground(r.theme.HiddenFg)
	}
	return row, base.Foreground(r.theme.DetailFg)
}
