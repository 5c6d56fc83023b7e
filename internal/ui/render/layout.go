package render

import "github.com/kk-code-lab/rdrive/internal/ui/view"

// rect is a screen area in cells.
type rect struct {
	x, y, w, h int
}

// placedRegion is a region with its content area and optional border row.
type placedRegion struct {
	region  view.Region
	content rect
	border  int // screen row of the border, or -1
}

// computeLayout stacks regions top to bottom. Fixed height regions keep
// their height; zero height regions share what is left, the first one taking
// the remainder. Anything below the screen is clipped.
func computeLayout(layout view.Layout, w, h int) []placedRegion {
	if w <= 0 || h <= 0 {
		return nil
	}

	fill := 0
	for _, region := range layout.Regions {
		if region.Height == 0 {
			fill++
		}
	}
	spare := h - layout.FixedHeight()
	if spare < 0 {
		spare = 0
	}

	placed := make([]placedRegion, 0, len(layout.Regions))
	y := 0
	for i, region := range layout.Regions {
		height := region.Height
		if height == 0 && fill > 0 {
			height = spare / fill
			if i == firstFill(layout) {
				height += spare % fill
			}
		}

		p := placedRegion{region: region, border: -1}
		if region.Border == view.BorderTop {
			p.border = y
			y++
		}
		p.content = rect{x: 0, y: y, w: w, h: height}
		y += height
		if region.Border == view.BorderBottom {
			p.border = y
			y++
		}
		placed = append(placed, p)
	}

	for i := range placed {
		clip(&placed[i], h)
	}
	return placed
}

func firstFill(layout view.Layout) int {
	for i, region := range layout.Regions {
		if region.Height == 0 {
			return i
		}
	}
	return -1
}

// clip trims a placed region to the screen height.
func clip(p *placedRegion, h int) {
	if p.border >= h {
		p.border = -1
	}
	if p.content.y >= h {
		p.content.h = 0
		return
	}
	if p.content.y+p.content.h > h {
		p.content.h = h - p.content.y
	}
}

// scrollWindow returns the first visible line so that selected stays within
// a window of visible lines starting near offset.
func scrollWindow(offset, selected, total, visible int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	if selected >= 0 {
		if selected < offset {
			offset = selected
		}
		if selected >= offset+visible {
			offset = selected - visible + 1
		}
	}
	if maxOffset := total - visible; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
