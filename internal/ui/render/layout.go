package render

// DefaultBrowsePercent is the browse pane's share of the screen width.
const DefaultBrowsePercent = 30

const markerWidth = 2

type rect struct {
	x, y, w, h int
}

type layoutMetrics struct {
	browse  rect
	preview rect
}

func (r *Renderer) computeLayout(w, h int) layoutMetrics {
	browseW := w * r.browsePercent / 100
	if browseW < 0 {
		browseW = 0
	}
	return layoutMetrics{
		browse:  rect{x: 0, y: 0, w: browseW, h: h},
		preview: rect{x: browseW, y: 0, w: w - browseW, h: h},
	}
}

// inner is the area inside a one-cell border.
func (rc rect) inner() rect {
	if rc.w < 2 || rc.h < 2 {
		return rect{x: rc.x, y: rc.y}
	}
	return rect{x: rc.x + 1, y: rc.y + 1, w: rc.w - 2, h: rc.h - 2}
}

// scrollOffset returns the first visible row so that selected stays on
// screen, pinning it to the bottom once it passes the fold.
func scrollOffset(selected, rows, total int) int {
	if rows <= 0 || total <= rows || selected < rows {
		return 0
	}
	offset := selected - rows + 1
	if offset > total-rows {
		offset = total - rows
	}
	return offset
}
