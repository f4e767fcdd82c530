package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rpick/internal/preview"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
	textutil "github.com/kk-code-lab/rpick/internal/textutil"
)

const (
	selectionMarker = ">>"
	emptyTitle      = " - "
)

// Thick box-drawing runes.
const (
	borderHorizontal  = '━'
	borderVertical    = '┃'
	borderTopLeft     = '┏'
	borderTopRight    = '┓'
	borderBottomLeft  = '┗'
	borderBottomRight = '┛'
)

// Renderer handles all UI rendering
type Renderer struct {
	screen        tcell.Screen
	theme         ColorTheme
	browsePercent int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:        screen,
		theme:         GetColorTheme(),
		browsePercent: DefaultBrowsePercent,
	}
}

// SetBrowsePercent sets the browse pane's share of the width. Values
// outside 1..99 are ignored.
func (r *Renderer) SetBrowsePercent(percent int) {
	if percent > 0 && percent < 100 {
		r.browsePercent = percent
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := r.computeLayout(w, h)

	r.drawBrowsePane(state, layout.browse)
	r.drawPreviewPane(state, layout.preview)

	r.screen.Show()
}

func (r *Renderer) drawBrowsePane(state *statepkg.AppState, area rect) {
	borderStyle := tcell.StyleDefault.Foreground(r.theme.Border)
	r.drawBox(area, borderStyle)

	titleStyle := tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true)
	title := fmt.Sprintf("[ %s - [%s] ]", state.WorkingDir, state.DisplayPattern())
	r.drawTitle(area, area.y, title, titleStyle)

	footer, footerStyle := r.browseFooter(state)
	r.drawTitle(area, area.y+area.h-1, footer, footerStyle)

	inner := area.inner()
	active := state.Mode != statepkg.ModePreviewing
	offset := scrollOffset(state.SelectedIndex, inner.h, len(state.Filtered))

	for row := 0; row < inner.h; row++ {
		idx := offset + row
		if idx >= len(state.Filtered) {
			break
		}
		entry := state.Filtered[idx]

		style := tcell.StyleDefault.Foreground(r.theme.FileFg)
		if entry.IsDir {
			style = tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
		}
		selected := idx == state.SelectedIndex
		if selected && !active {
			style = style.Bold(true)
		}

		x := r.drawMarker(inner, inner.y+row, selected && active)
		name := textutil.SanitizeTerminalText(entry.Name)
		name = r.truncateTextToWidth(name, inner.x+inner.w-x)
		r.drawText(x, inner.y+row, inner.x+inner.w, name, style)
	}
}

// browseFooter is the pending pattern while searching, the last error when
// there is one, and the selection counter otherwise.
func (r *Renderer) browseFooter(state *statepkg.AppState) (string, tcell.Style) {
	switch {
	case state.Mode == statepkg.ModeSearching:
		return fmt.Sprintf("[ %s ]", state.FilterPattern), tcell.StyleDefault.Foreground(r.theme.SearchFg)
	case state.LastError != nil:
		return fmt.Sprintf("[ %s ]", state.LastError), tcell.StyleDefault.Foreground(r.theme.ErrorFg)
	case len(state.Filtered) == 0:
		return " 0/0 ", tcell.StyleDefault.Foreground(r.theme.Border)
	default:
		counter := fmt.Sprintf(" %d/%d ", state.SelectedIndex+1, len(state.Filtered))
		return counter, tcell.StyleDefault.Foreground(r.theme.Border)
	}
}

func (r *Renderer) drawPreviewPane(state *statepkg.AppState, area rect) {
	borderStyle := tcell.StyleDefault.Foreground(r.theme.Border)
	r.drawBox(area, borderStyle)

	title := emptyTitle
	if entry := state.SelectedEntry(); entry != nil {
		title = fmt.Sprintf("[ %s ]", entry.Name)
	}
	r.drawTitle(area, area.y, title, tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true))

	inner := area.inner()
	active := state.Mode == statepkg.ModePreviewing
	offset := 0
	if active {
		offset = scrollOffset(state.PreviewIndex, inner.h, len(state.PreviewLines))
	}

	for row := 0; row < inner.h; row++ {
		idx := offset + row
		if idx >= len(state.PreviewLines) {
			break
		}
		x := r.drawMarker(inner, inner.y+row, active && idx == state.PreviewIndex)
		r.drawPreviewLine(x, inner.y+row, inner.x+inner.w, state.PreviewLines[idx])
	}
}

func (r *Renderer) drawPreviewLine(x, y, maxX int, line preview.Line) {
	for _, seg := range line {
		if x >= maxX {
			return
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(seg.Color.R), int32(seg.Color.G), int32(seg.Color.B)))
		x = r.drawText(x, y, maxX, textutil.SanitizeTerminalText(seg.Text), style)
	}
}

// drawMarker fills the marker gutter of a row and returns the text column.
func (r *Renderer) drawMarker(inner rect, y int, selected bool) int {
	maxX := inner.x + inner.w
	if selected {
		style := tcell.StyleDefault.Foreground(r.theme.MarkerFg).Bold(true)
		r.drawText(inner.x, y, maxX, selectionMarker, style)
	}
	x := inner.x + markerWidth
	if x > maxX {
		x = maxX
	}
	return x
}

func (r *Renderer) drawBox(area rect, style tcell.Style) {
	if area.w < 2 || area.h < 2 {
		return
	}
	right := area.x + area.w - 1
	bottom := area.y + area.h - 1

	for x := area.x + 1; x < right; x++ {
		r.screen.SetContent(x, area.y, borderHorizontal, nil, style)
		r.screen.SetContent(x, bottom, borderHorizontal, nil, style)
	}
	for y := area.y + 1; y < bottom; y++ {
		r.screen.SetContent(area.x, y, borderVertical, nil, style)
		r.screen.SetContent(right, y, borderVertical, nil, style)
	}
	r.screen.SetContent(area.x, area.y, borderTopLeft, nil, style)
	r.screen.SetContent(right, area.y, borderTopRight, nil, style)
	r.screen.SetContent(area.x, bottom, borderBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, borderBottomRight, nil, style)
}

// drawTitle writes text into a border row, just after the corner.
func (r *Renderer) drawTitle(area rect, y int, text string, style tcell.Style) {
	if area.w <= 2 {
		return
	}
	maxX := area.x + area.w - 1
	text = r.truncateTextToWidth(textutil.SanitizeTerminalText(text), maxX-(area.x+1))
	r.drawText(area.x+1, y, maxX, text, style)
}
