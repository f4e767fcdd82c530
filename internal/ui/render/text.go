package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

func runeWidth(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		return 0
	}
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	return runewidth.StringWidth(text)
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := r.measureTextWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0
	for _, ru := range text {
		w := runeWidth(ru)
		if currentWidth+w > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += w
	}
	builder.WriteString(ellipsis)
	return builder.String()
}

// drawText writes text from startX, never past maxX, and returns the next
// free column. Zero-width runes combine with the preceding cell.
func (r *Renderer) drawText(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) && x < maxX {
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && runeWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runeWidth(mainc)
		if w == 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}
	return x
}
