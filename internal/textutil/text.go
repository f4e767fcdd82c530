// Package textutil prepares file names and file contents for terminal cells.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is used when no tab width is configured.
const DefaultTabWidth = 4

// invisibleRunes are bidi and zero-width code points that would let a file name
// visually disguise itself. They are drawn as a short bracketed label.
var invisibleRunes = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x180E: "⟪MVS⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0x206A: "⟪ISS⟫",
	0x206B: "⟪ASS⟫",
	0x206C: "⟪IAFS⟫",
	0x206D: "⟪AAFS⟫",
	0x206E: "⟪NADS⟫",
	0x206F: "⟪NODS⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText makes text safe to draw: control characters become '?',
// line breaks and tabs become spaces, and invisible formatting runes are labelled.
func SanitizeTerminalText(text string) string {
	if !needsSanitizing(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := invisibleRunes[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(text string) bool {
	for _, r := range text {
		if r < 0x20 || r == 0x7f {
			return true
		}
		if _, ok := invisibleRunes[r]; ok {
			return true
		}
	}
	return false
}

// ExpandTabs replaces tabs with spaces up to the next multiple of tabWidth,
// counting wide runes as two columns.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	for _, r := range text {
		if r == '\t' {
			pad := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			column += pad
			continue
		}
		b.WriteRune(r)
		column += max(runewidth.RuneWidth(r), 1)
	}
	return b.String()
}

// DisplayWidth reports how many terminal columns text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
