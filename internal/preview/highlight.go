package preview

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/kk-code-lab/rpick/internal/textutil"
)

// DefaultTheme is the chroma style used when none is configured. Chroma has
// no base16-ocean; nord shares its accent palette.
const DefaultTheme = "nord"

// HasTheme reports whether name is a registered chroma style.
func HasTheme(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// Highlighter tokenizes text with a lexer chosen from the file name and
// colours the tokens with a chroma style.
type Highlighter struct {
	style    *chroma.Style
	tabWidth int
	plain    RGB
}

// NewHighlighter returns a Highlighter for the named chroma style. Unknown
// names fall back to chroma's default style.
func NewHighlighter(theme string, tabWidth int) *Highlighter {
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	plain := PlainColor
	if c := style.Get(chroma.Text).Colour; c.IsSet() {
		plain = rgbFromColour(c)
	}

	return &Highlighter{style: style, tabWidth: tabWidth, plain: plain}
}

// lexerFor picks a lexer by file name or extension. Unknown names get the
// plain-text lexer.
func lexerFor(path string) chroma.Lexer {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight splits text into coloured lines.
func (h *Highlighter) Highlight(path, text string) []Line {
	if text == "" {
		return nil
	}

	iterator, err := lexerFor(path).Tokenise(nil, text)
	if err != nil {
		return h.plainLines(text)
	}

	var lines []Line
	var current Line
	for _, tok := range iterator.Tokens() {
		colour := h.colourFor(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, h.expandTabs(current))
				current = nil
			}
			part = strings.TrimSuffix(part, "\r")
			if part != "" {
				current = append(current, Segment{Text: part, Color: colour})
			}
		}
	}
	if len(current) > 0 {
		lines = append(lines, h.expandTabs(current))
	}
	return lines
}

func (h *Highlighter) plainLines(text string) []Line {
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, s := range raw {
		s = strings.TrimSuffix(s, "\r")
		if s == "" {
			continue
		}
		lines[i] = h.expandTabs(Line{{Text: s, Color: h.plain}})
	}
	return lines
}

func (h *Highlighter) colourFor(tt chroma.TokenType) RGB {
	entry := h.style.Get(tt)
	if !entry.Colour.IsSet() {
		return h.plain
	}
	return rgbFromColour(entry.Colour)
}

// expandTabs expands tabs across segment boundaries so columns line up.
func (h *Highlighter) expandTabs(line Line) Line {
	column := 0
	for i, seg := range line {
		if strings.ContainsRune(seg.Text, '\t') {
			// Pad the prefix so tab stops are computed from the line start.
			prefix := strings.Repeat(" ", column%h.tabWidth)
			expanded := textutil.ExpandTabs(prefix+seg.Text, h.tabWidth)
			line[i].Text = expanded[len(prefix):]
		}
		column += textutil.DisplayWidth(line[i].Text)
	}
	return line
}

func rgbFromColour(c chroma.Colour) RGB {
	return RGB{R: c.Red(), G: c.Green(), B: c.Blue()}
}
